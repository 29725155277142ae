package entity

type Manhwa struct {
	ID         int64    `db:"id"`
	Title      string   `db:"title"`
	Categories []string `db:"categories"`
}
