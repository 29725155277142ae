package entity

type List struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Slug        string `db:"slug"`
}

type ListManhwa struct {
	ID     int64 `db:"id"`
	List   int64 `db:"list"`
	Manhwa int64 `db:"manhwa"`
}

// ExtractedList is what the text extraction service returns for a free-form request.
type ExtractedList struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Manhwas     []string `json:"manhwas"`
}
