package manhwa

type ManhwaResponse struct {
	ID         int64    `json:"id"`
	Title      string   `json:"title"`
	Categories []string `json:"categories"`
}

type SearchQuery struct {
	Title string `query:"title"`
}
