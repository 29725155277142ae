package blogs

import "html/template"

type BlogSummary struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

type BlogPage struct {
	ID      int64         `json:"id"`
	Title   string        `json:"title"`
	Slug    string        `json:"slug"`
	Content template.HTML `json:"content"`
}

func (b BlogSummary) CanonicalPath() string {
	return CanonicalPath(b.ID, b.Slug)
}

// CanonicalPath is the only URL a blog page is served from.
func (b BlogPage) CanonicalPath() string {
	return CanonicalPath(b.ID, b.Slug)
}
