package blogRepository

const (
	queryGetAllBlogs = `
		SELECT
			id,
			title
		FROM "Blog"
		ORDER BY id DESC
	`

	queryGetBlogByID = `
		SELECT
			id,
			title,
			content
		FROM "Blog"
		WHERE id = :id
	`
)
