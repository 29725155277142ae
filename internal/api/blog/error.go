package blogs

import "ManhwaCatalog/pkg/response"

var (
	ErrBlogNotFound  = response.NewError(404, "blog not found")
	ErrInvalidBlogID = response.NewError(400, "blog id must be an integer")
	ErrGetBlogs      = response.NewError(500, "failed to load blogs")
	ErrRenderBlog    = response.NewError(500, "failed to render blog")
)
