package manhwa

import "ManhwaCatalog/pkg/response"

var (
	ErrTitleRequired    = response.NewError(400, "Title parameter is required")
	ErrCategoryRequired = response.NewError(400, "category is required")
	ErrCategoryNotFound = response.NewError(404, "no manhwa found in this category")
	ErrGetManhwas       = response.NewError(500, "failed to load manhwa")
)
