package lists

import "ManhwaCatalog/pkg/response"

var (
	ErrCreateList          = response.NewError(500, "failed to create list")
	ErrGetList             = response.NewError(500, "failed to load list")
	ErrListSlugTaken       = response.NewError(409, "a list with this title already exists")
	ErrListNotFound        = response.NewError(404, "list not found")
	ErrExtractionFailed    = response.NewError(502, "failed to extract list from text")
	ErrExtractorNotEnabled = response.NewError(503, "text extraction is not configured")
)
