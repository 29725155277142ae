package sitemap

import "ManhwaCatalog/pkg/response"

var (
	ErrBuildSitemap = response.NewError(500, "failed to build sitemap")
)
