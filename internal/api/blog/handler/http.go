package blogHandler

import (
	blogsService "ManhwaCatalog/internal/api/blog/service"
	"ManhwaCatalog/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BlogsHandler struct {
	log          *logrus.Logger
	middleware   middleware.Middleware
	blogsService blogsService.IBlogsService
}

func New(
	log *logrus.Logger,
	middleware middleware.Middleware,
	bs blogsService.IBlogsService,
) *BlogsHandler {
	return &BlogsHandler{
		log:          log,
		middleware:   middleware,
		blogsService: bs,
	}
}

func (h *BlogsHandler) Start(srv fiber.Router) {
	srv.Get("/blogs", h.GetAllBlogs)

	blog := srv.Group("/blog")
	blog.Get("/:id", h.RedirectToCanonical)
	blog.Get("/:id/:slug", h.GetBlog)
}
