package blogService

import (
	"context"

	blogs "ManhwaCatalog/internal/api/blog"
	blogsRepository "ManhwaCatalog/internal/api/blog/repository"
	"ManhwaCatalog/pkg/markdown"

	"github.com/sirupsen/logrus"
)

type IBlogsService interface {
	GetAllBlogs(ctx context.Context) ([]blogs.BlogSummary, error)
	GetBlogByID(ctx context.Context, id int64) (blogs.BlogPage, error)
}

type blogsService struct {
	log       *logrus.Logger
	blogsRepo blogsRepository.Repository
	renderer  markdown.IRenderer
}

func NewBlogsService(
	log *logrus.Logger,
	blogsRepo blogsRepository.Repository,
	renderer markdown.IRenderer,
) IBlogsService {
	return &blogsService{
		log:       log,
		blogsRepo: blogsRepo,
		renderer:  renderer,
	}
}
