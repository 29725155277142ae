package blogService

import (
	"context"
	"errors"

	blogs "ManhwaCatalog/internal/api/blog"
	contextPkg "ManhwaCatalog/pkg/context"
	"ManhwaCatalog/pkg/response"
	"ManhwaCatalog/pkg/utils"

	"github.com/sirupsen/logrus"
)

func (s *blogsService) GetAllBlogs(ctx context.Context) ([]blogs.BlogSummary, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, response.WithCause(blogs.ErrGetBlogs, err)
	}

	blogList, err := repo.Blogs.GetAllBlogs(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get blogs")
		return nil, response.WithCause(blogs.ErrGetBlogs, err)
	}

	summaries := make([]blogs.BlogSummary, 0, len(blogList))
	for _, blog := range blogList {
		summaries = append(summaries, blogs.BlogSummary{
			ID:    blog.ID,
			Title: blog.Title,
			Slug:  utils.BlogSlug(blog.Title),
		})
	}

	return summaries, nil
}

// GetBlogByID loads a post and renders its Markdown body to sanitized HTML.
func (s *blogsService) GetBlogByID(ctx context.Context, id int64) (blogs.BlogPage, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return blogs.BlogPage{}, response.WithCause(blogs.ErrGetBlogs, err)
	}

	blog, err := repo.Blogs.GetBlogByID(ctx, id)
	if err != nil {
		if errors.Is(err, blogs.ErrBlogNotFound) {
			return blogs.BlogPage{}, err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"blog_id":    id,
			"error":      err.Error(),
		}).Error("Failed to get blog")
		return blogs.BlogPage{}, response.WithCause(blogs.ErrGetBlogs, err)
	}

	content, err := s.renderer.Render(blog.Content)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"blog_id":    id,
			"error":      err.Error(),
		}).Error("Failed to render blog content")
		return blogs.BlogPage{}, response.WithCause(blogs.ErrRenderBlog, err)
	}

	return blogs.BlogPage{
		ID:      blog.ID,
		Title:   blog.Title,
		Slug:    utils.BlogSlug(blog.Title),
		Content: content,
	}, nil
}
