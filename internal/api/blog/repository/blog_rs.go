package blogRepository

import (
	"context"
	"database/sql"
	"errors"

	blogs "ManhwaCatalog/internal/api/blog"
	"ManhwaCatalog/internal/entity"
	contextPkg "ManhwaCatalog/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type BlogDB struct {
	ID      sql.NullInt64  `db:"id"`
	Title   sql.NullString `db:"title"`
	Content sql.NullString `db:"content"`
}

// GetAllBlogs lists every post, newest first, without content.
func (r *blogsRepository) GetAllBlogs(ctx context.Context) ([]entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var blogsList []BlogDB

	if err := r.q.SelectContext(ctx, &blogsList, queryGetAllBlogs); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllBlogs execution err")
		return nil, err
	}

	result := make([]entity.Blog, 0, len(blogsList))
	for _, blog := range blogsList {
		result = append(result, r.makeBlog(blog))
	}

	return result, nil
}

func (r *blogsRepository) GetBlogByID(ctx context.Context, id int64) (entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var blog BlogDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetBlogByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogByID named query preparation err")
		return entity.Blog{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&blog); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"blog_id":    id,
			}).Warn("GetBlogByID no rows found")
			return entity.Blog{}, blogs.ErrBlogNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogByID execution err")
		return entity.Blog{}, err
	}

	return r.makeBlog(blog), nil
}

func (r *blogsRepository) makeBlog(blog BlogDB) entity.Blog {
	return entity.Blog{
		ID:      blog.ID.Int64,
		Title:   blog.Title.String,
		Content: blog.Content.String,
	}
}
