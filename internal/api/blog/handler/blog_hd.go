package blogHandler

import (
	"strconv"
	"time"

	blogs "ManhwaCatalog/internal/api/blog"
	contextPkg "ManhwaCatalog/pkg/context"
	"ManhwaCatalog/pkg/handlerUtil"
	"ManhwaCatalog/pkg/log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *BlogsHandler) GetAllBlogs(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	blogList, err := h.blogsService.GetAllBlogs(c)
	if err != nil {
		return errHandler.HandlePageError(ctx, requestID, err, "get_all_blogs")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return ctx.Render("blogs", fiber.Map{
			"Title": "Blog",
			"Blogs": blogList,
		})
	}
}

func (h *BlogsHandler) RedirectToCanonical(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return errHandler.HandlePageError(ctx, requestID, blogs.ErrInvalidBlogID, "redirect_blog")
	}

	page, err := h.blogsService.GetBlogByID(c, id)
	if err != nil {
		return errHandler.HandlePageError(ctx, requestID, err, "redirect_blog")
	}

	// titles without a single letter or digit have no slug segment
	if page.Slug == "" {
		return h.renderBlog(ctx, c, errHandler, page)
	}

	return ctx.Redirect(page.CanonicalPath(), fiber.StatusMovedPermanently)
}

func (h *BlogsHandler) GetBlog(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return errHandler.HandlePageError(ctx, requestID, blogs.ErrInvalidBlogID, "get_blog")
	}

	page, err := h.blogsService.GetBlogByID(c, id)
	if err != nil {
		return errHandler.HandlePageError(ctx, requestID, err, "get_blog")
	}

	if slug := ctx.Params("slug"); slug != page.Slug {
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"blog_id":    id,
			"slug":       slug,
			"canonical":  page.Slug,
		}).Debug("Redirecting to canonical blog slug")
		return ctx.Redirect(page.CanonicalPath(), fiber.StatusMovedPermanently)
	}

	return h.renderBlog(ctx, c, errHandler, page)
}

func (h *BlogsHandler) renderBlog(ctx *fiber.Ctx, c context.Context, errHandler *handlerUtil.ErrorHandler, page blogs.BlogPage) error {
	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return ctx.Render("blog", fiber.Map{
			"Title": page.Title,
			"Blog":  page,
		})
	}
}
