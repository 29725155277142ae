package sitemapHandler

import (
	"time"

	contextPkg "ManhwaCatalog/pkg/context"
	"ManhwaCatalog/pkg/handlerUtil"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *SitemapHandler) GetSitemap(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	doc, err := h.sitemapService.Generate(c)
	if err != nil {
		return errHandler.HandlePageError(ctx, requestID, err, "get_sitemap")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
		return ctx.Send(doc)
	}
}
