package manhwaHandler

import (
	"errors"
	"time"

	"ManhwaCatalog/internal/api/manhwa"
	contextPkg "ManhwaCatalog/pkg/context"
	"ManhwaCatalog/pkg/handlerUtil"
	"ManhwaCatalog/pkg/log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *ManhwaHandler) GetAllManhwas(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing catalog request")

	manhwas, err := h.manhwaService.GetAllManhwas(c)
	if err != nil {
		return errHandler.HandlePageError(ctx, requestID, err, "get_all_manhwas")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return ctx.Render("index", fiber.Map{
			"Title":   "Catalog",
			"Heading": "All Manhwa",
			"Manhwas": manhwas,
		})
	}
}

func (h *ManhwaHandler) GetManhwasByCategory(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	category := ctx.Params("category")

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
		"category":   category,
	}).Debug("Processing category request")

	manhwas, err := h.manhwaService.GetManhwasByCategory(c, category)
	if err != nil {
		return errHandler.HandlePageError(ctx, requestID, err, "get_manhwas_by_category")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return ctx.Render("index", fiber.Map{
			"Title":   category,
			"Heading": "Category: " + category,
			"Manhwas": manhwas,
		})
	}
}

func (h *ManhwaHandler) SearchManhwas(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var query manhwa.SearchQuery
	if err := ctx.QueryParser(&query); err != nil {
		return errHandler.HandleBadRequest(ctx, requestID, manhwa.ErrTitleRequired.Error())
	}

	results, err := h.manhwaService.SearchManhwas(c, query.Title)
	if err != nil {
		if errors.Is(err, manhwa.ErrTitleRequired) {
			return errHandler.HandleBadRequest(ctx, requestID, err.Error())
		}
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "search_manhwas")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, results)
	}
}
