package listHandler

import (
	"time"

	lists "ManhwaCatalog/internal/api/list"
	contextPkg "ManhwaCatalog/pkg/context"
	"ManhwaCatalog/pkg/handlerUtil"
	"ManhwaCatalog/pkg/log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *ListHandler) CreateList(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create list request")

	var req lists.CreateListRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleBadRequest(ctx, requestID, "Invalid request body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	listID, err := h.listService.CreateList(c, req.ManhwaNames, req.ListTitle, req.ListDescription)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_list")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, lists.CreateListResponse{
			ListID: listID,
		})
	}
}

func (h *ListHandler) CreateListFromText(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	// the extractor round trip dominates this request
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create list from text request")

	var req lists.CreateListFromTextRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleBadRequest(ctx, requestID, "Invalid request body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	listID, err := h.listService.CreateListFromText(c, req.Text)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_list_from_text")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, lists.CreateListResponse{
			ListID: listID,
		})
	}
}

func (h *ListHandler) GetListBySlug(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	slug := ctx.Params("slug")

	manhwas, err := h.listService.GetManhwasBySlug(c, slug)
	if err != nil {
		return errHandler.HandlePageError(ctx, requestID, err, "get_list_by_slug")
	}

	if len(manhwas) == 0 {
		return errHandler.HandleNotFoundPage(ctx, requestID, lists.ErrListNotFound.Error())
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return ctx.Render("index", fiber.Map{
			"Title":   slug,
			"Heading": slug,
			"Manhwas": manhwas,
		})
	}
}
