package listHandler

import (
	listService "ManhwaCatalog/internal/api/list/service"
	"ManhwaCatalog/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ListHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	listService listService.IListService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	listService listService.IListService,
) *ListHandler {
	return &ListHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		listService: listService,
	}
}

func (h *ListHandler) Start(srv fiber.Router) {
	srv.Post("/create-list", h.middleware.NewRateLimiter, h.CreateList)
	srv.Post("/api/create-list-from-text", h.middleware.NewRateLimiter, h.CreateListFromText)
	srv.Get("/list/:slug", h.GetListBySlug)
}
