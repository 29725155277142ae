package manhwaHandler

import (
	manhwaService "ManhwaCatalog/internal/api/manhwa/service"
	"ManhwaCatalog/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ManhwaHandler struct {
	log           *logrus.Logger
	middleware    middleware.Middleware
	manhwaService manhwaService.IManhwaService
}

func New(
	log *logrus.Logger,
	middleware middleware.Middleware,
	ms manhwaService.IManhwaService,
) *ManhwaHandler {
	return &ManhwaHandler{
		log:           log,
		middleware:    middleware,
		manhwaService: ms,
	}
}

func (h *ManhwaHandler) Start(srv fiber.Router) {
	srv.Get("/", h.GetAllManhwas)
	srv.Get("/category/:category", h.GetManhwasByCategory)
	srv.Get("/api/search", h.SearchManhwas)
}
