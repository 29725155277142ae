package sitemapHandler

import (
	sitemapService "ManhwaCatalog/internal/api/sitemap/service"
	"ManhwaCatalog/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type SitemapHandler struct {
	log            *logrus.Logger
	middleware     middleware.Middleware
	sitemapService sitemapService.ISitemapService
}

func New(
	log *logrus.Logger,
	middleware middleware.Middleware,
	ss sitemapService.ISitemapService,
) *SitemapHandler {
	return &SitemapHandler{
		log:            log,
		middleware:     middleware,
		sitemapService: ss,
	}
}

func (h *SitemapHandler) Start(srv fiber.Router) {
	srv.Get("/sitemap.xml", h.GetSitemap)
}
