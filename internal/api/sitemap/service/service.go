package sitemapService

import (
	"context"
	"os"
	"strings"
	"time"

	blogRepository "ManhwaCatalog/internal/api/blog/repository"
	listRepository "ManhwaCatalog/internal/api/list/repository"
	manhwaRepository "ManhwaCatalog/internal/api/manhwa/repository"
	"ManhwaCatalog/pkg/redis"

	"github.com/sirupsen/logrus"
)

const (
	cacheKey        = "sitemap:xml"
	defaultCacheTTL = time.Hour
)

type ISitemapService interface {
	Generate(ctx context.Context) ([]byte, error)
	Invalidate(ctx context.Context) error
}

type sitemapService struct {
	log        *logrus.Logger
	siteURL    string
	cacheTTL   time.Duration
	cache      redis.ICache
	manhwaRepo manhwaRepository.Repository
	blogRepo   blogRepository.Repository
	listRepo   listRepository.Repository
}

// NewSitemapService reads SITE_URL and SITEMAP_CACHE_TTL. Without SITE_URL the
// locations are root-relative.
func NewSitemapService(
	log *logrus.Logger,
	cache redis.ICache,
	manhwaRepo manhwaRepository.Repository,
	blogRepo blogRepository.Repository,
	listRepo listRepository.Repository,
) ISitemapService {
	ttl := defaultCacheTTL
	if raw := os.Getenv("SITEMAP_CACHE_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			log.Warnf("invalid SITEMAP_CACHE_TTL %q, using %s", raw, defaultCacheTTL)
		} else {
			ttl = parsed
		}
	}

	if cache == nil {
		cache = redis.NewNop()
	}

	return &sitemapService{
		log:        log,
		siteURL:    strings.TrimRight(os.Getenv("SITE_URL"), "/"),
		cacheTTL:   ttl,
		cache:      cache,
		manhwaRepo: manhwaRepo,
		blogRepo:   blogRepo,
		listRepo:   listRepo,
	}
}
