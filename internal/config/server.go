package config

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	blogHandler "ManhwaCatalog/internal/api/blog/handler"
	blogRepository "ManhwaCatalog/internal/api/blog/repository"
	blogService "ManhwaCatalog/internal/api/blog/service"
	listHandler "ManhwaCatalog/internal/api/list/handler"
	listRepository "ManhwaCatalog/internal/api/list/repository"
	listService "ManhwaCatalog/internal/api/list/service"
	manhwaHandler "ManhwaCatalog/internal/api/manhwa/handler"
	manhwaRepository "ManhwaCatalog/internal/api/manhwa/repository"
	manhwaService "ManhwaCatalog/internal/api/manhwa/service"
	sitemapHandler "ManhwaCatalog/internal/api/sitemap/handler"
	sitemapService "ManhwaCatalog/internal/api/sitemap/service"
	"ManhwaCatalog/internal/middleware"
	"ManhwaCatalog/pkg/database/postgres"
	"ManhwaCatalog/pkg/extraction"
	"ManhwaCatalog/pkg/gemini"
	"ManhwaCatalog/pkg/handlerUtil"
	"ManhwaCatalog/pkg/markdown"
	"ManhwaCatalog/pkg/openai"
	"ManhwaCatalog/pkg/redis"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine     *fiber.App
	db         *sqlx.DB
	log        *logrus.Logger
	middleware middleware.Middleware
	validator  *validator.Validate
	cache      redis.ICache
	extractor  extraction.IListExtractor
	renderer   markdown.IRenderer
	sitemap    sitemapService.ISitemapService
	handlers   []handler
	mounted    bool
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.db == nil {
		return nil, fmt.Errorf("database is required")
	}
	if server.middleware == nil {
		server.middleware = middleware.New(server.log)
	}
	if server.validator == nil {
		server.validator = NewValidator()
	}
	if server.cache == nil {
		server.cache = redis.NewNop()
	}
	if server.renderer == nil {
		server.renderer = markdown.New()
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

// WithDB injects an existing connection, used by commands that already opened one.
func WithDB(db *sqlx.DB) ServerOption {
	return func(s *Server) error {
		s.db = db
		return nil
	}
}

func WithCache(cache redis.ICache) ServerOption {
	return func(s *Server) error {
		s.cache = cache
		return nil
	}
}

func WithMarkdownRenderer(renderer markdown.IRenderer) ServerOption {
	return func(s *Server) error {
		s.renderer = renderer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be set before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

// WithListExtractor picks the text extraction backend from LLM_PROVIDER.
// Unset, it prefers Gemini when GEMINI_API_KEY exists, then OpenAI, and
// otherwise leaves text-to-list disabled.
func WithListExtractor() ServerOption {
	return func(s *Server) error {
		provider := strings.ToLower(strings.TrimSpace(os.Getenv("LLM_PROVIDER")))
		if provider == "" {
			switch {
			case os.Getenv("GEMINI_API_KEY") != "":
				provider = "gemini"
			case os.Getenv("OPENAI_API_KEY") != "":
				provider = "openai"
			default:
				if s.log != nil {
					s.log.Warn("No LLM provider configured, text-to-list is disabled")
				}
				return nil
			}
		}

		var (
			client extraction.IListExtractor
			err    error
		)
		switch provider {
		case "gemini":
			client, err = gemini.NewGeminiClient()
		case "openai":
			client, err = openai.NewChatGPT()
		default:
			return fmt.Errorf("unknown LLM_PROVIDER %q", provider)
		}
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to create %s client: %v", provider, err)
			}
			return fmt.Errorf("failed to create %s client: %w", provider, err)
		}

		if s.log != nil {
			s.log.Infof("Text-to-list extraction uses %s", provider)
		}
		s.extractor = client
		return nil
	}
}

func WithExtractor(extractor extraction.IListExtractor) ServerOption {
	return func(s *Server) error {
		s.extractor = extractor
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Manhwa Domain
	manhwaRepo := manhwaRepository.New(s.db, s.log)
	manhwaServices := manhwaService.NewManhwaService(s.log, manhwaRepo)
	manhwaHandlers := manhwaHandler.New(s.log, s.middleware, manhwaServices)

	// List Domain
	listRepo := listRepository.New(s.db, s.log)
	listServices := listService.NewListService(s.log, listRepo, s.extractor)
	listHandlers := listHandler.New(s.log, s.validator, s.middleware, listServices)

	// Blog Domain
	blogRepo := blogRepository.New(s.db, s.log)
	blogServices := blogService.NewBlogsService(s.log, blogRepo, s.renderer)
	blogHandlers := blogHandler.New(s.log, s.middleware, blogServices)

	// Sitemap
	s.sitemap = sitemapService.NewSitemapService(s.log, s.cache, manhwaRepo, blogRepo, listRepo)
	sitemapHandlers := sitemapHandler.New(s.log, s.middleware, s.sitemap)

	s.handlers = append(s.handlers, manhwaHandlers, listHandlers, blogHandlers, sitemapHandlers)
}

// Sitemap is available after RegisterHandler.
func (s *Server) Sitemap() sitemapService.ISitemapService {
	return s.sitemap
}

// Mount attaches middleware, every registered handler and the not-found
// fallback to the engine. It runs once.
func (s *Server) Mount() *fiber.App {
	if s.mounted {
		return s.engine
	}
	s.mounted = true

	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewLoggingMiddleware)

	s.setupHealthCheck()

	for _, h := range s.handlers {
		h.Start(s.engine)
	}

	s.setupNotFound()

	return s.engine
}

func (s *Server) Run() error {
	s.Mount()

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	err := s.engine.ShutdownWithContext(ctx)

	if closer, ok := s.extractor.(io.Closer); ok {
		if cerr := closer.Close(); cerr != nil {
			s.log.Warnf("Failed to close extractor: %v", cerr)
		}
	}
	if s.db != nil {
		if cerr := s.db.Close(); cerr != nil {
			s.log.Warnf("Failed to close database: %v", cerr)
		}
	}

	return err
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})

	s.engine.Get("/favicon.ico", func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusNoContent)
	})
}

func (s *Server) setupNotFound() {
	errHandler := handlerUtil.New(s.log)

	s.engine.Use(func(ctx *fiber.Ctx) error {
		return errHandler.HandleNotFoundPage(ctx, s.middleware.GetRequestID(ctx), "The page you are looking for does not exist.")
	})
}
