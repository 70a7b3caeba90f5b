package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"go.uber.org/zap"

	"github.com/store-locator/internal/config"
	"github.com/store-locator/internal/delivery/http/handler"
	"github.com/store-locator/internal/delivery/http/middleware"
)

// HealthChecker reports the liveness of a backing connection.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Server is the fiber HTTP server.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	storeHandler *handler.StoreHandler

	// Optional backing services reported by the health endpoint. Either
	// may be nil (CSV source runs without a database, the CLI without
	// Redis).
	db    HealthChecker
	cache HealthChecker
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	storeHandler *handler.StoreHandler,
	db HealthChecker,
	cache HealthChecker,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Store Locator",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:          app,
		config:       cfg,
		logger:       logger,
		storeHandler: storeHandler,
		db:           db,
		cache:        cache,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.RequestLog(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	api := s.app.Group("/api/v1")

	api.Get("/health", s.handleHealth)

	// Store routes
	api.Get("/stores", s.storeHandler.ListStores)
	api.Get("/stores/nearest", s.storeHandler.FindNearest)
	api.Post("/stores/nearest", s.storeHandler.FindNearestPost)
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	status := fiber.Map{
		"status": "healthy",
		"time":   time.Now(),
	}

	code := fiber.StatusOK
	if s.db != nil {
		if err := s.db.Health(c.Context()); err != nil {
			status["status"] = "degraded"
			status["database"] = err.Error()
			code = fiber.StatusServiceUnavailable
		}
	}
	if s.cache != nil {
		if err := s.cache.Health(c.Context()); err != nil {
			status["status"] = "degraded"
			status["cache"] = err.Error()
			code = fiber.StatusServiceUnavailable
		}
	}

	return c.Status(code).JSON(status)
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
