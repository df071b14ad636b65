package http

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/campus-navigator/internal/config"
	"github.com/campus-navigator/internal/delivery/http/handler"
	"github.com/campus-navigator/internal/delivery/http/middleware"
	"github.com/campus-navigator/internal/pkg/errors"
	"github.com/campus-navigator/internal/pkg/utils"
)

// Handlers - обработчики HTTP API
type Handlers struct {
	Health  *handler.HealthHandler
	Graph   *handler.GraphHandler
	Node    *handler.NodeHandler
	Route   *handler.RouteHandler
	Session *handler.SessionHandler
	Debug   *handler.DebugHandler
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app      *fiber.App
	config   *config.Config
	logger   *zap.Logger
	handlers Handlers
}

// NewServer - создание нового HTTP сервера
func NewServer(cfg *config.Config, logger *zap.Logger, handlers Handlers) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Campus Navigator",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:      app,
		config:   cfg,
		logger:   logger,
		handlers: handlers,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.CORSOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	api.Get("/health", s.handlers.Health.Health)

	// Graph
	api.Get("/graph/stats", s.handlers.Graph.Stats)
	api.Post("/graph/reload", s.handlers.Graph.Reload)

	// Nodes
	api.Get("/nodes/destinations", s.handlers.Node.Destinations)
	api.Get("/nodes/nearest", s.handlers.Node.Nearest)
	api.Get("/nodes/nearby", s.handlers.Node.Nearby)

	// Routes
	api.Post("/routes", s.handlers.Route.FindRoute)
	api.Get("/routes/link", s.handlers.Route.RouteFromLink)
	api.Post("/routes/share", s.handlers.Route.ShareLink)

	// Sessions
	sessions := api.Group("/sessions")
	sessions.Post("/", s.handlers.Session.Create)
	sessions.Get("/:id", s.handlers.Session.Get)
	sessions.Post("/:id/destination", s.handlers.Session.SelectDestination)
	sessions.Post("/:id/location", s.handlers.Session.SetLocation)
	sessions.Post("/:id/position", s.handlers.Session.ObservePosition)
	sessions.Delete("/:id/route", s.handlers.Session.ClearRoute)

	// Debug. В production только при LOG_LEVEL=debug
	if s.config.DebugEnabled() && s.handlers.Debug != nil {
		api.Get("/debug/log", s.handlers.Debug.Log)
	}
}

// App returns the underlying fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		var fiberErr *fiber.Error
		if stderrors.As(err, &fiberErr) {
			code = fiberErr.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		if code == fiber.StatusNotFound {
			return c.Status(code).JSON(utils.ErrorResponse{
				Error: errors.New("NOT_FOUND", err.Error(), code),
			})
		}
		if code < fiber.StatusInternalServerError {
			return c.Status(code).JSON(utils.ErrorResponse{
				Error: errors.ErrInvalidRequest.WithMessage(err.Error()),
			})
		}
		return c.Status(code).JSON(utils.ErrorResponse{
			Error: errors.ErrInternalServer,
		})
	}
}
