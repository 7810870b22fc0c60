package server

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"todoapi/apperrors"
	"todoapi/config"
	"todoapi/pkg/metrics"
	"todoapi/server/middleware/limiter"
	"todoapi/server/routes"
	"todoapi/store"
)

type Server struct {
	App      *fiber.App
	users    *store.UsersStore
	registry *store.Registry
	cfg      *config.Config
}

func NewServer(cfg *config.Config, users *store.UsersStore, registry *store.Registry) (*Server, error) {
	errLogger, err := setupErrorLogging(cfg.Server.LogFile)
	if err != nil {
		return nil, fmt.Errorf("failed to setup error logging: %w", err)
	}

	errorConfig := apperrors.HandlerConfig{
		Logger: errLogger,
		OnError: func(c *fiber.Ctx, err *apperrors.AppError) {
			metrics.RecordError(string(err.Code), strconv.Itoa(err.StatusCode))
		},
	}

	app := fiber.New(fiber.Config{
		AppName:      "TodoAPI",
		ServerHeader: "TodoAPI",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: apperrors.Handler(errorConfig),
	})

	app.Use(metrics.HTTPMetricsMiddleware())

	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.CORS.Origins, ","),
		AllowMethods:     strings.Join(cfg.CORS.Methods, ","),
		AllowHeaders:     strings.Join(cfg.CORS.Headers, ","),
		AllowCredentials: cfg.CORS.AllowCredentials,
	}))

	// Setup logging
	if err := setupLogging(app, cfg.Server.LogFile); err != nil {
		return nil, fmt.Errorf("failed to setup logging: %w", err)
	}

	// Rate limiting
	app.Use(limiter.New(limiter.Config{
		Capacity:     cfg.RateLimit.Capacity,
		RefillRate:   cfg.RateLimit.RefillRate,
		RefillPeriod: cfg.RateLimit.RefillPeriod,
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/metrics"
		},
		LimitReachedHandler: func(c *fiber.Ctx) error {
			metrics.RateLimitExceeded.WithLabelValues(c.Path()).Inc()
			return apperrors.NewRateLimitError()
		},
	}))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	srv := &Server{
		App:      app,
		users:    users,
		registry: registry,
		cfg:      cfg,
	}

	// Register all routes
	routes.RegisterRoutes(app, users, registry, cfg.Database.QueryTimeout)

	return srv, nil
}

func (s *Server) Start() error {
	addr := s.cfg.ServerAddress()
	log.Printf("Starting server on %s", addr)
	return s.App.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Shutting down server...")
	return s.App.ShutdownWithContext(ctx)
}
