package server

import (
	"context"
	"fmt"
	"sync"
	"time"

	"portfolio-site/internal/core/config"
	"portfolio-site/internal/core/logger"

	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	_ "portfolio-site/docs/swagger"
)

const healthTimeout = 2 * time.Second

// HealthChecker is a dependency pinged by /healthz.
type HealthChecker interface {
	Name() string
	Ping(ctx context.Context) error
}

// Registrar mounts a feature's routes.
type Registrar interface {
	Register(r fiber.Router)
}

// HealthResponse is the body of /healthz.
type HealthResponse struct {
	// Status is "ok" or "degraded".
	Status string `json:"status"`
	// Checks maps each dependency to "ok" or its error.
	Checks map[string]string `json:"checks"`
}

// Server holds the Fiber application and configuration.
type Server struct {
	// App is the main Fiber application instance.
	App *fiber.App
	// cfg holds the application configuration.
	cfg *config.AppConfig

	mu       sync.RWMutex
	checkers []HealthChecker
}

// New creates a new Server instance with configured middleware.
func New(cfg *config.AppConfig) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		AppName:               "portfolio-site",
	})

	s := &Server{
		App: app,
		cfg: cfg,
	}

	app.Use(recover.New())

	app.Use(requestid.New(requestid.Config{
		Header: "X-Ray-ID",
	}))

	app.Use(fiberzap.New(fiberzap.Config{
		Logger: logger.Get(),
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/healthz", s.health)

	// Unknown files fall through to the API routes.
	if cfg.StaticDir != "" {
		app.Static("/", cfg.StaticDir, fiber.Static{
			Index:    "index.html",
			Compress: true,
		})
	}

	return s
}

// Mount registers the routes of every feature.
func (s *Server) Mount(registrars ...Registrar) {
	for _, r := range registrars {
		r.Register(s.App)
	}
}

// AddHealthCheck adds a dependency to /healthz.
func (s *Server) AddHealthCheck(checkers ...HealthChecker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkers = append(s.checkers, checkers...)
}

// health handles GET /healthz.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /healthz [get]
func (s *Server) health(c *fiber.Ctx) error {
	s.mu.RLock()
	checkers := append([]HealthChecker(nil), s.checkers...)
	s.mu.RUnlock()

	ctx, cancel := context.WithTimeout(c.Context(), healthTimeout)
	defer cancel()

	resp := HealthResponse{Status: "ok", Checks: make(map[string]string, len(checkers))}
	for _, hc := range checkers {
		if err := hc.Ping(ctx); err != nil {
			resp.Status = "degraded"
			resp.Checks[hc.Name()] = err.Error()
			logger.Get().Warn("Health check failed", zap.String("dependency", hc.Name()), zap.Error(err))
			continue
		}
		resp.Checks[hc.Name()] = "ok"
	}

	status := fiber.StatusOK
	if resp.Status != "ok" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(resp)
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%d", s.cfg.ServerPort)
	logger.Get().Info("Starting server", zap.String("address", addr))
	return s.App.Listen(addr)
}

// Shutdown stops accepting connections and waits for open ones to finish.
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Get().Info("Shutting down server")
	return s.App.ShutdownWithContext(ctx)
}
