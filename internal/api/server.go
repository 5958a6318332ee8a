// Package api exposes the chart calculation pipeline over an HTTP JSON API.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/soluna/temple-go/internal/chart"
	"github.com/soluna/temple-go/internal/conf"
	"github.com/soluna/temple-go/internal/datastore"
	"github.com/soluna/temple-go/internal/logging"
	"github.com/soluna/temple-go/internal/observability"
)

// Controller manages the API routes and handlers.
type Controller struct {
	Echo     *echo.Echo
	Group    *echo.Group
	DS       datastore.Interface
	Service  *chart.Service
	Settings *conf.Settings

	logger  *slog.Logger
	metrics *observability.Metrics
}

// New creates a new API controller with all routes initialized.
func New(settings *conf.Settings, svc *chart.Service, ds datastore.Interface, m *observability.Metrics, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = logging.ForService("api")
		if logger == nil {
			logger = slog.Default()
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	c := &Controller{
		Echo:     e,
		DS:       ds,
		Service:  svc,
		Settings: settings,
		logger:   logger,
		metrics:  m,
	}

	c.initRoutes()
	return c
}

func (c *Controller) initRoutes() {
	c.Echo.GET("/healthz", c.Health)
	if c.metrics != nil {
		c.Echo.GET("/metrics", echo.WrapHandler(c.metrics.Handler()))
	}

	c.Group = c.Echo.Group("/api/v2")
	c.Group.POST("/charts", c.CalculateChart)
	c.Group.GET("/charts/solar-return", c.SolarReturn)
	c.Group.POST("/profiles", c.CreateProfile)
	c.Group.GET("/profiles", c.ListProfiles)
	c.Group.GET("/profiles/:id", c.GetProfile)
	c.Group.GET("/profiles/:id/chart", c.GetProfileChart)
	c.Group.DELETE("/profiles/:id", c.DeleteProfile)
}

// Health answers liveness probes.
func (c *Controller) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Start runs the HTTP server until the context is cancelled.
func (c *Controller) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		addr := ":" + c.Settings.WebServer.Port
		c.logger.Info("starting HTTP server", "addr", addr)
		if err := c.Echo.Start(addr); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return c.Echo.Shutdown(shutdownCtx)
	}
}
