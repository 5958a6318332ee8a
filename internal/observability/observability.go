// Package observability provides metrics and monitoring capabilities for temple-go.
package observability

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/soluna/temple-go/internal/observability/metrics"
)

// Metrics holds all the metric collectors for the application.
type Metrics struct {
	registry  *prometheus.Registry
	Ephemeris *metrics.EphemerisMetrics
	Chart     *metrics.ChartMetrics
}

// NewMetrics creates a new instance of Metrics, initializing all metric collectors.
// It returns an error if any metric collector fails to initialize.
func NewMetrics() (*Metrics, error) {
	registry := prometheus.NewRegistry()

	ephemerisMetrics, err := metrics.NewEphemerisMetrics(registry)
	if err != nil {
		return nil, fmt.Errorf("failed to create ephemeris metrics: %w", err)
	}

	chartMetrics, err := metrics.NewChartMetrics(registry)
	if err != nil {
		return nil, fmt.Errorf("failed to create chart metrics: %w", err)
	}

	return &Metrics{
		registry:  registry,
		Ephemeris: ephemerisMetrics,
		Chart:     chartMetrics,
	}, nil
}

// Handler returns the HTTP handler for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		ErrorLog:      log.New(os.Stderr, "metrics handler: ", log.LstdFlags),
		ErrorHandling: promhttp.HTTPErrorOnError,
	})
}
