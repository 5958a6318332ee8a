// Package metrics provides Prometheus metric collectors for temple-go services.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// EphemerisMetrics contains Prometheus metrics for ephemeris provider operations.
type EphemerisMetrics struct {
	lookupsTotal      *prometheus.CounterVec
	bodyFailuresTotal *prometheus.CounterVec
}

// NewEphemerisMetrics creates and registers new ephemeris metrics.
func NewEphemerisMetrics(registry *prometheus.Registry) (*EphemerisMetrics, error) {
	m := &EphemerisMetrics{
		lookupsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ephemeris_lookups_total",
				Help: "Total number of positions queries by source",
			},
			[]string{"source"}, // source: table, model
		),
		bodyFailuresTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ephemeris_body_failures_total",
				Help: "Total number of per-body calculation failures substituted with the 0 degree sentinel",
			},
			[]string{"body"},
		),
	}
	if err := registry.Register(m.lookupsTotal); err != nil {
		return nil, err
	}
	if err := registry.Register(m.bodyFailuresTotal); err != nil {
		return nil, err
	}
	return m, nil
}

// RecordLookup records a positions query answered by the given source.
func (m *EphemerisMetrics) RecordLookup(source string) {
	m.lookupsTotal.WithLabelValues(source).Inc()
}

// RecordBodyFailure records a per-body calculation failure.
func (m *EphemerisMetrics) RecordBodyFailure(body string) {
	m.bodyFailuresTotal.WithLabelValues(body).Inc()
}
