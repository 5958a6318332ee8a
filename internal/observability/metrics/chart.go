package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ChartMetrics contains Prometheus metrics for chart calculation operations.
type ChartMetrics struct {
	calculationsTotal  *prometheus.CounterVec
	durationSeconds    *prometheus.HistogramVec
	cacheHitsTotal     prometheus.Counter
	cacheMissesTotal   prometheus.Counter
	solverRunsTotal    *prometheus.CounterVec
	solverErrorDegrees prometheus.Histogram
}

// NewChartMetrics creates and registers new chart calculation metrics.
func NewChartMetrics(registry *prometheus.Registry) (*ChartMetrics, error) {
	m := &ChartMetrics{
		calculationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chart_calculations_total",
				Help: "Total number of chart calculations",
			},
			[]string{"status"}, // status: success, error
		),
		durationSeconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "chart_calculation_duration_seconds",
				Help:    "Time taken for a full chart calculation",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
			},
			[]string{"operation"},
		),
		cacheHitsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "chart_cache_hits_total",
			Help: "Total number of chart cache hits",
		}),
		cacheMissesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "chart_cache_misses_total",
			Help: "Total number of chart cache misses",
		}),
		solverRunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chart_solver_runs_total",
				Help: "Total number of inverse longitude solver runs",
			},
			[]string{"kind"}, // kind: design-date, solar-return
		),
		solverErrorDegrees: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "chart_solver_error_degrees",
			Help:    "Absolute angular error of converged solver results",
			Buckets: prometheus.ExponentialBuckets(0.00001, 10, 7),
		}),
	}

	collectors := []prometheus.Collector{
		m.calculationsTotal, m.durationSeconds,
		m.cacheHitsTotal, m.cacheMissesTotal,
		m.solverRunsTotal, m.solverErrorDegrees,
	}
	for _, c := range collectors {
		if err := registry.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// RecordCalculation records a completed chart calculation with its duration.
func (m *ChartMetrics) RecordCalculation(status string, duration time.Duration) {
	m.calculationsTotal.WithLabelValues(status).Inc()
	m.durationSeconds.WithLabelValues("calculate").Observe(duration.Seconds())
}

// RecordCacheHit records a chart cache hit.
func (m *ChartMetrics) RecordCacheHit() { m.cacheHitsTotal.Inc() }

// RecordCacheMiss records a chart cache miss.
func (m *ChartMetrics) RecordCacheMiss() { m.cacheMissesTotal.Inc() }

// RecordSolverRun records an inverse longitude solver run and its final error.
func (m *ChartMetrics) RecordSolverRun(kind string, errorDegrees float64) {
	m.solverRunsTotal.WithLabelValues(kind).Inc()
	m.solverErrorDegrees.Observe(errorDegrees)
}
