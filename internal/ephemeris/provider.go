// provider.go: the positions query surface of the ephemeris package.
package ephemeris

import (
	"log/slog"
	"time"

	"github.com/soluna/temple-go/internal/logging"
	"github.com/soluna/temple-go/internal/observability/metrics"
)

// Provider answers positions queries from the daily table when possible and
// from the analytic model otherwise. It is safe for concurrent use: the table
// is read-only after construction and the model is pure computation.
type Provider struct {
	table   *Table // may be nil, in which case every query uses the model
	logger  *slog.Logger
	metrics *metrics.EphemerisMetrics // may be nil
}

// NewProvider creates a Provider around an optional table. A nil table means
// every query is answered by the analytic model.
func NewProvider(table *Table, logger *slog.Logger) *Provider {
	if logger == nil {
		logger = logging.ForService("ephemeris")
		if logger == nil {
			logger = slog.Default()
		}
	}
	return &Provider{table: table, logger: logger}
}

// SetMetrics attaches observability metrics to the provider.
func (p *Provider) SetMetrics(m *metrics.EphemerisMetrics) {
	p.metrics = m
}

// Positions returns the longitudes of the ten table bodies at the given UTC
// instant. Inside the table window the day row is used directly, no
// interpolation, time of day ignored. Outside the window each body is computed
// from the analytic model. A failure computing one body is logged and yields a
// 0 degree sentinel with the error attached; it never aborts the batch.
func (p *Provider) Positions(t time.Time) []BodyPosition {
	if row, ok := p.table.Lookup(t); ok {
		if p.metrics != nil {
			p.metrics.RecordLookup("table")
		}
		out := make([]BodyPosition, len(TableBodies))
		for i, body := range TableBodies {
			out[i] = BodyPosition{Body: body, Longitude: row[i], Retrograde: isRetrograde(body, t)}
		}
		return out
	}

	if p.metrics != nil {
		p.metrics.RecordLookup("model")
	}
	out := make([]BodyPosition, len(TableBodies))
	for i, body := range TableBodies {
		out[i] = p.computeBody(body, t)
	}
	return out
}

// ChartPositions returns the thirteen chart bodies at the given UTC instant:
// the ten table bodies plus synthetic Earth, the True Node and Chiron.
// Earth is always (Sun + 180) mod 360 and never retrograde.
func (p *Provider) ChartPositions(t time.Time) []BodyPosition {
	base := p.Positions(t)
	byBody := make(map[Body]BodyPosition, len(base))
	for _, bp := range base {
		byBody[bp.Body] = bp
	}

	out := make([]BodyPosition, 0, len(ChartBodies))
	for _, body := range ChartBodies {
		switch body {
		case Earth:
			sun := byBody[Sun]
			out = append(out, BodyPosition{
				Body:      Earth,
				Longitude: NormalizeDegrees(sun.Longitude + 180),
				Err:       sun.Err,
			})
		case TrueNode, Chiron:
			out = append(out, p.computeBody(body, t))
		default:
			out = append(out, byBody[body])
		}
	}
	return out
}

// SunLongitude returns the Sun's longitude from the analytic model. Solvers
// need sub-day resolution, so this path bypasses the day-granular table.
func (p *Provider) SunLongitude(t time.Time) (float64, error) {
	return ComputeLongitude(Sun, t)
}

// computeBody runs the analytic model for one body, degrading to the 0 degree
// sentinel on failure.
func (p *Provider) computeBody(body Body, t time.Time) BodyPosition {
	lon, err := ComputeLongitude(body, t)
	if err != nil {
		p.logger.Warn("body position calculation failed, substituting 0 degrees",
			"body", string(body),
			"instant", t.Format(time.RFC3339),
			"error", err)
		if p.metrics != nil {
			p.metrics.RecordBodyFailure(string(body))
		}
		return BodyPosition{Body: body, Longitude: 0, Err: err}
	}
	return BodyPosition{Body: body, Longitude: lon, Retrograde: isRetrograde(body, t)}
}
