package chart

import (
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/soluna/temple-go/internal/ephemeris"
	"github.com/soluna/temple-go/internal/errors"
	"github.com/soluna/temple-go/internal/gates"
	"github.com/soluna/temple-go/internal/genekeys"
	"github.com/soluna/temple-go/internal/humandesign"
	"github.com/soluna/temple-go/internal/logging"
	"github.com/soluna/temple-go/internal/numerology"
	"github.com/soluna/temple-go/internal/observability/metrics"
	"github.com/soluna/temple-go/internal/suncalc"
)

const (
	cacheExpiration = 1 * time.Hour
	cacheCleanup    = 10 * time.Minute
)

// Service runs the full calculation pipeline. Results are pure functions of
// BirthData, so they are cached by BirthData equality. The service is safe for
// concurrent use.
type Service struct {
	provider *ephemeris.Provider
	cache    *cache.Cache
	logger   *slog.Logger
	metrics  *metrics.ChartMetrics // may be nil

	// sunEvents toggles the birth-day sun event enrichment.
	sunEvents bool
}

// NewService creates a chart calculation service around an ephemeris provider.
func NewService(provider *ephemeris.Provider, logger *slog.Logger) *Service {
	if logger == nil {
		logger = logging.ForService("chart")
		if logger == nil {
			logger = slog.Default()
		}
	}
	return &Service{
		provider:  provider,
		cache:     cache.New(cacheExpiration, cacheCleanup),
		logger:    logger,
		sunEvents: true,
	}
}

// SetMetrics attaches observability metrics to the service.
func (s *Service) SetMetrics(m *metrics.ChartMetrics) {
	s.metrics = m
}

// DisableSunEvents turns off the astral sun event enrichment, mainly for tests.
func (s *Service) DisableSunEvents() {
	s.sunEvents = false
}

// Calculate runs the pipeline for the given birth data. The input is assumed
// validated; call BirthData.Validate at the boundary.
func (s *Service) Calculate(data *BirthData) (*Result, error) {
	start := time.Now()

	if cached, found := s.cache.Get(data.Key()); found {
		if s.metrics != nil {
			s.metrics.RecordCacheHit()
		}
		return cached.(*Result), nil
	}
	if s.metrics != nil {
		s.metrics.RecordCacheMiss()
	}

	result, err := s.calculate(data)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordCalculation("error", time.Since(start))
		}
		return nil, err
	}

	s.cache.Set(data.Key(), result, cache.DefaultExpiration)
	if s.metrics != nil {
		s.metrics.RecordCalculation("success", time.Since(start))
	}
	s.logger.Debug("chart calculated",
		"key", data.Key(),
		"type", string(result.HumanDesign.Type),
		"profile", result.HumanDesign.Profile,
		"duration_ms", time.Since(start).Milliseconds())
	return result, nil
}

func (s *Service) calculate(data *BirthData) (*Result, error) {
	birthUTC, err := ToUTC(data.Year, data.Month, data.Day, data.Hour, data.Minute, data.Timezone)
	if err != nil {
		return nil, err
	}

	natal := s.provider.ChartPositions(birthUTC)
	natalSun, err := s.provider.SunLongitude(birthUTC)
	if err != nil {
		return nil, errors.New(err).
			Category(errors.CategorySolver).
			Component("chart").
			Context("stage", "natal-sun").
			Build()
	}

	designUTC, solveErr, err := DesignInstant(s.provider.SunLongitude, birthUTC, natalSun)
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.RecordSolverRun("design-date", solveErr)
	}
	design := s.provider.ChartPositions(designUTC)

	personality := gates.Activations(natal, true)
	designGates := gates.Activations(design, false)

	calculated := &CalculatedChart{
		BirthUTC:         birthUTC,
		DesignUTC:        designUTC,
		Natal:            natal,
		Design:           design,
		PersonalityGates: personality,
		DesignGates:      designGates,
		CalcVersion:      CalcVersion,
		Source:           SourceLocal,
	}

	result := &Result{
		Chart:       calculated,
		HumanDesign: humandesign.Derive(personality, designGates),
		GeneKeys:    genekeys.Derive(personality, designGates),
		Numerology:  numerology.NewProfile(data.Year, data.Month, data.Day),
		Alchemy:     numerology.Alchemy(placements(natal)),
	}

	if s.sunEvents {
		sc := suncalc.NewSunCalc(data.Latitude, data.Longitude)
		if events, err := sc.GetSunEventTimes(birthUTC); err != nil {
			// Enrichment only; the chart stands without it.
			s.logger.Warn("sun event calculation failed", "error", err)
		} else {
			result.SunEvents = &events
			if daylight, err := sc.IsDaylight(birthUTC); err == nil {
				result.DaytimeBirth = &daylight
			}
		}
	}

	return result, nil
}

// SolarReturnDate finds the solar return instant for the natal Sun in the
// target year.
func (s *Service) SolarReturnDate(natalSunLongitude float64, year int) (time.Time, error) {
	instant, solveErr, err := SolarReturn(s.provider.SunLongitude, natalSunLongitude, year)
	if err != nil {
		return time.Time{}, err
	}
	if s.metrics != nil {
		s.metrics.RecordSolverRun("solar-return", solveErr)
	}
	return instant, nil
}

// Lifecycle returns the chakra lifecycle phase for the birth data at a target
// date.
func (s *Service) Lifecycle(data *BirthData, target time.Time) (numerology.LifecyclePhase, error) {
	birthUTC, err := ToUTC(data.Year, data.Month, data.Day, data.Hour, data.Minute, data.Timezone)
	if err != nil {
		return numerology.LifecyclePhase{}, err
	}
	return numerology.Lifecycle(birthUTC, target), nil
}

// placements projects natal positions into zodiac sign placements for the
// alchemical profile.
func placements(natal []ephemeris.BodyPosition) []numerology.Placement {
	out := make([]numerology.Placement, 0, len(natal))
	for _, bp := range natal {
		if bp.Err != nil {
			continue
		}
		out = append(out, numerology.Placement{
			Body: string(bp.Body),
			Sign: gates.SignFor(bp.Longitude),
		})
	}
	return out
}
