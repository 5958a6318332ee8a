package chart

import (
	"math"
	"time"

	"github.com/soluna/temple-go/internal/ephemeris"
	"github.com/soluna/temple-go/internal/errors"
)

const (
	// designArcDegrees is how far the Sun regresses between the design moment
	// and birth.
	designArcDegrees = 88.0

	// The Sun's mean daily motion guarantees the 88 degree regression happens
	// 88-91 days before birth; the window is padded to [80,100].
	designWindowMin = 80 * 24 * time.Hour
	designWindowMax = 100 * 24 * time.Hour

	solverMaxIterations = 20
	solverToleranceDeg  = 0.001

	// coarseScanSteps locates a sign-change bracket before bisection. The
	// solar-return window spans a full revolution of the Sun, so naive
	// bisection over the whole window can lock onto the antipodal wrap
	// instead of the true crossing.
	coarseScanSteps = 64
)

// LongitudeFunc returns a body's ecliptic longitude at an instant.
type LongitudeFunc func(time.Time) (float64, error)

// FindInstant finds the instant in [lo,hi] at which f crosses target (mod
// 360), by locating a negative-to-positive sign change of the wrapped angular
// difference and bisecting within it. The iteration budget gives sub-second
// bracket resolution for windows up to a year, far below the tolerance.
// Returns the final bracket midpoint together with the achieved angular error.
func FindInstant(f LongitudeFunc, target float64, lo, hi time.Time) (time.Time, float64, error) {
	if !hi.After(lo) {
		return time.Time{}, 0, errors.Newf("empty search window [%s, %s]", lo, hi).
			Category(errors.CategorySolver).
			Component("chart").
			Build()
	}

	delta := func(t time.Time) (float64, error) {
		lon, err := f(t)
		if err != nil {
			return 0, err
		}
		return ephemeris.SignedDelta(lon, target), nil
	}

	// Coarse scan for a bracket where the wrapped difference goes from
	// non-positive to positive.
	step := hi.Sub(lo) / coarseScanSteps
	prev := lo
	prevDelta, err := delta(lo)
	if err != nil {
		return time.Time{}, 0, err
	}
	bLo, bHi := lo, hi
	for i := 1; i <= coarseScanSteps; i++ {
		cur := lo.Add(time.Duration(i) * step)
		if i == coarseScanSteps {
			cur = hi
		}
		curDelta, err := delta(cur)
		if err != nil {
			return time.Time{}, 0, err
		}
		if prevDelta <= 0 && curDelta > 0 {
			bLo, bHi = prev, cur
			break
		}
		prev, prevDelta = cur, curDelta
	}

	// Bisect within the bracket.
	var mid time.Time
	for i := 0; i < solverMaxIterations; i++ {
		mid = bLo.Add(bHi.Sub(bLo) / 2)
		d, err := delta(mid)
		if err != nil {
			return time.Time{}, 0, err
		}
		if math.Abs(d) < solverToleranceDeg {
			return mid, math.Abs(d), nil
		}
		if d > 0 {
			bHi = mid
		} else {
			bLo = mid
		}
	}

	mid = bLo.Add(bHi.Sub(bLo) / 2)
	d, err := delta(mid)
	if err != nil {
		return time.Time{}, 0, err
	}
	return mid, math.Abs(d), nil
}

// DesignInstant finds the past instant at which the Sun sat exactly 88
// degrees behind its natal longitude.
func DesignInstant(sun LongitudeFunc, birthUTC time.Time, birthSunLongitude float64) (time.Time, float64, error) {
	target := ephemeris.NormalizeDegrees(birthSunLongitude - designArcDegrees)
	lo := birthUTC.Add(-designWindowMax)
	hi := birthUTC.Add(-designWindowMin)
	return FindInstant(sun, target, lo, hi)
}

// SolarReturn finds the instant within the target calendar year at which the
// Sun returns to the natal longitude. The window covers the whole year.
func SolarReturn(sun LongitudeFunc, natalSunLongitude float64, year int) (time.Time, float64, error) {
	lo := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	hi := lo.AddDate(0, 0, 366)
	return FindInstant(sun, ephemeris.NormalizeDegrees(natalSunLongitude), lo, hi)
}
