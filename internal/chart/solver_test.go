package chart

import (
	"math"
	"testing"
	"time"

	"github.com/soluna/temple-go/internal/ephemeris"
)

func modelSun(t time.Time) (float64, error) {
	return ephemeris.ComputeLongitude(ephemeris.Sun, t)
}

func TestDesignInstant(t *testing.T) {
	t.Parallel()

	births := []time.Time{
		time.Date(2024, 6, 15, 16, 0, 0, 0, time.UTC),
		time.Date(1990, 12, 25, 3, 30, 0, 0, time.UTC),
		time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	for _, birth := range births {
		birthSun, err := modelSun(birth)
		if err != nil {
			t.Fatalf("birth sun failed: %v", err)
		}

		design, achieved, err := DesignInstant(modelSun, birth, birthSun)
		if err != nil {
			t.Fatalf("DesignInstant(%s) failed: %v", birth, err)
		}

		// Always strictly before birth, roughly three months.
		gap := birth.Sub(design)
		if gap < 80*24*time.Hour || gap > 100*24*time.Hour {
			t.Errorf("design gap for %s = %v, want 80-100 days", birth, gap)
		}

		// The Sun must sit 88 degrees behind its natal longitude.
		designSun, err := modelSun(design)
		if err != nil {
			t.Fatalf("design sun failed: %v", err)
		}
		want := ephemeris.NormalizeDegrees(birthSun - 88)
		if diff := math.Abs(ephemeris.SignedDelta(designSun, want)); diff > 0.01 {
			t.Errorf("design sun for %s off target by %.4f degrees", birth, diff)
		}
		if achieved > 0.01 {
			t.Errorf("reported solver error %.4f exceeds expectation", achieved)
		}
	}
}

func TestSolarReturn(t *testing.T) {
	t.Parallel()

	// A natal Sun at 138.1873 degrees (mid Leo) returns around August 10.
	instant, achieved, err := SolarReturn(modelSun, 138.1873, 2026)
	if err != nil {
		t.Fatalf("SolarReturn failed: %v", err)
	}
	if instant.Year() != 2026 || instant.Month() != time.August {
		t.Fatalf("solar return = %s, want August 2026", instant)
	}
	if instant.Day() < 9 || instant.Day() > 12 {
		t.Errorf("solar return day = %d, want near the 10th", instant.Day())
	}
	if achieved > 0.01 {
		t.Errorf("solver error %.4f too large", achieved)
	}

	// The Sun really is at the natal longitude there.
	lon, err := modelSun(instant)
	if err != nil {
		t.Fatalf("sun at return failed: %v", err)
	}
	if diff := math.Abs(ephemeris.SignedDelta(lon, 138.1873)); diff > 0.01 {
		t.Errorf("sun at return off by %.4f degrees", diff)
	}
}

func TestSolarReturnEarlyInYear(t *testing.T) {
	t.Parallel()

	// A Capricorn natal Sun crosses early in January; the scan must find the
	// true crossing and not the antipodal wrap mid-year.
	instant, _, err := SolarReturn(modelSun, 280.0, 2026)
	if err != nil {
		t.Fatalf("SolarReturn failed: %v", err)
	}
	if instant.Month() != time.January && instant.Month() != time.December {
		t.Errorf("solar return for 280 degrees = %s, want around the new year", instant)
	}
}

func TestFindInstantEmptyWindow(t *testing.T) {
	t.Parallel()

	now := time.Now()
	if _, _, err := FindInstant(modelSun, 100, now, now); err == nil {
		t.Error("expected error for empty window")
	}
	if _, _, err := FindInstant(modelSun, 100, now, now.Add(-time.Hour)); err == nil {
		t.Error("expected error for inverted window")
	}
}
