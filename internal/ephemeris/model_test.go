package ephemeris

import (
	"math"
	"testing"
	"time"
)

func TestSunLongitudeKnownFixtures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		instant time.Time
		want    float64 // expected longitude, degrees
		tol     float64
	}{
		{
			name:    "mid June 2024 is Gemini",
			instant: time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC),
			want:    84.8,
			tol:     0.5,
		},
		{
			name:    "new year 2000 is Capricorn",
			instant: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
			want:    280.0,
			tol:     1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ComputeLongitude(Sun, tt.instant)
			if err != nil {
				t.Fatalf("ComputeLongitude(Sun) failed: %v", err)
			}
			if math.Abs(SignedDelta(got, tt.want)) > tt.tol {
				t.Errorf("Sun longitude = %.4f, want %.4f within %.2f", got, tt.want, tt.tol)
			}
		})
	}
}

func TestAllBodiesInRange(t *testing.T) {
	t.Parallel()

	instants := []time.Time{
		time.Date(1950, 3, 21, 6, 30, 0, 0, time.UTC),
		time.Date(1987, 11, 2, 18, 45, 0, 0, time.UTC),
		time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC),
		time.Date(2080, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	bodies := append([]Body{}, TableBodies...)
	bodies = append(bodies, TrueNode, Chiron)

	for _, instant := range instants {
		for _, body := range bodies {
			lon, err := ComputeLongitude(body, instant)
			if err != nil {
				t.Fatalf("ComputeLongitude(%s, %s) failed: %v", body, instant, err)
			}
			if lon < 0 || lon >= 360 {
				t.Errorf("%s at %s: longitude %.4f out of [0,360)", body, instant, lon)
			}
		}
	}
}

func TestUnknownBodyFails(t *testing.T) {
	t.Parallel()

	if _, err := ComputeLongitude(Body("Vulcan"), time.Now()); err == nil {
		t.Error("expected error for unknown body")
	}
	// Earth has no model of its own; it is derived from the Sun.
	if _, err := ComputeLongitude(Earth, time.Now()); err == nil {
		t.Error("expected error for Earth model query")
	}
}

func TestMoonDailyMotion(t *testing.T) {
	t.Parallel()

	day := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	lon1, err := ComputeLongitude(Moon, day)
	if err != nil {
		t.Fatalf("moon longitude failed: %v", err)
	}
	lon2, err := ComputeLongitude(Moon, day.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("moon longitude failed: %v", err)
	}

	// The Moon moves roughly 12-15 degrees per day, always forward.
	motion := SignedDelta(lon2, lon1)
	if motion < 10 || motion > 16 {
		t.Errorf("moon daily motion = %.2f degrees, want between 10 and 16", motion)
	}
}

func TestSunNeverRetrograde(t *testing.T) {
	t.Parallel()

	if isRetrograde(Sun, time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)) {
		t.Error("Sun must never be flagged retrograde")
	}
	if isRetrograde(Moon, time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)) {
		t.Error("Moon must never be flagged retrograde")
	}
}

func TestSignedDelta(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b, want float64
	}{
		{10, 350, 20},
		{350, 10, -20},
		{180, 0, 180},
		{90, 90, 0},
	}
	for _, tt := range tests {
		if got := SignedDelta(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("SignedDelta(%v,%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestNormalizeDegrees(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want float64
	}{
		{-3.15, 356.85},
		{360, 0},
		{725, 5},
		{84.85, 84.85},
	}
	for _, tt := range tests {
		if got := NormalizeDegrees(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NormalizeDegrees(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
