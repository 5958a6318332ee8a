package chart

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/soluna/temple-go/internal/ephemeris"
	"github.com/soluna/temple-go/internal/gates"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(ephemeris.NewProvider(nil, nil), nil)
}

func geminiNoonBirth() *BirthData {
	return &BirthData{
		Year:      2024,
		Month:     time.June,
		Day:       15,
		Hour:      12,
		Minute:    0,
		Timezone:  "UTC",
		Latitude:  40.7128,
		Longitude: -74.006,
		City:      "New York",
	}
}

func TestCalculatePipeline(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	data := geminiNoonBirth()
	if err := data.Validate(); err != nil {
		t.Fatalf("fixture data invalid: %v", err)
	}

	result, err := svc.Calculate(data)
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	chart := result.Chart
	if chart.CalcVersion != CalcVersion || chart.Source != SourceLocal {
		t.Errorf("chart tagged %s/%s, want %s/%s", chart.CalcVersion, chart.Source, CalcVersion, SourceLocal)
	}
	if !chart.BirthUTC.Equal(time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)) {
		t.Errorf("BirthUTC = %s, want noon UTC", chart.BirthUTC)
	}

	// Mid June the Sun is in Gemini.
	var natalSun *ephemeris.BodyPosition
	for i := range chart.Natal {
		if chart.Natal[i].Body == ephemeris.Sun {
			natalSun = &chart.Natal[i]
		}
	}
	if natalSun == nil {
		t.Fatal("natal positions missing the Sun")
	}
	if sign := gates.SignFor(natalSun.Longitude); sign != "Gemini" {
		t.Errorf("natal sun sign = %s, want Gemini", sign)
	}

	// Design moment precedes birth by roughly three months.
	gap := chart.BirthUTC.Sub(chart.DesignUTC)
	if gap < 80*24*time.Hour || gap > 100*24*time.Hour {
		t.Errorf("design gap = %v, want 80-100 days", gap)
	}

	// Both activation lists carry all thirteen chart bodies.
	if len(chart.PersonalityGates) != len(ephemeris.ChartBodies) {
		t.Errorf("got %d personality gates, want %d", len(chart.PersonalityGates), len(ephemeris.ChartBodies))
	}
	if len(chart.DesignGates) != len(ephemeris.ChartBodies) {
		t.Errorf("got %d design gates, want %d", len(chart.DesignGates), len(ephemeris.ChartBodies))
	}
	for _, a := range chart.PersonalityGates {
		if !a.IsPersonality {
			t.Errorf("personality activation flagged design: %+v", a)
		}
	}
	for _, a := range chart.DesignGates {
		if a.IsPersonality {
			t.Errorf("design activation flagged personality: %+v", a)
		}
	}

	// Every deriver produced output.
	if result.HumanDesign == nil || result.HumanDesign.Type == "" {
		t.Error("missing human design profile")
	}
	if result.GeneKeys == nil || len(result.GeneKeys.Spheres) != 16 {
		t.Error("missing gene keys spheres")
	}
	if result.Numerology == nil {
		t.Error("missing numerology profile")
	}
	if result.Alchemy == nil || len(result.Alchemy.Activations) != 7 {
		t.Error("missing alchemical profile")
	}
	if result.SunEvents == nil {
		t.Error("missing sun events enrichment")
	}
	// Noon UTC in New York is mid-morning local, well inside daylight.
	if result.DaytimeBirth == nil {
		t.Error("missing daytime birth flag")
	} else if !*result.DaytimeBirth {
		t.Error("noon birth flagged as nighttime")
	}
}

func TestCalculateDeterministic(t *testing.T) {
	t.Parallel()

	// Two independent services must agree byte for byte; the cache only ever
	// shortcuts work, it cannot change answers.
	data := geminiNoonBirth()
	a, err := newTestService(t).Calculate(data)
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	b, err := newTestService(t).Calculate(data)
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}

	aj, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	bj, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(aj) != string(bj) {
		t.Error("identical birth data produced different results")
	}
}

func TestCalculateUsesCache(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	data := geminiNoonBirth()

	first, err := svc.Calculate(data)
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	second, err := svc.Calculate(data)
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	if first != second {
		t.Error("second call did not return the cached result")
	}
}

func TestCalculateBadTimezone(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	data := geminiNoonBirth()
	data.Timezone = "Not/AZone"
	if _, err := svc.Calculate(data); err == nil {
		t.Fatal("expected error for unknown timezone")
	}
}

func TestDisableSunEvents(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	svc.DisableSunEvents()
	result, err := svc.Calculate(geminiNoonBirth())
	if err != nil {
		t.Fatalf("Calculate failed: %v", err)
	}
	if result.SunEvents != nil {
		t.Error("sun events present after disable")
	}
	if result.DaytimeBirth != nil {
		t.Error("daytime birth flag present after disable")
	}
}

func TestSolarReturnDate(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	instant, err := svc.SolarReturnDate(138.1873, 2026)
	if err != nil {
		t.Fatalf("SolarReturnDate failed: %v", err)
	}
	if instant.Month() != time.August {
		t.Errorf("solar return = %s, want August", instant)
	}
}

func TestServiceLifecycle(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	data := geminiNoonBirth()
	phase, err := svc.Lifecycle(data, time.Date(2031, 7, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Lifecycle failed: %v", err)
	}
	if phase.Age != 7 || phase.Chakra != "Sacral" {
		t.Errorf("phase = %+v, want age 7 Sacral", phase)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*BirthData)
		wantOK bool
	}{
		{"valid", func(b *BirthData) {}, true},
		{"hour 24 accepted", func(b *BirthData) { b.Hour = 24 }, true},
		{"latitude too high", func(b *BirthData) { b.Latitude = 91 }, false},
		{"longitude too low", func(b *BirthData) { b.Longitude = -181 }, false},
		{"month zero", func(b *BirthData) { b.Month = 0 }, false},
		{"day 31 in june", func(b *BirthData) { b.Day = 31 }, false},
		{"feb 29 non leap year", func(b *BirthData) { b.Year, b.Month, b.Day = 2023, time.February, 29 }, false},
		{"feb 29 leap year", func(b *BirthData) { b.Year, b.Month, b.Day = 2024, time.February, 29 }, true},
		{"hour 25", func(b *BirthData) { b.Hour = 25 }, false},
		{"minute 60", func(b *BirthData) { b.Minute = 60 }, false},
		{"unknown zone", func(b *BirthData) { b.Timezone = "Nowhere/Special" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			data := geminiNoonBirth()
			tt.mutate(data)
			err := data.Validate()
			if tt.wantOK && err != nil {
				t.Errorf("Validate failed: %v", err)
			}
			if !tt.wantOK && err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestBirthDataKey(t *testing.T) {
	t.Parallel()

	a := geminiNoonBirth()
	b := geminiNoonBirth()
	if a.Key() != b.Key() {
		t.Error("equal birth data must share a key")
	}
	b.Minute = 1
	if a.Key() == b.Key() {
		t.Error("different birth data must not share a key")
	}
}
