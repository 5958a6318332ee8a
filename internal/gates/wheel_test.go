package gates

import (
	"math"
	"testing"

	"github.com/soluna/temple-go/internal/ephemeris"
)

func TestFromLongitudeAnchors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		longitude float64
		wantGate  int
		wantLine  int
	}{
		{"wheel start opens gate 41 line 1", 302.0, 41, 1},
		{"just before wheel start closes gate 60 line 6", 301.999, 60, 6},
		{"second gate on the wheel", 302.0 + 5.625, 19, 1},
		{"zero degrees Aries", 0.0, 25, 2},
		{"wrap just below 360 stays in gate 25", 360.0 - 0.001, 25, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			gl, ok := FromLongitude(tt.longitude)
			if !ok {
				t.Fatalf("FromLongitude(%v) not ok", tt.longitude)
			}
			if gl.Gate != tt.wantGate || gl.Line != tt.wantLine {
				t.Errorf("FromLongitude(%v) = gate %d line %d, want gate %d line %d",
					tt.longitude, gl.Gate, gl.Line, tt.wantGate, tt.wantLine)
			}
		})
	}
}

func TestFromLongitudeTotality(t *testing.T) {
	t.Parallel()

	// Sweep the whole circle: every longitude must map to a valid gate/line.
	seen := make(map[int]bool)
	for lon := 0.0; lon < 360.0; lon += 0.01 {
		gl, ok := FromLongitude(lon)
		if !ok {
			t.Fatalf("FromLongitude(%v) not ok", lon)
		}
		if gl.Gate < 1 || gl.Gate > 64 {
			t.Fatalf("FromLongitude(%v) gate %d out of range", lon, gl.Gate)
		}
		if gl.Line < 1 || gl.Line > 6 {
			t.Fatalf("FromLongitude(%v) line %d out of range", lon, gl.Line)
		}
		seen[gl.Gate] = true
	}
	if len(seen) != 64 {
		t.Errorf("sweep covered %d gates, want all 64", len(seen))
	}
}

func TestFromLongitudeNonFinite(t *testing.T) {
	t.Parallel()

	if _, ok := FromLongitude(math.NaN()); ok {
		t.Error("NaN must not map")
	}
	if _, ok := FromLongitude(math.Inf(1)); ok {
		t.Error("+Inf must not map")
	}
	if _, ok := FromLongitude(math.Inf(-1)); ok {
		t.Error("-Inf must not map")
	}
}

func TestGateID(t *testing.T) {
	t.Parallel()

	if got := GateID(41); got != "gate-41" {
		t.Errorf("GateID(41) = %q, want %q", got, "gate-41")
	}
}

func TestActivations(t *testing.T) {
	t.Parallel()

	positions := []ephemeris.BodyPosition{
		{Body: ephemeris.Sun, Longitude: 302.0},
		{Body: ephemeris.Moon, Longitude: math.NaN()},
		{Body: ephemeris.Mars, Longitude: 0.0},
	}

	acts := Activations(positions, true)
	if len(acts) != 2 {
		t.Fatalf("got %d activations, want 2 (unmappable dropped)", len(acts))
	}
	if acts[0].GateNumber != 41 || acts[0].Line != 1 || acts[0].Body != ephemeris.Sun {
		t.Errorf("unexpected first activation: %+v", acts[0])
	}
	if acts[0].GateID != "gate-41" {
		t.Errorf("GateID = %q, want gate-41", acts[0].GateID)
	}
	for _, a := range acts {
		if !a.IsPersonality {
			t.Errorf("%s activation should be personality", a.Body)
		}
	}

	design := Activations(positions, false)
	for _, a := range design {
		if a.IsPersonality {
			t.Errorf("%s activation should be design", a.Body)
		}
	}
}

func TestSignFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		longitude float64
		want      Sign
	}{
		{0, "Aries"},
		{29.999, "Aries"},
		{30, "Taurus"},
		{84.85, "Gemini"},
		{138.19, "Leo"},
		{279.87, "Capricorn"},
		{359.999, "Pisces"},
		{-10, "Pisces"},
	}
	for _, tt := range tests {
		if got := SignFor(tt.longitude); got != tt.want {
			t.Errorf("SignFor(%v) = %s, want %s", tt.longitude, got, tt.want)
		}
	}
}
