// Package gates maps ecliptic longitudes onto the fixed partitions of the
// 360 degree circle used by chart calculation: the 64-gate mandala wheel with
// 6 lines per gate, and the 12-sign zodiac.
package gates

import (
	"fmt"
	"math"

	"github.com/soluna/temple-go/internal/ephemeris"
)

const (
	// wheelStart anchors the mandala: gate 41 begins at 2 degrees Aquarius.
	// Every gate spans the same 5.625 degree arc; traditional mandala charts
	// that draw unequal gate widths are a rendering choice, not a different
	// partition of the ecliptic.
	wheelStart = 302.0
	gateArc    = 360.0 / 64.0 // 5.625 degrees
	lineArc    = gateArc / 6.0

	// Intentional fallback values for unmappable longitudes. Callers degrade
	// to these instead of erroring; do not "fix" them into failures.
	DefaultGate = 1
	DefaultLine = 1
)

// mandalaOrder lists the 64 gates in wheel order starting from wheelStart.
// The ordering is I-Ching derived and is not aligned with zodiac signs.
var mandalaOrder = [64]int{
	41, 19, 13, 49, 30, 55, 37, 63,
	22, 36, 25, 17, 21, 51, 42, 3,
	27, 24, 2, 23, 8, 20, 16, 35,
	45, 12, 15, 52, 39, 53, 62, 56,
	31, 33, 7, 4, 29, 59, 40, 64,
	47, 6, 46, 18, 48, 57, 32, 50,
	28, 44, 1, 43, 14, 34, 9, 5,
	26, 11, 10, 58, 38, 54, 61, 60,
}

// GateLine is the gate and line a longitude falls in.
type GateLine struct {
	Gate int // 1..64
	Line int // 1..6
}

// FromLongitude maps an ecliptic longitude to its gate and line. It is total
// over [0,360) in practice; ok is false only for non-finite input, and callers
// are expected to fall back to DefaultGate/DefaultLine rather than error.
func FromLongitude(longitude float64) (gl GateLine, ok bool) {
	if math.IsNaN(longitude) || math.IsInf(longitude, 0) {
		return GateLine{}, false
	}
	offset := ephemeris.NormalizeDegrees(longitude - wheelStart)
	idx := int(offset / gateArc)
	if idx > 63 {
		idx = 63 // guard against floating point edge at exactly 360
	}
	within := offset - float64(idx)*gateArc
	line := int(within/lineArc) + 1
	if line > 6 {
		line = 6
	}
	return GateLine{Gate: mandalaOrder[idx], Line: line}, true
}

// GateID returns the canonical string identifier of a gate number.
func GateID(gate int) string {
	return fmt.Sprintf("gate-%d", gate)
}

// Activation is a single gate activation derived from one body's longitude.
type Activation struct {
	GateID        string         `json:"gateId"`
	GateNumber    int            `json:"gateNumber"`
	Line          int            `json:"line"`
	Body          ephemeris.Body `json:"body"`
	IsPersonality bool           `json:"isPersonality"` // true for natal, false for design
}

// Activations maps a list of body positions to gate activations. Positions
// that cannot be mapped are dropped, not zero-filled.
func Activations(positions []ephemeris.BodyPosition, personality bool) []Activation {
	out := make([]Activation, 0, len(positions))
	for _, pos := range positions {
		gl, ok := FromLongitude(pos.Longitude)
		if !ok {
			continue
		}
		out = append(out, Activation{
			GateID:        GateID(gl.Gate),
			GateNumber:    gl.Gate,
			Line:          gl.Line,
			Body:          pos.Body,
			IsPersonality: personality,
		})
	}
	return out
}
