// Package ephemeris provides geocentric ecliptic longitudes for the bodies used
// in natal and Human Design chart calculation. Positions come from a pre-computed
// daily table when the requested instant falls inside the table window, and from
// a closed-form analytic model otherwise.
package ephemeris

// Body identifies a celestial body in the chart model.
type Body string

const (
	Sun     Body = "Sun"
	Moon    Body = "Moon"
	Mercury Body = "Mercury"
	Venus   Body = "Venus"
	Mars    Body = "Mars"
	Jupiter Body = "Jupiter"
	Saturn  Body = "Saturn"
	Uranus  Body = "Uranus"
	Neptune Body = "Neptune"
	Pluto   Body = "Pluto"

	// Earth is synthetic: always (Sun + 180) mod 360, never retrograde,
	// and has no ephemeris entry of its own.
	Earth    Body = "Earth"
	TrueNode Body = "True Node"
	Chiron   Body = "Chiron"
)

// TableBodies lists the ten bodies stored in the daily table, in column order.
// This ordering is part of the table schema and must not change.
var TableBodies = []Body{Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto}

// ChartBodies lists the thirteen bodies of a full Human Design chart,
// in the order activations are reported.
var ChartBodies = []Body{Sun, Earth, Moon, TrueNode, Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto, Chiron}

// BodyPosition is the per-body result of a positions query. A failed
// calculation carries its error here and a 0 degree sentinel longitude;
// failures never abort the batch.
type BodyPosition struct {
	Body       Body    `json:"body"`
	Longitude  float64 `json:"longitude"` // geocentric ecliptic longitude, [0,360)
	Retrograde bool    `json:"retrograde"`
	Err        error   `json:"-"`
}
