// Package genekeys derives the sixteen Gene Keys spheres from natal and design
// gate activations. Gene Key numbers share the Human Design gate numbering
// space by construction.
package genekeys

import (
	"github.com/soluna/temple-go/internal/ephemeris"
	"github.com/soluna/temple-go/internal/gates"
)

// Intentional fallback when a sphere's source body has no mapped activation.
const (
	defaultGate = 1
	defaultLine = 1
)

// The Ascendant sphere needs house-system data this pipeline does not have;
// it is a fixed placeholder by design.
const (
	ascendantGate = 44
	ascendantLine = 4
)

// source names which body, at which of the two chart moments, fills a sphere.
type source struct {
	name   string
	body   ephemeris.Body
	design bool
}

// sphereSources is the fixed sphere catalog in presentation order:
// the activation, Venus and pearl sequences, then the core identity bundle.
var sphereSources = []source{
	{"Life's Work", ephemeris.Sun, false},
	{"Evolution", ephemeris.Earth, false},
	{"Radiance", ephemeris.Sun, true},
	{"Purpose", ephemeris.Earth, true},
	{"Attraction", ephemeris.Moon, true},
	{"IQ", ephemeris.Venus, false},
	{"EQ", ephemeris.Venus, true},
	{"SQ", ephemeris.Mars, true},
	{"Core", ephemeris.Mars, false},
	{"Vocation", ephemeris.Mercury, true},
	{"Culture", ephemeris.Jupiter, false},
	{"Pearl", ephemeris.Jupiter, true},
	{"Core Sun", ephemeris.Sun, false},
	{"Core Moon", ephemeris.Moon, false},
	{"Core Mercury", ephemeris.Mercury, false},
	{"Ascendant", "", false},
}

// Sphere is a named slot holding the gate and line its source body produced.
type Sphere struct {
	Name   string `json:"name"`
	Gate   int    `json:"gate"` // Gene Key number, 1..64
	Line   int    `json:"line"` // 1..6
	Source string `json:"source"`
}

// Profile holds the sixteen spheres in catalog order.
type Profile struct {
	Spheres []Sphere `json:"spheres"`
}

// Sphere returns the named sphere, if present.
func (p *Profile) Sphere(name string) (Sphere, bool) {
	for _, s := range p.Spheres {
		if s.Name == name {
			return s, true
		}
	}
	return Sphere{}, false
}

// Derive fills the sphere catalog from the two activation lists. A missing
// source body yields the documented gate 1 line 1 fallback, never an error.
func Derive(personality, design []gates.Activation) *Profile {
	spheres := make([]Sphere, 0, len(sphereSources))
	for _, src := range sphereSources {
		if src.name == "Ascendant" {
			spheres = append(spheres, Sphere{
				Name:   "Ascendant",
				Gate:   ascendantGate,
				Line:   ascendantLine,
				Source: "Ascendant (placeholder)",
			})
			continue
		}

		list := personality
		label := string(src.body) + " (natal)"
		if src.design {
			list = design
			label = string(src.body) + " (design)"
		}

		gate, line := defaultGate, defaultLine
		for _, a := range list {
			if a.Body == src.body {
				gate, line = a.GateNumber, a.Line
				break
			}
		}
		spheres = append(spheres, Sphere{Name: src.name, Gate: gate, Line: line, Source: label})
	}
	return &Profile{Spheres: spheres}
}
