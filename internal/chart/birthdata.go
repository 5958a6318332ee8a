// Package chart orchestrates the natal/Human Design calculation pipeline:
// civil time normalization, ephemeris queries, the design-date solve, gate
// mapping and the downstream derivers.
package chart

import (
	"fmt"
	"time"

	"github.com/soluna/temple-go/internal/ephemeris"
	"github.com/soluna/temple-go/internal/errors"
	"github.com/soluna/temple-go/internal/gates"
	"github.com/soluna/temple-go/internal/genekeys"
	"github.com/soluna/temple-go/internal/humandesign"
	"github.com/soluna/temple-go/internal/numerology"
	"github.com/soluna/temple-go/internal/suncalc"
)

const (
	// CalcVersion tags every calculated chart with the calculation revision.
	CalcVersion = "v1"
	// SourceLocal marks charts produced by this pipeline, as opposed to any
	// future external ephemeris service.
	SourceLocal = "local"
)

// BirthData is the immutable input of the pipeline.
type BirthData struct {
	Year      int        `json:"year"`
	Month     time.Month `json:"month"`
	Day       int        `json:"day"`
	Hour      int        `json:"hour"`   // 0..23, 24 accepted as midnight rollover
	Minute    int        `json:"minute"` // 0..59
	Timezone  string     `json:"timezone"` // IANA zone name
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	City      string     `json:"city"`
}

// Validate rejects malformed birth data before it reaches the pipeline.
// The pipeline itself assumes well-formed input and does not re-validate.
func (b *BirthData) Validate() error {
	if b.Latitude < -90 || b.Latitude > 90 {
		return errors.ValidationError(fmt.Sprintf("latitude %.4f out of range [-90,90]", b.Latitude))
	}
	if b.Longitude < -180 || b.Longitude > 180 {
		return errors.ValidationError(fmt.Sprintf("longitude %.4f out of range [-180,180]", b.Longitude))
	}
	if b.Month < time.January || b.Month > time.December {
		return errors.ValidationError(fmt.Sprintf("month %d out of range", b.Month))
	}
	if b.Day < 1 || b.Day > daysInMonth(b.Year, b.Month) {
		return errors.ValidationError(fmt.Sprintf("day %d invalid for %d-%02d", b.Day, b.Year, b.Month))
	}
	if b.Hour < 0 || b.Hour > 24 {
		return errors.ValidationError(fmt.Sprintf("hour %d out of range [0,24]", b.Hour))
	}
	if b.Minute < 0 || b.Minute > 59 {
		return errors.ValidationError(fmt.Sprintf("minute %d out of range [0,59]", b.Minute))
	}
	if _, err := time.LoadLocation(b.Timezone); err != nil {
		return errors.New(err).Category(errors.CategoryValidation).Context("timezone", b.Timezone).Build()
	}
	return nil
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Key returns the cache key identifying this birth data. Charts are pure
// functions of BirthData, so equality of keys implies equality of results.
func (b *BirthData) Key() string {
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d@%s/%.4f/%.4f",
		b.Year, b.Month, b.Day, b.Hour, b.Minute, b.Timezone, b.Latitude, b.Longitude)
}

// CalculatedChart holds the raw positional output of the pipeline.
type CalculatedChart struct {
	BirthUTC         time.Time                 `json:"birthUtc"`
	DesignUTC        time.Time                 `json:"designUtc"`
	Natal            []ephemeris.BodyPosition  `json:"natal"`
	Design           []ephemeris.BodyPosition  `json:"design"`
	PersonalityGates []gates.Activation        `json:"personalityGates"`
	DesignGates      []gates.Activation        `json:"designGates"`
	CalcVersion      string                    `json:"calcVersion"`
	Source           string                    `json:"source"`
}

// Result bundles everything the pipeline derives for one BirthData.
type Result struct {
	Chart       *CalculatedChart              `json:"chart"`
	HumanDesign *humandesign.Profile          `json:"humanDesign"`
	GeneKeys    *genekeys.Profile             `json:"geneKeys"`
	Numerology  *numerology.Profile           `json:"numerology"`
	Alchemy     *numerology.AlchemicalProfile `json:"alchemy"`
	SunEvents   *suncalc.SunEventTimes        `json:"sunEvents,omitempty"`
	// DaytimeBirth reports whether the birth instant fell between sunrise and
	// sunset at the birth place. Present only when sun events are enabled.
	DaytimeBirth *bool `json:"daytimeBirth,omitempty"`
}
