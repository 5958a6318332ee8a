package humandesign

import (
	"fmt"
	"sort"

	"github.com/soluna/temple-go/internal/ephemeris"
	"github.com/soluna/temple-go/internal/gates"
)

// Type is one of the five Human Design types.
type Type string

const (
	Generator            Type = "Generator"
	ManifestingGenerator Type = "Manifesting Generator"
	Manifestor           Type = "Manifestor"
	Projector            Type = "Projector"
	Reflector            Type = "Reflector"
)

// Authority is the inner decision-making authority.
type Authority string

const (
	AuthorityEmotional Authority = "Emotional"
	AuthoritySacral    Authority = "Sacral"
	AuthoritySplenic   Authority = "Splenic"
	AuthorityEgo       Authority = "Ego/Heart"
	AuthoritySelf      Authority = "Self/G"
	AuthorityMental    Authority = "Mental/None"
	AuthorityLunar     Authority = "Lunar"
)

// fallbackProfile is returned when the natal/design Sun lines do not form one
// of the twelve canonical profiles. An intentional simplification, not an
// error path.
const fallbackProfile = "5/1"

// validProfiles are the twelve canonical line pairings.
var validProfiles = map[string]bool{
	"1/3": true, "1/4": true, "2/4": true, "2/5": true,
	"3/5": true, "3/6": true, "4/6": true, "4/1": true,
	"5/1": true, "5/2": true, "6/2": true, "6/3": true,
}

// Profile aggregates everything derived from the 26 gate activations.
type Profile struct {
	Type             Type               `json:"type"`
	Strategy         string             `json:"strategy"`
	Authority        Authority          `json:"authority"`
	Profile          string             `json:"profile"`
	Definition       string             `json:"definition"`
	IncarnationCross string             `json:"incarnationCross"`
	DefinedCenters   []Center           `json:"definedCenterIds"`
	DefinedChannels  []string           `json:"definedChannelIds"`
	PersonalityGates []gates.Activation `json:"personalityGates"`
	DesignGates      []gates.Activation `json:"designGates"`
}

// Derive computes the Human Design profile from natal and design activations.
func Derive(personality, design []gates.Activation) *Profile {
	activated := make(map[int]bool)
	for _, a := range personality {
		activated[a.GateNumber] = true
	}
	for _, a := range design {
		activated[a.GateNumber] = true
	}

	definedChannels := make([]string, 0, len(channels))
	centerSet := make(map[Center]bool)
	hasMotorToThroat := false
	for _, ch := range channels {
		if activated[ch.GateA] && activated[ch.GateB] {
			definedChannels = append(definedChannels, ch.ID)
			centerSet[ch.CenterA] = true
			centerSet[ch.CenterB] = true
			if motorToThroatChannels[ch.ID] {
				hasMotorToThroat = true
			}
		}
	}

	definedCenters := make([]Center, 0, len(centerSet))
	for _, c := range Centers {
		if centerSet[c] {
			definedCenters = append(definedCenters, c)
		}
	}
	sort.Strings(definedChannels)

	hdType := deriveType(centerSet, hasMotorToThroat)

	return &Profile{
		Type:             hdType,
		Strategy:         strategyFor(hdType),
		Authority:        deriveAuthority(centerSet),
		Profile:          deriveProfile(personality, design),
		Definition:       definitionFor(len(definedChannels)),
		IncarnationCross: incarnationCross(personality, design),
		DefinedCenters:   definedCenters,
		DefinedChannels:  definedChannels,
		PersonalityGates: personality,
		DesignGates:      design,
	}
}

// deriveType applies the strict type priority cascade. The order of checks
// matters and must not be rearranged.
func deriveType(defined map[Center]bool, hasMotorToThroat bool) Type {
	switch {
	case len(defined) == 0:
		return Reflector
	case defined[Sacral] && hasMotorToThroat:
		return ManifestingGenerator
	case defined[Sacral]:
		return Generator
	case hasMotorToThroat:
		return Manifestor
	default:
		return Projector
	}
}

// strategyFor is a pure function of type.
func strategyFor(t Type) string {
	switch t {
	case Generator, ManifestingGenerator:
		return "Wait to Respond"
	case Projector:
		return "Wait for Invitation"
	case Manifestor:
		return "Inform then Act"
	default:
		return "Wait for Lunar Cycle"
	}
}

// deriveAuthority applies the authority priority cascade over defined centers.
// Lunar is the default when none of the listed centers are defined.
func deriveAuthority(defined map[Center]bool) Authority {
	switch {
	case defined[SolarPlexus]:
		return AuthorityEmotional
	case defined[Sacral]:
		return AuthoritySacral
	case defined[Spleen]:
		return AuthoritySplenic
	case defined[Heart]:
		return AuthorityEgo
	case defined[GCenter]:
		return AuthoritySelf
	case defined[Head] || defined[Ajna]:
		return AuthorityMental
	default:
		return AuthorityLunar
	}
}

// deriveProfile joins the natal Sun line and design Sun line. Non-canonical
// pairs fall back to fallbackProfile; the fallback is deliberate and logged by
// callers that care, never an error.
func deriveProfile(personality, design []gates.Activation) string {
	natalSun, okN := findBody(personality, ephemeris.Sun)
	designSun, okD := findBody(design, ephemeris.Sun)
	if !okN || !okD {
		return fallbackProfile
	}
	profile := fmt.Sprintf("%d/%d", natalSun.Line, designSun.Line)
	if !validProfiles[profile] {
		return fallbackProfile
	}
	return profile
}

// definitionFor buckets definition purely by defined channel count. True HD
// definition depends on connectivity components of the defined-channel graph;
// the count bucketing is a deliberate, documented approximation.
func definitionFor(channelCount int) string {
	switch {
	case channelCount == 0:
		return "No Definition"
	case channelCount <= 2:
		return "Single"
	case channelCount <= 4:
		return "Split"
	case channelCount <= 6:
		return "Triple Split"
	default:
		return "Quadruple Split"
	}
}

// incarnationCross formats the four cross gates: natal Sun/Earth over design
// Sun/Earth. Unmapped bodies fall back to the default gate.
func incarnationCross(personality, design []gates.Activation) string {
	gate := func(list []gates.Activation, body ephemeris.Body) int {
		if a, ok := findBody(list, body); ok {
			return a.GateNumber
		}
		return gates.DefaultGate
	}
	return fmt.Sprintf("%d/%d | %d/%d",
		gate(personality, ephemeris.Sun),
		gate(personality, ephemeris.Earth),
		gate(design, ephemeris.Sun),
		gate(design, ephemeris.Earth))
}

func findBody(list []gates.Activation, body ephemeris.Body) (gates.Activation, bool) {
	for _, a := range list {
		if a.Body == body {
			return a, true
		}
	}
	return gates.Activation{}, false
}
