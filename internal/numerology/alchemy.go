package numerology

import (
	"strings"

	"github.com/soluna/temple-go/internal/gates"
)

// Placement is a natal body placed in a zodiac sign, supplied by the
// surrounding astrology layer.
type Placement struct {
	Body string     `json:"body"`
	Sign gates.Sign `json:"sign"`
}

// Substance is one of the three alchemical buckets.
type Substance string

const (
	Sulphur Substance = "sulphur"
	Mercury Substance = "mercury"
	Salt    Substance = "salt"
)

// chakraAffinity holds a chakra's fixed zodiac sign affinities and its
// alchemical substance label.
type chakraAffinity struct {
	Chakra    string
	Signs     []gates.Sign
	Substance string
}

// chakraAffinities is static configuration: elemental sign triplets for the
// lower chakras, dual-sign affinities above the heart.
var chakraAffinities = []chakraAffinity{
	{"Root", []gates.Sign{"Taurus", "Virgo", "Capricorn"}, "salt of the earth"},
	{"Sacral", []gates.Sign{"Cancer", "Scorpio", "Pisces"}, "mercury of the waters"},
	{"Solar Plexus", []gates.Sign{"Aries", "Leo", "Sagittarius"}, "sulphur of the flame"},
	{"Heart", []gates.Sign{"Libra", "Taurus", "Leo"}, "salt tempered by breath"},
	{"Throat", []gates.Sign{"Gemini", "Taurus"}, "mercury of the word"},
	{"Third Eye", []gates.Sign{"Sagittarius", "Pisces", "Aquarius"}, "mercury of vision"},
	{"Crown", []gates.Sign{"Aquarius", "Capricorn"}, "sulphur sublimated"},
}

// ChakraActivation is the activation tally for one chakra.
type ChakraActivation struct {
	Chakra    string       `json:"chakra"`
	Bodies    []string     `json:"bodies"`
	Substance Substance    `json:"substance"`
	Signs     []gates.Sign `json:"signs"`
}

// AlchemicalProfile summarizes chakra activation over the natal placements.
type AlchemicalProfile struct {
	Activations []ChakraActivation `json:"activations"`
	Dominant    Substance          `json:"dominant"`
}

// classifySubstance buckets a substance label by substring match; anything
// that names neither sulphur nor mercury is salt.
func classifySubstance(label string) Substance {
	switch {
	case strings.Contains(label, "sulphur"):
		return Sulphur
	case strings.Contains(label, "mercury"):
		return Mercury
	default:
		return Salt
	}
}

// Alchemy tallies which natal placements activate each chakra by sign
// affinity, then picks the substance bucket with the strict maximum count of
// activating bodies. Ties default to salt.
func Alchemy(placements []Placement) *AlchemicalProfile {
	counts := map[Substance]int{}
	activations := make([]ChakraActivation, 0, len(chakraAffinities))

	for _, ca := range chakraAffinities {
		affine := make(map[gates.Sign]bool, len(ca.Signs))
		for _, s := range ca.Signs {
			affine[s] = true
		}
		var bodies []string
		for _, p := range placements {
			if affine[p.Sign] {
				bodies = append(bodies, p.Body)
			}
		}
		substance := classifySubstance(ca.Substance)
		counts[substance] += len(bodies)
		activations = append(activations, ChakraActivation{
			Chakra:    ca.Chakra,
			Bodies:    bodies,
			Substance: substance,
			Signs:     ca.Signs,
		})
	}

	dominant := Salt
	if counts[Sulphur] > counts[Mercury] && counts[Sulphur] > counts[Salt] {
		dominant = Sulphur
	} else if counts[Mercury] > counts[Sulphur] && counts[Mercury] > counts[Salt] {
		dominant = Mercury
	}

	return &AlchemicalProfile{Activations: activations, Dominant: dominant}
}
