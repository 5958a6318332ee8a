package gates

import "github.com/soluna/temple-go/internal/ephemeris"

// Sign is one of the twelve zodiac signs.
type Sign string

// signs in ecliptic order, 30 degrees each from 0 Aries.
var signs = [12]Sign{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// SignFor returns the zodiac sign containing the given ecliptic longitude.
func SignFor(longitude float64) Sign {
	idx := int(ephemeris.NormalizeDegrees(longitude) / 30.0)
	if idx > 11 {
		idx = 11
	}
	return signs[idx]
}
