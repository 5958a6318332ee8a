// Package humandesign derives a Human Design profile from natal and design
// gate activations using the fixed 9-center, 36-channel bodygraph.
package humandesign

// Center is one of the nine energy centers.
type Center string

const (
	Head        Center = "head"
	Ajna        Center = "ajna"
	Throat      Center = "throat"
	GCenter     Center = "g-center"
	Heart       Center = "heart"
	SolarPlexus Center = "solar-plexus"
	Sacral      Center = "sacral"
	Spleen      Center = "spleen"
	Root        Center = "root"
)

// Centers lists all nine centers.
var Centers = []Center{Head, Ajna, Throat, GCenter, Heart, SolarPlexus, Sacral, Spleen, Root}

// motors are the centers able to power manifestation.
var motors = map[Center]bool{
	Sacral:      true,
	Heart:       true,
	SolarPlexus: true,
	Root:        true,
}

// Channel connects two gates and the two centers they sit in. A channel is
// defined when both of its gates are activated by any natal or design body.
type Channel struct {
	ID      string
	GateA   int
	GateB   int
	CenterA Center
	CenterB Center
}

// channels is the fixed 36-channel catalog. IDs use the lower gate number first.
var channels = []Channel{
	// Head - Ajna
	{"47-64", 47, 64, Ajna, Head},
	{"24-61", 24, 61, Ajna, Head},
	{"4-63", 4, 63, Ajna, Head},
	// Ajna - Throat
	{"17-62", 17, 62, Ajna, Throat},
	{"23-43", 23, 43, Throat, Ajna},
	{"11-56", 11, 56, Ajna, Throat},
	// Throat - G
	{"7-31", 7, 31, GCenter, Throat},
	{"1-8", 1, 8, GCenter, Throat},
	{"13-33", 13, 33, GCenter, Throat},
	{"10-20", 10, 20, GCenter, Throat},
	// Throat - Heart
	{"21-45", 21, 45, Heart, Throat},
	// Throat - Solar Plexus
	{"35-36", 35, 36, Throat, SolarPlexus},
	{"12-22", 12, 22, Throat, SolarPlexus},
	// Throat - Spleen
	{"16-48", 16, 48, Throat, Spleen},
	{"20-57", 20, 57, Throat, Spleen},
	// Throat - Sacral
	{"20-34", 20, 34, Throat, Sacral},
	// G - Sacral
	{"2-14", 2, 14, GCenter, Sacral},
	{"5-15", 5, 15, Sacral, GCenter},
	{"29-46", 29, 46, Sacral, GCenter},
	{"10-34", 10, 34, GCenter, Sacral},
	// G - Heart
	{"25-51", 25, 51, GCenter, Heart},
	// G - Spleen
	{"10-57", 10, 57, GCenter, Spleen},
	// Heart - Spleen
	{"26-44", 26, 44, Heart, Spleen},
	// Heart - Solar Plexus
	{"37-40", 37, 40, SolarPlexus, Heart},
	// Sacral - Spleen
	{"27-50", 27, 50, Sacral, Spleen},
	{"34-57", 34, 57, Sacral, Spleen},
	// Sacral - Solar Plexus
	{"6-59", 6, 59, SolarPlexus, Sacral},
	// Sacral - Root
	{"3-60", 3, 60, Sacral, Root},
	{"42-53", 42, 53, Sacral, Root},
	{"9-52", 9, 52, Sacral, Root},
	// Spleen - Root
	{"18-58", 18, 58, Spleen, Root},
	{"28-38", 28, 38, Spleen, Root},
	{"32-54", 32, 54, Spleen, Root},
	// Solar Plexus - Root
	{"19-49", 19, 49, Root, SolarPlexus},
	{"39-55", 39, 55, Root, SolarPlexus},
	{"30-41", 30, 41, SolarPlexus, Root},
}

// motorToThroatChannels are the channels that link a motor center directly to
// the Throat; any one of them grants manifesting capacity. Derived from the
// catalog: 20-34 (Sacral), 21-45 (Heart), 35-36 and 12-22 (Solar Plexus).
var motorToThroatChannels = buildMotorToThroat()

func buildMotorToThroat() map[string]bool {
	out := make(map[string]bool, 4)
	for _, ch := range channels {
		if (ch.CenterA == Throat && motors[ch.CenterB]) ||
			(ch.CenterB == Throat && motors[ch.CenterA]) {
			out[ch.ID] = true
		}
	}
	return out
}

// Channels returns the fixed channel catalog.
func Channels() []Channel {
	return channels
}
