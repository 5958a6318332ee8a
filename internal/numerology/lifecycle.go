package numerology

import "time"

// chakraCycle lists the seven chakras in lifecycle order, Root first.
var chakraCycle = [7]string{
	"Root", "Sacral", "Solar Plexus", "Heart", "Throat", "Third Eye", "Crown",
}

const daysPerYear = 365.25

// LifecyclePhase locates an age within the repeating 7-chakra x 7-year cycle.
type LifecyclePhase struct {
	Age              int    `json:"age"`
	Chakra           string `json:"chakra"`
	ChakraIndex      int    `json:"chakraIndex"`  // 0=Root .. 6=Crown
	Cycle            int    `json:"cycle"`        // 1-based 7-year period count
	YearInPeriod     int    `json:"yearInPeriod"` // 1..7
	IsTransitionYear bool   `json:"isTransitionYear"`
}

// Lifecycle computes the chakra lifecycle phase at the target date. Age is in
// whole years using the 365.25-day year approximation.
func Lifecycle(birth, target time.Time) LifecyclePhase {
	age := int(target.Sub(birth).Hours() / 24 / daysPerYear)
	if age < 0 {
		age = 0
	}
	period := age / 7
	return LifecyclePhase{
		Age:              age,
		Chakra:           chakraCycle[period%7],
		ChakraIndex:      period % 7,
		Cycle:            period + 1,
		YearInPeriod:     age%7 + 1,
		IsTransitionYear: age%7 == 6,
	}
}
