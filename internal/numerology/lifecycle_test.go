package numerology

import (
	"testing"
	"time"
)

func TestLifecyclePhases(t *testing.T) {
	t.Parallel()

	birth := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		target         time.Time
		wantAge        int
		wantChakra     string
		wantCycle      int
		wantYear       int
		wantTransition bool
	}{
		{
			name:       "infancy is Root year one",
			target:     birth.AddDate(0, 0, 100),
			wantAge:    0,
			wantChakra: "Root",
			wantCycle:  1,
			wantYear:   1,
		},
		{
			name:           "age six closes the Root period",
			target:         birth.AddDate(6, 0, 15),
			wantAge:        6,
			wantChakra:     "Root",
			wantCycle:      1,
			wantYear:       7,
			wantTransition: true,
		},
		{
			name:       "age seven opens the Sacral period",
			target:     birth.AddDate(7, 0, 15),
			wantAge:    7,
			wantChakra: "Sacral",
			wantCycle:  2,
			wantYear:   1,
		},
		{
			name:       "age 49 wraps back to Root",
			target:     birth.AddDate(49, 0, 15),
			wantAge:    49,
			wantChakra: "Root",
			wantCycle:  8,
			wantYear:   1,
		},
		{
			name:       "age 44 is the Crown period",
			target:     birth.AddDate(44, 0, 15),
			wantAge:    44,
			wantChakra: "Crown",
			wantCycle:  7,
			wantYear:   3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Lifecycle(birth, tt.target)
			if got.Age != tt.wantAge {
				t.Errorf("Age = %d, want %d", got.Age, tt.wantAge)
			}
			if got.Chakra != tt.wantChakra {
				t.Errorf("Chakra = %s, want %s", got.Chakra, tt.wantChakra)
			}
			if got.Cycle != tt.wantCycle {
				t.Errorf("Cycle = %d, want %d", got.Cycle, tt.wantCycle)
			}
			if got.YearInPeriod != tt.wantYear {
				t.Errorf("YearInPeriod = %d, want %d", got.YearInPeriod, tt.wantYear)
			}
			if got.IsTransitionYear != tt.wantTransition {
				t.Errorf("IsTransitionYear = %v, want %v", got.IsTransitionYear, tt.wantTransition)
			}
		})
	}
}

func TestLifecycleBeforeBirthClamps(t *testing.T) {
	t.Parallel()

	birth := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	got := Lifecycle(birth, birth.AddDate(-1, 0, 0))
	if got.Age != 0 || got.Chakra != "Root" {
		t.Errorf("pre-birth lifecycle = %+v, want age 0 Root", got)
	}
}
