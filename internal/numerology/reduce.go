// Package numerology implements digit-sum reduction figures, the 7-year chakra
// lifecycle and the alchemical chakra activation profile.
package numerology

import (
	"fmt"
	"time"
)

// masterNumbers are preserved unreduced at every reduction step.
var masterNumbers = map[int]bool{11: true, 22: true, 33: true}

// Number is a reduced numerology figure. Base carries the fully reduced single
// digit when Value is a master number, and is 0 otherwise.
type Number struct {
	Value    int  `json:"value"` // 1..9 or 11/22/33
	Base     int  `json:"base,omitempty"`
	IsMaster bool `json:"isMaster"`
}

// Reduce applies digit-sum reduction with master-number preservation: 11, 22
// and 33 are returned unchanged at any step.
func Reduce(n int) int {
	for n > 9 && !masterNumbers[n] {
		n = digitSum(n)
	}
	return n
}

func digitSum(n int) int {
	sum := 0
	for n > 0 {
		sum += n % 10
		n /= 10
	}
	return sum
}

func makeNumber(n int) Number {
	v := Reduce(n)
	if masterNumbers[v] {
		return Number{Value: v, Base: digitSum(v), IsMaster: true}
	}
	return Number{Value: v}
}

func digitSumString(s string) int {
	sum := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sum += int(r - '0')
		}
	}
	return sum
}

// LifePath reduces all eight digits of the birth date (YYYYMMDD).
func LifePath(year int, month time.Month, day int) Number {
	return makeNumber(digitSumString(fmt.Sprintf("%04d%02d%02d", year, int(month), day)))
}

// Birthday reduces the day of month. Master-number days (11, 22) pass through
// unreduced.
func Birthday(day int) Number {
	return makeNumber(day)
}

// PersonalYear reduces the digits of birth month, birth day and target year
// concatenated.
func PersonalYear(month time.Month, day, targetYear int) Number {
	return makeNumber(digitSumString(fmt.Sprintf("%d%d%d", int(month), day, targetYear)))
}

// UniversalYear reduces the digits of the year alone.
func UniversalYear(year int) Number {
	return makeNumber(digitSum(year))
}

// Profile holds the core numerology figures for a birth date.
type Profile struct {
	LifePath Number `json:"lifePath"`
	Birthday Number `json:"birthday"`
}

// NewProfile computes the numerology profile for a birth date.
func NewProfile(year int, month time.Month, day int) *Profile {
	return &Profile{
		LifePath: LifePath(year, month, day),
		Birthday: Birthday(day),
	}
}
