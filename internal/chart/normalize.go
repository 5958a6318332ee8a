package chart

import (
	"time"

	"github.com/soluna/temple-go/internal/errors"
)

// ToUTC converts a civil date and time in an IANA zone to the exact UTC
// instant, without consulting the host machine's local timezone.
//
// The method: take the civil values as if they were UTC to form a guess
// instant, observe what offset that guess carries in the target zone, then
// subtract the offset. This resolves DST and fractional-hour offsets such as
// UTC+5:30. For ambiguous or non-existent local times around a DST transition
// the offset the guess instant naturally resolves to wins
// (last-transition-wins); this is a documented policy, not an accident.
func ToUTC(year int, month time.Month, day, hour, minute int, zone string) (time.Time, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return time.Time{}, errors.New(err).
			Category(errors.CategoryTimeNormalize).
			Component("chart").
			Context("timezone", zone).
			Build()
	}

	// 24:00 from 24-hour clock formatting means midnight.
	if hour == 24 {
		hour = 0
	}

	guess := time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
	_, offsetSeconds := guess.In(loc).Zone()
	return guess.Add(-time.Duration(offsetSeconds) * time.Second), nil
}
