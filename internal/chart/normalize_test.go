package chart

import (
	"testing"
	"time"

	"github.com/soluna/temple-go/internal/errors"
)

func TestToUTC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		year   int
		month  time.Month
		day    int
		hour   int
		minute int
		zone   string
		want   time.Time
	}{
		{
			name: "New York summer is EDT",
			year: 2024, month: time.June, day: 15, hour: 12, minute: 0,
			zone: "America/New_York",
			want: time.Date(2024, 6, 15, 16, 0, 0, 0, time.UTC),
		},
		{
			name: "New York winter is EST",
			year: 2024, month: time.January, day: 15, hour: 12, minute: 0,
			zone: "America/New_York",
			want: time.Date(2024, 1, 15, 17, 0, 0, 0, time.UTC),
		},
		{
			name: "Kolkata carries a fractional offset",
			year: 2024, month: time.June, day: 15, hour: 12, minute: 0,
			zone: "Asia/Kolkata",
			want: time.Date(2024, 6, 15, 6, 30, 0, 0, time.UTC),
		},
		{
			name: "UTC passes through",
			year: 2024, month: time.June, day: 15, hour: 12, minute: 0,
			zone: "UTC",
			want: time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC),
		},
		{
			name: "hour 24 means midnight",
			year: 2024, month: time.June, day: 15, hour: 24, minute: 0,
			zone: "UTC",
			want: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ToUTC(tt.year, tt.month, tt.day, tt.hour, tt.minute, tt.zone)
			if err != nil {
				t.Fatalf("ToUTC failed: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ToUTC = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestToUTCUnknownZone(t *testing.T) {
	t.Parallel()

	_, err := ToUTC(2024, time.June, 15, 12, 0, "Mars/Olympus_Mons")
	if err == nil {
		t.Fatal("expected error for unknown zone")
	}
	if !errors.IsCategory(err, errors.CategoryTimeNormalize) {
		t.Errorf("error category = %v, want time normalization", err)
	}
}

func TestToUTCDSTTransition(t *testing.T) {
	t.Parallel()

	// 02:30 on 2024-03-10 does not exist in New York; the guess instant's
	// offset wins, so the result is deterministic rather than an error.
	got, err := ToUTC(2024, time.March, 10, 2, 30, "America/New_York")
	if err != nil {
		t.Fatalf("ToUTC failed: %v", err)
	}
	if got.IsZero() {
		t.Error("expected a concrete instant for a non-existent local time")
	}

	// Calling twice yields the same instant.
	again, err := ToUTC(2024, time.March, 10, 2, 30, "America/New_York")
	if err != nil {
		t.Fatalf("ToUTC failed: %v", err)
	}
	if !got.Equal(again) {
		t.Errorf("non-deterministic DST handling: %s vs %s", got, again)
	}
}
