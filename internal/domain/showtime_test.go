package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(hour, minute int) time.Time {
	return time.Date(2024, time.June, 14, hour, minute, 0, 0, time.UTC)
}

func TestComputeShowTime(t *testing.T) {
	base := day(2024, time.June, 14)

	tests := []struct {
		name     string
		hour     int
		minute   int
		duration time.Duration
		valid    bool
	}{
		{"morning showing", 10, 30, 2 * time.Hour, true},
		{"opens exactly at eight", 8, 0, 90 * time.Minute, true},
		{"ends exactly at midnight", 22, 0, 2 * time.Hour, true},
		{"ends just past midnight", 23, 0, 2 * time.Hour, false},
		{"ends at one minute past midnight", 22, 31, 90 * time.Minute, false},
		{"starts before opening", 7, 59, time.Hour, false},
		{"ends just before opening next day", 23, 30, 8 * time.Hour, false},
		{"ends exactly at eight next day", 23, 0, 9 * time.Hour, true},
		{"late evening within hours", 23, 59, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := ComputeShowTime(base, tt.hour, tt.minute, tt.duration)

			assert.Equal(t, tt.valid, st.Valid)
			assert.Equal(t, time.Date(2024, time.June, 14, tt.hour, tt.minute, 0, 0, time.UTC), st.Start)
			assert.Equal(t, st.Start.Add(tt.duration), st.End)
		})
	}
}

func TestComputeShowTime_ValidWithinOperatingHours(t *testing.T) {
	// Any showing starting 08:00-23:59 is valid as long as the end
	// time-of-day also stays out of (00:00, 08:00).
	base := day(2024, time.March, 3)

	for hour := 8; hour <= 23; hour++ {
		st := ComputeShowTime(base, hour, 0, 30*time.Minute)
		if hour == 23 {
			// 23:00 + 30m ends 23:30, still valid
			assert.True(t, st.Valid)
			continue
		}
		assert.True(t, st.Valid, "hour %d should be valid", hour)
	}
}

func TestShowTime_Conflicts(t *testing.T) {
	// Existing showing runs 10:00-12:00.
	existingStart := at(10, 0)
	existingEnd := at(12, 0)

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		conflict bool
	}{
		{"candidate start inside", at(11, 0), at(13, 0), true},
		{"candidate end inside", at(9, 0), at(10, 30), true},
		{"identical window", at(10, 0), at(12, 0), true},
		{"touching start counts", at(12, 0), at(14, 0), true},
		{"touching end counts", at(8, 0), at(10, 0), true},
		{"before with gap", at(8, 0), at(9, 59), false},
		{"after with gap", at(12, 1), at(14, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := ShowTime{Start: tt.start, End: tt.end, Valid: true}
			assert.Equal(t, tt.conflict, st.Conflicts(existingStart, existingEnd))
		})
	}
}

func TestShowTime_Conflicts_ContainedShowingNotDetected(t *testing.T) {
	// Pins down the candidate-endpoint-only predicate: an existing showing
	// strictly inside a longer candidate window is not reported.
	st := ShowTime{Start: at(9, 0), End: at(13, 0), Valid: true}

	assert.False(t, st.Conflicts(at(10, 0), at(12, 0)))
}

func TestDayBounds(t *testing.T) {
	start, end := DayBounds(time.Date(2024, time.June, 14, 19, 45, 12, 0, time.UTC))

	assert.Equal(t, time.Date(2024, time.June, 14, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.June, 14, 23, 59, 59, 0, time.UTC), end)
}

func TestMonthBounds(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		month   time.Month
		lastDay int
	}{
		{"thirty one days", 2024, time.January, 31},
		{"leap february", 2024, time.February, 29},
		{"plain february", 2023, time.February, 28},
		{"thirty days", 2024, time.April, 30},
		{"december rolls into new year", 2024, time.December, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := MonthBounds(tt.year, tt.month)

			assert.Equal(t, time.Date(tt.year, tt.month, 1, 0, 0, 0, 0, time.UTC), start)
			assert.Equal(t, time.Date(tt.year, tt.month, tt.lastDay, 23, 59, 59, 0, time.UTC), end)
		})
	}
}
