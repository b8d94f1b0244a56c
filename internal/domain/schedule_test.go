package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aldnch/GolfTeeService/pkg/types"
)

func defaultSchedule() SlotSchedule {
	return SlotSchedule{
		Capacity:           4,
		GranularityMinutes: 8,
		WindowDays:         7,
		OpenTime:           "06:00",
		CloseTime:          "20:00",
	}
}

func TestLastBookableDate(t *testing.T) {
	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	// the 7-day window includes today, so the last day is +6
	last := defaultSchedule().LastBookableDate(today)
	assert.Equal(t, time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), last)
}

func TestFirstBookableTime(t *testing.T) {
	schedule := defaultSchedule()

	tests := []struct {
		name     string
		now      time.Time
		expected types.TimeString
	}{
		{
			// 10:00 sits on a grid boundary and has not passed yet
			name:     "exact grid boundary",
			now:      time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
			expected: "10:00",
		},
		{
			// seconds bump the minute up, 10:00 is already gone
			name:     "seconds past the boundary",
			now:      time.Date(2026, 9, 1, 10, 0, 1, 0, time.UTC),
			expected: "10:08",
		},
		{
			name:     "mid interval rounds up",
			now:      time.Date(2026, 9, 1, 10, 3, 0, 0, time.UTC),
			expected: "10:08",
		},
		{
			name:     "just before next boundary",
			now:      time.Date(2026, 9, 1, 10, 7, 59, 0, time.UTC),
			expected: "10:08",
		},
		{
			// before opening the first bookable slot is the opening one
			name:     "midnight",
			now:      time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			expected: "06:00",
		},
		{
			// rounding past midnight is capped at end of day
			name:     "end of day caps at 23:59",
			now:      time.Date(2026, 9, 1, 23, 57, 0, 0, time.UTC),
			expected: "23:59",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, schedule.FirstBookableTime(tt.now))
		})
	}
}

func TestFirstBookableTime_OpenTimeOffMidnightGrid(t *testing.T) {
	// 06:30 is not a multiple of 8 minutes from midnight, rounding
	// must still land on the grid that starts at the opening time
	schedule := defaultSchedule()
	schedule.OpenTime = "06:30"

	tests := []struct {
		name     string
		now      time.Time
		expected types.TimeString
	}{
		{
			name:     "opening minute",
			now:      time.Date(2026, 9, 1, 6, 30, 0, 0, time.UTC),
			expected: "06:30",
		},
		{
			name:     "one minute past opening",
			now:      time.Date(2026, 9, 1, 6, 31, 0, 0, time.UTC),
			expected: "06:38",
		},
		{
			name:     "before opening",
			now:      time.Date(2026, 9, 1, 5, 0, 0, 0, time.UTC),
			expected: "06:30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, schedule.FirstBookableTime(tt.now))
		})
	}
}
