package domain

import (
	"time"

	"github.com/aldnch/GolfTeeService/pkg/types"
)

// SlotSchedule describes the bookable grid of a golf club: slot capacity,
// grid granularity, the booking window and the daily opening hours.
type SlotSchedule struct {
	Capacity           int
	GranularityMinutes int
	WindowDays         int
	OpenTime           types.TimeString
	CloseTime          types.TimeString
}

// LastBookableDate returns the final date of the booking window
// counted from today inclusive.
func (s SlotSchedule) LastBookableDate(today time.Time) time.Time {
	return today.AddDate(0, 0, s.WindowDays-1)
}

// FirstBookableTime returns the earliest slot time still bookable at now.
// The grid starts at OpenTime, so the current minute is rounded up to the
// next boundary counted from OpenTime. The result stays aligned with slot
// times even when the opening time is off the midnight grid.
func (s SlotSchedule) FirstBookableTime(now time.Time) types.TimeString {
	minutes := now.Hour()*60 + now.Minute()
	if now.Second() > 0 || now.Nanosecond() > 0 {
		minutes++
	}

	open, err := s.OpenTime.MinutesOfDay()
	if err != nil {
		open = 0
	}
	if minutes <= open {
		return minuteOfDay(open)
	}

	step := s.GranularityMinutes
	rounded := open + ((minutes-open+step-1)/step)*step

	if rounded >= 24*60 {
		return types.TimeString("23:59")
	}
	return minuteOfDay(rounded)
}

func minuteOfDay(minutes int) types.TimeString {
	return types.TimeString(time.Date(0, 1, 1, minutes/60, minutes%60, 0, 0, time.UTC).Format(TimeFormat))
}
