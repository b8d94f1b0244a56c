package domain

// Slot defaults. Values are configurable through the [booking] config
// section; these are the fallbacks and validation bounds.
const (
	DefaultSlotCapacity           = 4
	DefaultSlotGranularityMinutes = 8
	DefaultBookingWindowDays      = 7
	DefaultOpenTime               = "06:00"
	DefaultCloseTime              = "20:00"
	DefaultTimezone               = "Europe/London"
)

// Business validation constants
const (
	MinParticipants = 1
	MaxNotesLength  = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
