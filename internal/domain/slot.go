package domain

import (
	"time"

	"github.com/aldnch/GolfTeeService/pkg/types"
)

// SlotStatus represents the occupancy status of a tee-time slot
type SlotStatus string

const (
	SlotAvailable          SlotStatus = "available"
	SlotPartiallyAvailable SlotStatus = "partially_available"
	SlotBooked             SlotStatus = "booked"
)

// SlotBookingDetail is a display summary of one booking inside a slot
type SlotBookingDetail struct {
	BookingID    int64
	MemberID     int64
	MemberName   string
	Participants int
	Status       BookingStatus
	TeeHoles     int
}

// Slot represents one bookable (course, tee, date, time) unit with a
// fixed capacity shared by all participants booked into it.
type Slot struct {
	CourseID            int64
	TeeID               int64
	Date                time.Time
	Time                types.TimeString
	Capacity            int
	CurrentParticipants int
	Bookings            []SlotBookingDetail
}

// Status derives the slot status from its occupancy
func (s *Slot) Status() SlotStatus {
	switch {
	case s.CurrentParticipants <= 0:
		return SlotAvailable
	case s.CurrentParticipants < s.Capacity:
		return SlotPartiallyAvailable
	default:
		return SlotBooked
	}
}

// AvailableSpots returns the number of seats still open in the slot
func (s *Slot) AvailableSpots() int {
	spots := s.Capacity - s.CurrentParticipants
	if spots < 0 {
		return 0
	}
	return spots
}

// CanFit returns true if participants more seats fit into the slot
func (s *Slot) CanFit(participants int) bool {
	return participants > 0 && s.CurrentParticipants+participants <= s.Capacity
}
