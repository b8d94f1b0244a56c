package domain

import (
	"time"

	"github.com/aldnch/GolfTeeService/pkg/types"
)

// BookingStatus represents the status of a confirmed booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a confirmed reservation of seats in a tee-time slot.
// The first booking in a slot is the owning booking; add-participant
// top-ups and approved join requests increase Participants on this same
// record rather than creating new ones.
type Booking struct {
	ID           int64
	MemberID     int64
	CourseID     int64
	TeeID        int64
	SlotDate     time.Time
	BookingTime  types.TimeString
	Participants int
	Status       BookingStatus

	// Denormalized for display
	MemberName string
	CourseName string
	TeeHoles   int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies slot capacity
func (b *Booking) IsActive() bool {
	return b.Status == StatusConfirmed
}

// RemainingSpots returns how many seats the owning booking can still take
func (b *Booking) RemainingSpots(capacity int) int {
	spots := capacity - b.Participants
	if spots < 0 {
		return 0
	}
	return spots
}

// CanTakeParticipants returns true if extra seats fit within capacity
func (b *Booking) CanTakeParticipants(extra, capacity int) bool {
	return b.IsActive() && b.Participants+extra <= capacity
}

// SlotBookingsFilter фильтр для выборки бронирований слота или участника
type SlotBookingsFilter struct {
	CourseID    int64
	TeeID       *int64
	SlotDate    *time.Time
	BookingTime *types.TimeString
	MemberID    *int64
	ActiveOnly  bool
}
