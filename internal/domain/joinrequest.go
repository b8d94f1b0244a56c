package domain

import (
	"time"

	"github.com/aldnch/GolfTeeService/pkg/types"
)

// JoinRequestStatus represents the lifecycle state of a join request
type JoinRequestStatus string

const (
	RequestPendingApproval JoinRequestStatus = "pending_approval"
	RequestApproved        JoinRequestStatus = "approved"
	RequestRejected        JoinRequestStatus = "rejected"
)

// JoinRequest is a request by a non-owning member to occupy remaining
// capacity in a slot that already has an owning booking. At most one
// pending request may exist per (original booking, requester) pair.
type JoinRequest struct {
	ID                int64
	OriginalBookingID int64
	RequesterID       int64
	Participants      int
	Status            JoinRequestStatus
	Notes             *string

	// Denormalized for display
	RequesterName      string
	OriginalBookerID   int64
	OriginalBookerName string

	// Slot data joined from the original booking
	CourseID             int64
	TeeID                int64
	SlotDate             time.Time
	BookingTime          types.TimeString
	OriginalParticipants int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPending returns true while the request awaits the owner's decision
func (r *JoinRequest) IsPending() bool {
	return r.Status == RequestPendingApproval
}

// IsResolved returns true once the request reached a terminal state
func (r *JoinRequest) IsResolved() bool {
	return r.Status == RequestApproved || r.Status == RequestRejected
}
