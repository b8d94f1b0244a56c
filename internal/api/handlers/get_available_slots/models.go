package get_available_slots

import (
	"github.com/aldnch/GolfTeeService/internal/domain"
	getSlots "github.com/aldnch/GolfTeeService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель одного слота сетки
type SlotResponse struct {
	Time                string                 `json:"time"`
	Status              string                 `json:"status"`
	Capacity            int                    `json:"capacity"`
	CurrentParticipants int                    `json:"currentParticipants"`
	AvailableSpots      int                    `json:"availableSpots"`
	Bookings            []getSlots.SlotBooking `json:"bookings"`
	IsOwnBooking        bool                   `json:"isOwnBooking"`
	OwnBookingID        int64                  `json:"ownBookingId,omitempty"`
	CanAddParticipants  bool                   `json:"canAddParticipants"`
	CanJoinRequest      bool                   `json:"canJoinRequest"`
	HasPendingRequest   bool                   `json:"hasPendingRequest"`
}

// SlotsResponse HTTP модель слотовой сетки на дату
type SlotsResponse struct {
	CourseID int64          `json:"courseId"`
	TeeID    int64          `json:"teeId"`
	Date     string         `json:"date"`
	Slots    []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			Time:                s.Time.String(),
			Status:              string(s.Status),
			Capacity:            s.Capacity,
			CurrentParticipants: s.CurrentParticipants,
			AvailableSpots:      s.AvailableSpots,
			Bookings:            s.Bookings,
			IsOwnBooking:        s.IsOwnBooking,
			OwnBookingID:        s.OwnBookingID,
			CanAddParticipants:  s.CanAddParticipants,
			CanJoinRequest:      s.CanJoinRequest,
			HasPendingRequest:   s.HasPendingRequest,
		})
	}
	return &SlotsResponse{
		CourseID: resp.CourseID,
		TeeID:    resp.TeeID,
		Date:     resp.Date.Format(domain.DateFormat),
		Slots:    slots,
	}
}
