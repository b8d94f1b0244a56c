package check_slot_availability

import (
	"time"

	"github.com/aldnch/GolfTeeService/internal/domain"
	"github.com/aldnch/GolfTeeService/pkg/types"
)

// Request модель запроса на проверку доступности слота
type Request struct {
	MemberID     int64            // ID участника
	CourseID     int64            // ID поля
	TeeID        int64            // ID стартовой точки
	Date         time.Time        // Дата слота
	Time         types.TimeString // Время слота
	Participants int              // Желаемое число участников
}

// Response модель ответа о доступности слота для участника
type Response struct {
	Status              domain.SlotStatus `json:"status"`
	Capacity            int               `json:"capacity"`
	CurrentParticipants int               `json:"currentParticipants"`
	AvailableSpots      int               `json:"availableSpots"`
	CanFit              bool              `json:"canFit"`

	IsOwnBooking       bool  `json:"isOwnBooking"`
	OwnBookingID       int64 `json:"ownBookingId,omitempty"`
	OwningBookingID    int64 `json:"owningBookingId,omitempty"`
	CanAddParticipants bool  `json:"canAddParticipants"`
	CanJoinRequest     bool  `json:"canJoinRequest"`
	HasPendingRequest  bool  `json:"hasPendingRequest"`
}
