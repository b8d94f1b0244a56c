package get_available_slots

import (
	"time"

	"github.com/aldnch/GolfTeeService/internal/domain"
	"github.com/aldnch/GolfTeeService/pkg/types"
)

// Request модель запроса на получение слотовой сетки
type Request struct {
	MemberID int64     // ID участника, запрашивающего сетку
	CourseID int64     // ID поля
	TeeID    int64     // ID стартовой точки (tee)
	Date     time.Time // Дата (без времени)
}

// SlotBooking краткие данные одного бронирования внутри слота
type SlotBooking struct {
	BookingID    int64  `json:"bookingId"`
	MemberID     int64  `json:"memberId"`
	MemberName   string `json:"memberName"`
	Participants int    `json:"participants"`
	Status       string `json:"status"`
}

// Slot один слот сетки с доступностью для запрашивающего участника
type Slot struct {
	Time                types.TimeString  `json:"time"`
	Status              domain.SlotStatus `json:"status"`
	Capacity            int               `json:"capacity"`
	CurrentParticipants int               `json:"currentParticipants"`
	AvailableSpots      int               `json:"availableSpots"`
	Bookings            []SlotBooking     `json:"bookings"`

	// Доступность относительно запрашивающего участника
	IsOwnBooking       bool  `json:"isOwnBooking"`
	OwnBookingID       int64 `json:"ownBookingId,omitempty"`
	CanAddParticipants bool  `json:"canAddParticipants"`
	CanJoinRequest     bool  `json:"canJoinRequest"`
	HasPendingRequest  bool  `json:"hasPendingRequest"`
}

// Response модель ответа со слотовой сеткой на дату
type Response struct {
	CourseID int64     `json:"courseId"`
	TeeID    int64     `json:"teeId"`
	Date     time.Time `json:"date"`
	Slots    []Slot    `json:"slots"`
}
