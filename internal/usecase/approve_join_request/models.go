package approve_join_request

import "time"

// Request модель запроса на одобрение заявки
type Request struct {
	MemberID  int64 // ID владельца исходного бронирования
	RequestID int64 // ID заявки
}

// Response модель ответа с одобренной заявкой
type Response struct {
	ID                  int64     `json:"id"`
	OriginalBookingID   int64     `json:"originalBookingId"`
	RequesterID         int64     `json:"requesterId"`
	Participants        int       `json:"participants"`
	Status              string    `json:"status"`
	BookingParticipants int       `json:"bookingParticipants"`
	UpdatedAt           time.Time `json:"updatedAt"`
}
