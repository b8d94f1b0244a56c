package reject_join_request

import "time"

// Request модель запроса на отклонение заявки
type Request struct {
	MemberID  int64   // ID владельца исходного бронирования
	RequestID int64   // ID заявки
	Reason    *string // Причина отказа (опционально)
}

// Response модель ответа с отклоненной заявкой
type Response struct {
	ID                int64     `json:"id"`
	OriginalBookingID int64     `json:"originalBookingId"`
	RequesterID       int64     `json:"requesterId"`
	Status            string    `json:"status"`
	Notes             *string   `json:"notes,omitempty"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
