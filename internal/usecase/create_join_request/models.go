package create_join_request

import (
	"time"

	"github.com/aldnch/GolfTeeService/pkg/types"
)

// Request модель запроса на присоединение к бронированию
type Request struct {
	RequesterID  int64   // ID участника, отправляющего заявку
	BookingID    int64   // ID бронирования, к которому присоединяются
	Participants int     // Число присоединяющихся участников
	Notes        *string // Сообщение владельцу (опционально)
}

// Response модель ответа с созданной или существующей заявкой.
// AlreadyExists = true означает, что ожидающая заявка уже была:
// это не ошибка, повторная отправка не создает дубликат.
type Response struct {
	ID                int64            `json:"id"`
	OriginalBookingID int64            `json:"originalBookingId"`
	RequesterID       int64            `json:"requesterId"`
	Participants      int              `json:"participants"`
	Status            string           `json:"status"`
	Notes             *string          `json:"notes,omitempty"`
	Date              time.Time        `json:"date"`
	Time              types.TimeString `json:"time"`
	AlreadyExists     bool             `json:"alreadyExists"`
	CreatedAt         time.Time        `json:"createdAt"`
}
