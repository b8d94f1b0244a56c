package add_participants

import (
	"time"

	"github.com/aldnch/GolfTeeService/pkg/types"
)

// Request модель запроса на добавление участников в бронирование
type Request struct {
	MemberID  int64 // ID участника, владельца бронирования
	BookingID int64 // ID бронирования
	Extra     int   // Сколько участников добавить
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID           int64            `json:"id"`
	MemberID     int64            `json:"memberId"`
	CourseID     int64            `json:"courseId"`
	TeeID        int64            `json:"teeId"`
	Date         time.Time        `json:"date"`
	Time         types.TimeString `json:"time"`
	Participants int              `json:"participants"`
	Status       string           `json:"status"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}
