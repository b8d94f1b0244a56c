package create_booking

import (
	"time"

	"github.com/aldnch/GolfTeeService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	MemberID     int64            // ID участника
	CourseID     int64            // ID поля
	TeeID        int64            // ID стартовой точки
	Date         time.Time        // Дата слота (без времени)
	Time         types.TimeString // Время слота (например, "09:04")
	Participants int              // Число участников
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           int64            `json:"id"`
	MemberID     int64            `json:"memberId"`
	CourseID     int64            `json:"courseId"`
	TeeID        int64            `json:"teeId"`
	Date         time.Time        `json:"date"`
	Time         types.TimeString `json:"time"`
	Participants int              `json:"participants"`
	Status       string           `json:"status"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}
