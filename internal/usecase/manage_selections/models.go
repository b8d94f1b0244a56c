package manage_selections

import (
	"time"

	"github.com/aldnch/GolfTeeService/internal/selection"
	"github.com/aldnch/GolfTeeService/pkg/types"
)

// UpsertRequest модель запроса на выбор слота
type UpsertRequest struct {
	MemberID     int64            // ID участника
	SessionID    string           // ID сессии
	CourseID     int64            // ID поля
	TeeID        int64            // ID стартовой точки
	Date         time.Time        // Дата слота
	Time         types.TimeString // Время слота
	Participants int              // Число участников
}

// RemoveRequest модель запроса на снятие выбора
type RemoveRequest struct {
	SessionID string           // ID сессии
	TeeID     int64            // ID стартовой точки
	Date      time.Time        // Дата слота
	Time      types.TimeString // Время слота
}

// RestoreRequest модель запроса на восстановление выборок для контекста просмотра
type RestoreRequest struct {
	SessionID string    // ID сессии
	CourseID  int64     // ID поля
	TeeID     int64     // ID стартовой точки
	Date      time.Time // Дата
}

// Response модель ответа с текущим набором выборок
type Response struct {
	Entries           []selection.Entry `json:"entries"`
	TotalSelections   int               `json:"totalSelections"`
	TotalParticipants int               `json:"totalParticipants"`
}
