package selection

import (
	"time"

	"github.com/aldnch/GolfTeeService/internal/domain"
	"github.com/aldnch/GolfTeeService/pkg/types"
)

// Entry один выбранный слот в корзине участника.
// Помимо координат слота хранится снимок его состояния на момент выбора:
// по нему при отправке решается, что делать с этим слотом.
type Entry struct {
	CourseID     int64            `json:"courseId"`
	TeeID        int64            `json:"teeId"`
	SlotDate     time.Time        `json:"slotDate"`
	BookingTime  types.TimeString `json:"bookingTime"`
	Participants int              `json:"participants"`

	// Снимок состояния слота на момент выбора
	OriginalStatus      domain.SlotStatus `json:"originalStatus"`
	IsOwnBooking        bool              `json:"isOwnBooking"`
	OwnBookingID        int64             `json:"ownBookingId,omitempty"`
	OwningBookingID     int64             `json:"owningBookingId,omitempty"`
	CanAddParticipants  bool              `json:"canAddParticipants"`
	CanJoinRequest      bool              `json:"canJoinRequest"`
	CurrentParticipants int               `json:"currentParticipants"`
	AvailableSpots      int               `json:"availableSpots"`
	HasExistingRequest  bool              `json:"hasExistingRequest"`
}

// Key координаты слота внутри набора. Курс в ключ не входит:
// корзина живет в рамках одного выбранного курса.
type Key struct {
	SlotDate    string           `json:"slotDate"`
	TeeID       int64            `json:"teeId"`
	BookingTime types.TimeString `json:"bookingTime"`
}

// KeyOf возвращает ключ записи
func KeyOf(e Entry) Key {
	return Key{
		SlotDate:    e.SlotDate.Format(domain.DateFormat),
		TeeID:       e.TeeID,
		BookingTime: e.BookingTime,
	}
}

// Set набор выбранных слотов участника. Не потокобезопасен:
// каждый запрос работает со своей копией, загруженной из хранилища.
type Set struct {
	Entries []Entry `json:"entries"`
}

// NewSet создает пустой набор выборок
func NewSet() *Set {
	return &Set{Entries: make([]Entry, 0)}
}

// Upsert добавляет запись или заменяет существующую с тем же ключом.
// Повторный выбор того же слота обновляет число участников, не дублируя запись.
func (s *Set) Upsert(entry Entry) {
	key := KeyOf(entry)
	for i, existing := range s.Entries {
		if KeyOf(existing) == key {
			s.Entries[i] = entry
			return
		}
	}
	s.Entries = append(s.Entries, entry)
}

// Remove удаляет запись по ключу, возвращает true если запись была
func (s *Set) Remove(key Key) bool {
	for i, existing := range s.Entries {
		if KeyOf(existing) == key {
			s.Entries = append(s.Entries[:i], s.Entries[i+1:]...)
			return true
		}
	}
	return false
}

// IsSelected проверяет, выбран ли слот с таким ключом
func (s *Set) IsSelected(key Key) bool {
	for _, existing := range s.Entries {
		if KeyOf(existing) == key {
			return true
		}
	}
	return false
}

// Get возвращает запись по ключу
func (s *Set) Get(key Key) (Entry, bool) {
	for _, existing := range s.Entries {
		if KeyOf(existing) == key {
			return existing, true
		}
	}
	return Entry{}, false
}

// Clear очищает набор
func (s *Set) Clear() {
	s.Entries = s.Entries[:0]
}

// Len возвращает число выбранных слотов
func (s *Set) Len() int {
	return len(s.Entries)
}

// TotalParticipants суммарное число участников по всем выборкам
func (s *Set) TotalParticipants() int {
	total := 0
	for _, entry := range s.Entries {
		total += entry.Participants
	}
	return total
}

// RestoreForContext возвращает проекцию набора на текущий контекст просмотра.
// Выборки других дат и стартовых точек сохраняются в наборе,
// но в текущую сетку не попадают.
func (s *Set) RestoreForContext(courseID, teeID int64, slotDate time.Time) []Entry {
	date := slotDate.Format(domain.DateFormat)
	restored := make([]Entry, 0)
	for _, entry := range s.Entries {
		if entry.CourseID == courseID &&
			entry.TeeID == teeID &&
			entry.SlotDate.Format(domain.DateFormat) == date {
			restored = append(restored, entry)
		}
	}
	return restored
}
