package clock

import "time"

// Clock отдаёт текущее время в часовом поясе клуба.
// Вся логика "сегодня", окна бронирования и отсечки прошедших слотов
// должна проходить через этот интерфейс, а не через time.Now напрямую.
type Clock interface {
	Now() time.Time
}

// ZonedClock реальные часы, закреплённые за конкретным часовым поясом.
type ZonedClock struct {
	loc *time.Location
}

// NewZoned создаёт часы для указанного пояса (например, "Europe/London").
func NewZoned(zone string) (*ZonedClock, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, err
	}
	return &ZonedClock{loc: loc}, nil
}

// Now возвращает текущее время в поясе клуба.
func (c *ZonedClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Fixed часы с фиксированным временем, для тестов.
type Fixed struct {
	T time.Time
}

// Now возвращает зафиксированное время.
func (f *Fixed) Now() time.Time {
	return f.T
}

// DateOnly обнуляет время, оставляя только дату.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsSameDay проверяет, что две даты относятся к одному и тому же дню.
func IsSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
