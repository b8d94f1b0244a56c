package get_available_slots

import (
	"time"

	"github.com/aldnch/GolfTeeService/internal/domain"
	"github.com/aldnch/GolfTeeService/pkg/clock"
	"github.com/aldnch/GolfTeeService/pkg/types"
)

// generateTimeSlots генерирует сетку времен слотов на дату.
// Сетка идет от открытия до закрытия с шагом granularity;
// слот на время закрытия не создается. Для сегодняшней даты
// прошедшие слоты отсекаются с округлением вверх до границы сетки.
func generateTimeSlots(date, now time.Time, schedule domain.SlotSchedule) ([]types.TimeString, error) {
	start := schedule.OpenTime
	if clock.IsSameDay(date, now) {
		cutoff := schedule.FirstBookableTime(now)
		if cutoff.IsAfter(start) {
			start = cutoff
		}
	}

	times := make([]types.TimeString, 0)
	current := start
	for current.IsBefore(schedule.CloseTime) {
		times = append(times, current)

		next, err := current.AddMinutes(schedule.GranularityMinutes)
		if err != nil {
			return nil, err
		}
		// AddMinutes заворачивается через полночь; сетка не должна
		if !next.IsAfter(current) {
			break
		}
		current = next
	}
	return times, nil
}

// groupBookingsByTime раскладывает активные бронирования по временам слотов
func groupBookingsByTime(bookings []*domain.Booking) map[types.TimeString][]*domain.Booking {
	grouped := make(map[types.TimeString][]*domain.Booking)
	for _, b := range bookings {
		grouped[b.BookingTime] = append(grouped[b.BookingTime], b)
	}
	return grouped
}
