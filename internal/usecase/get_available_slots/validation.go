package get_available_slots

import (
	"fmt"
	"time"

	"github.com/aldnch/GolfTeeService/internal/domain"
	"github.com/aldnch/GolfTeeService/pkg/clock"
)

func validateRequest(req *Request) error {
	if req.MemberID <= 0 {
		return fmt.Errorf("%w: memberId must be positive", ErrInvalidInput)
	}
	if req.CourseID <= 0 {
		return fmt.Errorf("%w: courseId must be positive", ErrInvalidInput)
	}
	if req.TeeID <= 0 {
		return fmt.Errorf("%w: teeId must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}

// validateDate проверяет, что дата попадает в окно бронирования:
// от сегодня до последнего дня окна включительно.
func validateDate(date, now time.Time, schedule domain.SlotSchedule) error {
	today := clock.DateOnly(now)
	requested := clock.DateOnly(date)

	if requested.Before(today) {
		return ErrDateInPast
	}
	if requested.After(clock.DateOnly(schedule.LastBookableDate(today))) {
		return ErrDateOutsideWindow
	}
	return nil
}
