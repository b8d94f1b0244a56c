package create_booking

import (
	"fmt"
	"time"

	"github.com/aldnch/GolfTeeService/internal/domain"
	"github.com/aldnch/GolfTeeService/pkg/clock"
)

func validateRequest(req *Request, capacity int) error {
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
	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if req.Participants < domain.MinParticipants || req.Participants > capacity {
		return fmt.Errorf("%w: participants must be between %d and %d",
			ErrInvalidInput, domain.MinParticipants, capacity)
	}
	return nil
}

// validateSlotTime проверяет, что слот попадает в окно бронирования,
// лежит на сетке внутри часов работы и еще не прошел.
func validateSlotTime(req *Request, now time.Time, schedule domain.SlotSchedule) error {
	today := clock.DateOnly(now)
	requested := clock.DateOnly(req.Date)

	if requested.Before(today) {
		return ErrSlotInPast
	}
	if requested.After(clock.DateOnly(schedule.LastBookableDate(today))) {
		return ErrDateOutsideWindow
	}

	if req.Time.IsBefore(schedule.OpenTime) || !req.Time.IsBefore(schedule.CloseTime) {
		return ErrTimeOffGrid
	}

	openMinutes, err := schedule.OpenTime.MinutesOfDay()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	slotMinutes, err := req.Time.MinutesOfDay()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if (slotMinutes-openMinutes)%schedule.GranularityMinutes != 0 {
		return ErrTimeOffGrid
	}

	if clock.IsSameDay(req.Date, now) && req.Time.IsBefore(schedule.FirstBookableTime(now)) {
		return ErrSlotInPast
	}
	return nil
}
