package check_slot_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/aldnch/GolfTeeService/internal/domain"
	requestRepo "github.com/aldnch/GolfTeeService/internal/infra/storage/joinrequest"
	"github.com/aldnch/GolfTeeService/pkg/clock"
)

// UseCase use case для точечной проверки доступности слота
type UseCase struct {
	bookingRepo BookingRepository
	requestRepo JoinRequestRepository
	schedule    domain.SlotSchedule
	clock       Clock
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	reqRepo JoinRequestRepository,
	schedule domain.SlotSchedule,
	clk Clock,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		requestRepo: reqRepo,
		schedule:    schedule,
		clock:       clk,
		logger:      logger,
	}
}

// Execute выполняет use case проверки доступности слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckSlotAvailability: member=%d, course=%d, tee=%d, date=%s, time=%s",
		req.MemberID, req.CourseID, req.TeeID, req.Date.Format(domain.DateFormat), req.Time)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckSlotAvailability: validation failed: %v", err)
		return nil, err
	}

	now := uc.clock.Now()
	if clock.IsSameDay(req.Date, now) && req.Time.IsBefore(uc.schedule.FirstBookableTime(now)) {
		uc.logger.Warn("CheckSlotAvailability: slot %s on %s already passed",
			req.Time, req.Date.Format(domain.DateFormat))
		return nil, ErrSlotInPast
	}
	if clock.DateOnly(req.Date).Before(clock.DateOnly(now)) {
		return nil, ErrSlotInPast
	}

	filter := domain.SlotBookingsFilter{
		CourseID:    req.CourseID,
		TeeID:       &req.TeeID,
		SlotDate:    &req.Date,
		BookingTime: &req.Time,
		ActiveOnly:  true,
	}
	bookings, err := uc.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("CheckSlotAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	occupancy := domain.Slot{Capacity: uc.schedule.Capacity}
	resp := &Response{Capacity: uc.schedule.Capacity}

	for _, b := range bookings {
		occupancy.CurrentParticipants += b.Participants
		if b.MemberID == req.MemberID && !resp.IsOwnBooking {
			resp.IsOwnBooking = true
			resp.OwnBookingID = b.ID
		}
	}

	resp.Status = occupancy.Status()
	resp.CurrentParticipants = occupancy.CurrentParticipants
	resp.AvailableSpots = occupancy.AvailableSpots()
	resp.CanFit = occupancy.CanFit(req.Participants)
	resp.CanAddParticipants = resp.IsOwnBooking && resp.AvailableSpots > 0

	// Для чужого занятого слота проверяем существующую заявку участника
	if len(bookings) > 0 && !resp.IsOwnBooking {
		owningBookingID := bookings[0].ID
		resp.OwningBookingID = owningBookingID
		_, err := uc.requestRepo.FindPendingByBookingAndRequester(ctx, owningBookingID, req.MemberID)
		switch {
		case err == nil:
			resp.HasPendingRequest = true
		case errors.Is(err, requestRepo.ErrRequestNotFound):
			// Заявки нет, можно отправлять
		default:
			uc.logger.Error("CheckSlotAvailability: failed to check pending request: %v", err)
			return nil, fmt.Errorf("%w: failed to check pending request: %v", ErrInternal, err)
		}
		resp.CanJoinRequest = resp.AvailableSpots > 0 && !resp.HasPendingRequest
	}

	return resp, nil
}

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
	if err := req.Time.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if req.Participants < domain.MinParticipants {
		return fmt.Errorf("%w: participants must be at least %d", ErrInvalidInput, domain.MinParticipants)
	}
	return nil
}
