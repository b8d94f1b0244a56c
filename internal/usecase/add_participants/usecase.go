package add_participants

import (
	"context"
	"errors"
	"fmt"

	"github.com/aldnch/GolfTeeService/internal/domain"
	bookingRepo "github.com/aldnch/GolfTeeService/internal/infra/storage/booking"
)

// UseCase use case для добавления участников в свое бронирование
type UseCase struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	schedule    domain.SlotSchedule
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	repo BookingRepository,
	txManager TransactionManager,
	schedule domain.SlotSchedule,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: repo,
		txManager:   txManager,
		schedule:    schedule,
		logger:      logger,
	}
}

// Execute выполняет use case добавления участников.
// Вместимость проверяется по всему слоту, а не только по бронированию:
// места делят все бронирования слота.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AddParticipants: member=%d, booking=%d, extra=%d",
		req.MemberID, req.BookingID, req.Extra)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AddParticipants: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Получаем бронирование с блокировкой (FOR UPDATE)
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("AddParticipants: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("AddParticipants: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2. Только владелец добавляет участников
		if booking.MemberID != req.MemberID {
			uc.logger.Warn("AddParticipants: member=%d does not own booking id=%d",
				req.MemberID, req.BookingID)
			return ErrNotOwner
		}
		if !booking.IsActive() {
			uc.logger.Warn("AddParticipants: booking id=%d is not active", req.BookingID)
			return ErrBookingInactive
		}

		// 3. Считаем занятость всего слота с блокировкой
		filter := domain.SlotBookingsFilter{
			CourseID:    booking.CourseID,
			TeeID:       &booking.TeeID,
			SlotDate:    &booking.SlotDate,
			BookingTime: &booking.BookingTime,
			ActiveOnly:  true,
		}
		slotBookings, err := uc.bookingRepo.GetWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("AddParticipants: failed to get slot bookings: %v", err)
			return fmt.Errorf("%w: failed to get slot bookings: %v", ErrInternal, err)
		}

		occupied := 0
		for _, b := range slotBookings {
			occupied += b.Participants
		}

		slot := domain.Slot{
			Capacity:            uc.schedule.Capacity,
			CurrentParticipants: occupied,
		}
		if !slot.CanFit(req.Extra) {
			uc.logger.Warn("AddParticipants: slot full, %d/%d spots taken, requested %d more",
				occupied, uc.schedule.Capacity, req.Extra)
			return ErrSlotFull
		}

		// 4. Обновляем бронирование; SQL дублирует проверку вместимости
		maxForBooking := booking.Participants + slot.AvailableSpots()
		if err := uc.bookingRepo.AddParticipants(txCtx, req.BookingID, req.Extra, maxForBooking); err != nil {
			if errors.Is(err, bookingRepo.ErrCapacityExceeded) {
				return ErrSlotFull
			}
			uc.logger.Error("AddParticipants: failed to update booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		booking.Participants += req.Extra
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("AddParticipants: booking id=%d now has %d participants",
		result.ID, result.Participants)

	return &Response{
		ID:           result.ID,
		MemberID:     result.MemberID,
		CourseID:     result.CourseID,
		TeeID:        result.TeeID,
		Date:         result.SlotDate,
		Time:         result.BookingTime,
		Participants: result.Participants,
		Status:       string(result.Status),
		UpdatedAt:    result.UpdatedAt,
	}, nil
}

func validateRequest(req *Request) error {
	if req.MemberID <= 0 {
		return fmt.Errorf("%w: memberId must be positive", ErrInvalidInput)
	}
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingId must be positive", ErrInvalidInput)
	}
	if req.Extra <= 0 {
		return fmt.Errorf("%w: extra participants must be positive", ErrInvalidInput)
	}
	return nil
}
