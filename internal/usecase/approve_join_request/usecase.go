package approve_join_request

import (
	"context"
	"errors"
	"fmt"

	"github.com/aldnch/GolfTeeService/internal/domain"
	bookingRepo "github.com/aldnch/GolfTeeService/internal/infra/storage/booking"
	requestRepo "github.com/aldnch/GolfTeeService/internal/infra/storage/joinrequest"
)

// UseCase use case для одобрения заявки на присоединение
type UseCase struct {
	bookingRepo BookingRepository
	requestRepo JoinRequestRepository
	txManager   TransactionManager
	schedule    domain.SlotSchedule
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookings BookingRepository,
	requests JoinRequestRepository,
	txManager TransactionManager,
	schedule domain.SlotSchedule,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookings,
		requestRepo: requests,
		txManager:   txManager,
		schedule:    schedule,
		logger:      logger,
	}
}

// Execute выполняет use case одобрения заявки.
// Вместимость слота могла измениться после отправки заявки, поэтому
// финальная проверка идет здесь, в сериализуемой транзакции. Участники
// заявки добавляются к исходному бронированию, новое не создается.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ApproveJoinRequest: member=%d, request=%d", req.MemberID, req.RequestID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ApproveJoinRequest: validation failed: %v", err)
		return nil, err
	}

	var result *domain.JoinRequest
	var bookingParticipants int

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Получаем заявку с блокировкой
		request, err := uc.requestRepo.GetByID(txCtx, req.RequestID)
		if err != nil {
			if errors.Is(err, requestRepo.ErrRequestNotFound) {
				uc.logger.Warn("ApproveJoinRequest: request id=%d not found", req.RequestID)
				return ErrRequestNotFound
			}
			uc.logger.Error("ApproveJoinRequest: failed to get request id=%d: %v", req.RequestID, err)
			return fmt.Errorf("%w: failed to get request: %v", ErrInternal, err)
		}

		// 2. Решение принимает только владелец исходного бронирования
		if request.OriginalBookerID != req.MemberID {
			uc.logger.Warn("ApproveJoinRequest: member=%d does not own booking id=%d",
				req.MemberID, request.OriginalBookingID)
			return ErrNotOwner
		}
		if request.IsResolved() {
			uc.logger.Warn("ApproveJoinRequest: request id=%d already %s", req.RequestID, request.Status)
			return ErrRequestResolved
		}

		// 3. Получаем исходное бронирование с блокировкой
		booking, err := uc.bookingRepo.GetByID(txCtx, request.OriginalBookingID)
		if err != nil {
			uc.logger.Error("ApproveJoinRequest: failed to get booking id=%d: %v",
				request.OriginalBookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}
		if !booking.IsActive() {
			uc.logger.Warn("ApproveJoinRequest: booking id=%d is not active", booking.ID)
			return ErrBookingInactive
		}

		// 4. Финальная проверка вместимости по всему слоту
		filter := domain.SlotBookingsFilter{
			CourseID:    booking.CourseID,
			TeeID:       &booking.TeeID,
			SlotDate:    &booking.SlotDate,
			BookingTime: &booking.BookingTime,
			ActiveOnly:  true,
		}
		slotBookings, err := uc.bookingRepo.GetWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("ApproveJoinRequest: failed to get slot bookings: %v", err)
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
		if !slot.CanFit(request.Participants) {
			uc.logger.Warn("ApproveJoinRequest: slot full, %d/%d spots taken, request needs %d",
				occupied, uc.schedule.Capacity, request.Participants)
			return ErrSlotFull
		}

		// 5. Добавляем участников заявки к исходному бронированию
		maxForBooking := booking.Participants + slot.AvailableSpots()
		if err := uc.bookingRepo.AddParticipants(txCtx, booking.ID, request.Participants, maxForBooking); err != nil {
			if errors.Is(err, bookingRepo.ErrCapacityExceeded) {
				return ErrSlotFull
			}
			uc.logger.Error("ApproveJoinRequest: failed to update booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		// 6. Переводим заявку в approved
		if err := uc.requestRepo.UpdateStatus(txCtx, request.ID, domain.RequestApproved, nil); err != nil {
			uc.logger.Error("ApproveJoinRequest: failed to update request id=%d: %v", request.ID, err)
			return fmt.Errorf("%w: failed to update request: %v", ErrInternal, err)
		}

		request.Status = domain.RequestApproved
		result = request
		bookingParticipants = booking.Participants + request.Participants
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("ApproveJoinRequest: request id=%d approved, booking id=%d now has %d participants",
		result.ID, result.OriginalBookingID, bookingParticipants)

	return &Response{
		ID:                  result.ID,
		OriginalBookingID:   result.OriginalBookingID,
		RequesterID:         result.RequesterID,
		Participants:        result.Participants,
		Status:              string(result.Status),
		BookingParticipants: bookingParticipants,
		UpdatedAt:           result.UpdatedAt,
	}, nil
}

func validateRequest(req *Request) error {
	if req.MemberID <= 0 {
		return fmt.Errorf("%w: memberId must be positive", ErrInvalidInput)
	}
	if req.RequestID <= 0 {
		return fmt.Errorf("%w: requestId must be positive", ErrInvalidInput)
	}
	return nil
}
