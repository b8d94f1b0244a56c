package create_join_request

import (
	"context"
	"errors"
	"fmt"

	"github.com/aldnch/GolfTeeService/internal/domain"
	bookingRepo "github.com/aldnch/GolfTeeService/internal/infra/storage/booking"
	requestRepo "github.com/aldnch/GolfTeeService/internal/infra/storage/joinrequest"
)

// UseCase use case для создания заявки на присоединение
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

// Execute выполняет use case создания заявки на присоединение.
// Повторная заявка на ту же пару (бронирование, участник) не создает
// дубликат: возвращается существующая заявка с AlreadyExists = true.
// Финальная проверка вместимости происходит при одобрении владельцем,
// здесь проверка свободных мест только отсекает заведомо полные слоты.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateJoinRequest: requester=%d, booking=%d, participants=%d",
		req.RequesterID, req.BookingID, req.Participants)

	if err := validateRequest(req, uc.schedule.Capacity); err != nil {
		uc.logger.Warn("CreateJoinRequest: validation failed: %v", err)
		return nil, err
	}

	var result *domain.JoinRequest
	alreadyExists := false

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Получаем бронирование с блокировкой
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("CreateJoinRequest: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("CreateJoinRequest: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if !booking.IsActive() {
			uc.logger.Warn("CreateJoinRequest: booking id=%d is not active", req.BookingID)
			return ErrBookingInactive
		}
		if booking.MemberID == req.RequesterID {
			uc.logger.Warn("CreateJoinRequest: requester=%d owns booking id=%d",
				req.RequesterID, req.BookingID)
			return ErrOwnBooking
		}

		// 2. Ищем существующую ожидающую заявку
		existing, err := uc.requestRepo.FindPendingByBookingAndRequester(txCtx, req.BookingID, req.RequesterID)
		switch {
		case err == nil:
			uc.logger.Info("CreateJoinRequest: pending request id=%d already exists", existing.ID)
			result = existing
			alreadyExists = true
			return nil
		case errors.Is(err, requestRepo.ErrRequestNotFound):
			// Заявки нет, создаем новую
		default:
			uc.logger.Error("CreateJoinRequest: failed to check existing request: %v", err)
			return fmt.Errorf("%w: failed to check existing request: %v", ErrInternal, err)
		}

		// 3. Отсекаем заведомо полные слоты
		filter := domain.SlotBookingsFilter{
			CourseID:    booking.CourseID,
			TeeID:       &booking.TeeID,
			SlotDate:    &booking.SlotDate,
			BookingTime: &booking.BookingTime,
			ActiveOnly:  true,
		}
		slotBookings, err := uc.bookingRepo.GetWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateJoinRequest: failed to get slot bookings: %v", err)
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
		if !slot.CanFit(req.Participants) {
			uc.logger.Warn("CreateJoinRequest: slot full, %d/%d spots taken, requested %d",
				occupied, uc.schedule.Capacity, req.Participants)
			return ErrSlotFull
		}

		// 4. Создаем заявку
		request := &domain.JoinRequest{
			OriginalBookingID: req.BookingID,
			RequesterID:       req.RequesterID,
			Participants:      req.Participants,
			Status:            domain.RequestPendingApproval,
			Notes:             req.Notes,
			CourseID:          booking.CourseID,
			TeeID:             booking.TeeID,
			SlotDate:          booking.SlotDate,
			BookingTime:       booking.BookingTime,
		}

		created, err := uc.requestRepo.Create(txCtx, request)
		if err != nil {
			uc.logger.Error("CreateJoinRequest: failed to create request: %v", err)
			return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !alreadyExists {
		uc.logger.Info("CreateJoinRequest: successfully created request id=%d", result.ID)
	}

	return &Response{
		ID:                result.ID,
		OriginalBookingID: result.OriginalBookingID,
		RequesterID:       result.RequesterID,
		Participants:      result.Participants,
		Status:            string(result.Status),
		Notes:             result.Notes,
		Date:              result.SlotDate,
		Time:              result.BookingTime,
		AlreadyExists:     alreadyExists,
		CreatedAt:         result.CreatedAt,
	}, nil
}

func validateRequest(req *Request, capacity int) error {
	if req.RequesterID <= 0 {
		return fmt.Errorf("%w: requesterId must be positive", ErrInvalidInput)
	}
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingId must be positive", ErrInvalidInput)
	}
	if req.Participants < domain.MinParticipants || req.Participants > capacity {
		return fmt.Errorf("%w: participants must be between %d and %d",
			ErrInvalidInput, domain.MinParticipants, capacity)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	return nil
}
