package create_booking

import (
	"context"
	"fmt"

	"github.com/aldnch/GolfTeeService/internal/domain"
)

// UseCase use case для создания бронирования слота
type UseCase struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	schedule    domain.SlotSchedule
	clock       Clock
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	schedule domain.SlotSchedule,
	clk Clock,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		schedule:    schedule,
		clock:       clk,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка вместимости и вставка идут в сериализуемой транзакции,
// чтобы два параллельных бронирования не переполнили слот.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: member=%d, course=%d, tee=%d, date=%s, time=%s, participants=%d",
		req.MemberID, req.CourseID, req.TeeID, req.Date.Format(domain.DateFormat), req.Time, req.Participants)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.schedule.Capacity); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация слота относительно сетки и окна бронирования
	now := uc.clock.Now()
	if err := validateSlotTime(req, now, uc.schedule); err != nil {
		uc.logger.Warn("CreateBooking: slot time validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 3. Операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем активные бронирования слота с блокировкой (FOR UPDATE)
		filter := domain.SlotBookingsFilter{
			CourseID:    req.CourseID,
			TeeID:       &req.TeeID,
			SlotDate:    &req.Date,
			BookingTime: &req.Time,
			ActiveOnly:  true,
		}
		bookings, err := uc.bookingRepo.GetWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get slot bookings: %v", err)
			return fmt.Errorf("%w: failed to get slot bookings: %v", ErrInternal, err)
		}

		// 3.2. Повторное бронирование того же слота запрещено:
		// участник добавляет людей в существующее бронирование
		occupied := 0
		for _, b := range bookings {
			if b.MemberID == req.MemberID {
				uc.logger.Warn("CreateBooking: member=%d already has booking id=%d in this slot",
					req.MemberID, b.ID)
				return ErrAlreadyBooked
			}
			occupied += b.Participants
		}

		// 3.3. Проверяем вместимость слота
		slot := domain.Slot{
			Capacity:            uc.schedule.Capacity,
			CurrentParticipants: occupied,
		}
		if !slot.CanFit(req.Participants) {
			uc.logger.Warn("CreateBooking: slot full, %d/%d spots taken, requested %d",
				occupied, uc.schedule.Capacity, req.Participants)
			return ErrSlotFull
		}

		// 3.4. Создаем бронирование
		booking := &domain.Booking{
			MemberID:     req.MemberID,
			CourseID:     req.CourseID,
			TeeID:        req.TeeID,
			SlotDate:     req.Date,
			BookingTime:  req.Time,
			Participants: req.Participants,
			Status:       domain.StatusConfirmed,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:           result.ID,
		MemberID:     result.MemberID,
		CourseID:     result.CourseID,
		TeeID:        result.TeeID,
		Date:         result.SlotDate,
		Time:         result.BookingTime,
		Participants: result.Participants,
		Status:       string(result.Status),
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}
