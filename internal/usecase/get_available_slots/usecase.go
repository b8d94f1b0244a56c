package get_available_slots

import (
	"context"
	"fmt"

	"github.com/aldnch/GolfTeeService/internal/domain"
	"github.com/aldnch/GolfTeeService/pkg/types"
)

// UseCase use case для получения слотовой сетки на дату
type UseCase struct {
	bookingRepo BookingRepository
	requestRepo JoinRequestRepository
	memberSvc   MemberServiceClient
	schedule    domain.SlotSchedule
	clock       Clock
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	requestRepo JoinRequestRepository,
	memberSvc MemberServiceClient,
	schedule domain.SlotSchedule,
	clk Clock,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		requestRepo: requestRepo,
		memberSvc:   memberSvc,
		schedule:    schedule,
		clock:       clk,
		logger:      logger,
	}
}

// Execute выполняет use case получения слотовой сетки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: member=%d, course=%d, tee=%d, date=%s",
		req.MemberID, req.CourseID, req.TeeID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время клуба
	now := uc.clock.Now()

	// 3. Валидация даты относительно окна бронирования
	if err := validateDate(req.Date, now, uc.schedule); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 4. Генерируем сетку времен с отсечкой прошедших слотов
	timeSlots, err := generateTimeSlots(req.Date, now, uc.schedule)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	// 5. Получаем активные бронирования на дату и стартовую точку
	filter := domain.SlotBookingsFilter{
		CourseID:   req.CourseID,
		TeeID:      &req.TeeID,
		SlotDate:   &req.Date,
		ActiveOnly: true,
	}
	bookings, err := uc.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Собираем ожидающие заявки участника, чтобы пометить слоты
	pendingBookingIDs, err := uc.pendingRequestBookings(ctx, req.MemberID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get pending requests: %v", err)
		return nil, fmt.Errorf("%w: failed to get pending requests: %v", ErrInternal, err)
	}

	// 7. Собираем слоты с доступностью для участника
	grouped := groupBookingsByTime(bookings)
	slots := make([]Slot, 0, len(timeSlots))
	for _, slotTime := range timeSlots {
		slots = append(slots, uc.buildSlot(ctx, slotTime, grouped[slotTime], req.MemberID, pendingBookingIDs))
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for course=%d, tee=%d, date=%s",
		len(slots), req.CourseID, req.TeeID, req.Date.Format(domain.DateFormat))

	return &Response{
		CourseID: req.CourseID,
		TeeID:    req.TeeID,
		Date:     req.Date,
		Slots:    slots,
	}, nil
}

// pendingRequestBookings возвращает ID бронирований, на которые у участника
// уже есть ожидающая заявка.
func (uc *UseCase) pendingRequestBookings(ctx context.Context, memberID int64) (map[int64]bool, error) {
	sent, err := uc.requestRepo.GetSentByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}

	pending := make(map[int64]bool)
	for _, r := range sent {
		if r.IsPending() {
			pending[r.OriginalBookingID] = true
		}
	}
	return pending, nil
}

// buildSlot собирает слот с доступностью относительно участника.
// Владеющее бронирование в слоте первое по времени создания,
// запрос на присоединение адресуется именно ему.
func (uc *UseCase) buildSlot(
	ctx context.Context,
	slotTime types.TimeString,
	slotBookings []*domain.Booking,
	memberID int64,
	pendingBookingIDs map[int64]bool,
) Slot {
	slot := Slot{
		Time:     slotTime,
		Capacity: uc.schedule.Capacity,
		Bookings: make([]SlotBooking, 0, len(slotBookings)),
	}

	for _, b := range slotBookings {
		slot.CurrentParticipants += b.Participants
		slot.Bookings = append(slot.Bookings, SlotBooking{
			BookingID:    b.ID,
			MemberID:     b.MemberID,
			MemberName:   uc.memberSvc.GetMemberName(ctx, b.MemberID),
			Participants: b.Participants,
			Status:       string(b.Status),
		})

		if b.MemberID == memberID && !slot.IsOwnBooking {
			slot.IsOwnBooking = true
			slot.OwnBookingID = b.ID
		}
	}

	occupancy := domain.Slot{
		Capacity:            uc.schedule.Capacity,
		CurrentParticipants: slot.CurrentParticipants,
	}
	slot.Status = occupancy.Status()
	slot.AvailableSpots = occupancy.AvailableSpots()

	hasSpots := slot.AvailableSpots > 0
	slot.CanAddParticipants = slot.IsOwnBooking && hasSpots

	if len(slotBookings) > 0 && !slot.IsOwnBooking {
		owningBookingID := slotBookings[0].ID
		slot.HasPendingRequest = pendingBookingIDs[owningBookingID]
		slot.CanJoinRequest = hasSpots && !slot.HasPendingRequest
	}

	return slot
}
