package manage_selections

import (
	"context"
	"fmt"

	"github.com/aldnch/GolfTeeService/internal/selection"
	"github.com/aldnch/GolfTeeService/internal/usecase/check_slot_availability"
)

// UseCase use case для управления набором выбранных слотов.
// Набор живет в рамках сессии: переключение даты или стартовой точки
// сохраняет выборки, а новая сессия начинается с пустого набора.
type UseCase struct {
	checker AvailabilityChecker
	store   SelectionStore
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(checker AvailabilityChecker, store SelectionStore, logger Logger) *UseCase {
	return &UseCase{
		checker: checker,
		store:   store,
		logger:  logger,
	}
}

// Upsert добавляет слот в набор или обновляет число участников.
// Снимок состояния слота снимается здесь: по нему при отправке
// набора решается, каким действием обработать запись.
func (uc *UseCase) Upsert(ctx context.Context, req *UpsertRequest) (*Response, error) {
	uc.logger.Info("UpsertSelection: member=%d, session=%s, tee=%d, date=%s, time=%s, participants=%d",
		req.MemberID, req.SessionID, req.TeeID, req.Date.Format("2006-01-02"), req.Time, req.Participants)

	if err := validateUpsert(req); err != nil {
		uc.logger.Warn("UpsertSelection: validation failed: %v", err)
		return nil, err
	}

	// 1. Снимаем текущее состояние слота
	availability, err := uc.checker.Execute(ctx, &check_slot_availability.Request{
		MemberID:     req.MemberID,
		CourseID:     req.CourseID,
		TeeID:        req.TeeID,
		Date:         req.Date,
		Time:         req.Time,
		Participants: req.Participants,
	})
	if err != nil {
		uc.logger.Warn("UpsertSelection: availability check failed: %v", err)
		return nil, err
	}

	// 2. Запрошенное число участников должно умещаться в свободные
	// места слота, для владельца бронирования тоже
	if !availability.CanFit {
		uc.logger.Warn("UpsertSelection: slot %s %s cannot take %d participants",
			req.Date.Format("2006-01-02"), req.Time, req.Participants)
		return nil, ErrSlotUnavailable
	}

	// 3. Обновляем набор
	set, err := uc.store.Load(ctx, req.SessionID)
	if err != nil {
		uc.logger.Error("UpsertSelection: failed to load set: %v", err)
		return nil, fmt.Errorf("%w: failed to load set: %v", ErrInternal, err)
	}

	set.Upsert(selection.Entry{
		CourseID:            req.CourseID,
		TeeID:               req.TeeID,
		SlotDate:            req.Date,
		BookingTime:         req.Time,
		Participants:        req.Participants,
		OriginalStatus:      availability.Status,
		IsOwnBooking:        availability.IsOwnBooking,
		OwnBookingID:        availability.OwnBookingID,
		OwningBookingID:     availability.OwningBookingID,
		CanAddParticipants:  availability.CanAddParticipants,
		CanJoinRequest:      availability.CanJoinRequest,
		CurrentParticipants: availability.CurrentParticipants,
		AvailableSpots:      availability.AvailableSpots,
		HasExistingRequest:  availability.HasPendingRequest,
	})

	if err := uc.store.Save(ctx, req.SessionID, set); err != nil {
		uc.logger.Error("UpsertSelection: failed to save set: %v", err)
		return nil, fmt.Errorf("%w: failed to save set: %v", ErrInternal, err)
	}

	return responseFromSet(set.Entries, set), nil
}

// Remove снимает выбор со слота
func (uc *UseCase) Remove(ctx context.Context, req *RemoveRequest) (*Response, error) {
	uc.logger.Info("RemoveSelection: session=%s, tee=%d, date=%s, time=%s",
		req.SessionID, req.TeeID, req.Date.Format("2006-01-02"), req.Time)

	if req.SessionID == "" {
		return nil, fmt.Errorf("%w: sessionId is required", ErrInvalidInput)
	}

	set, err := uc.store.Load(ctx, req.SessionID)
	if err != nil {
		uc.logger.Error("RemoveSelection: failed to load set: %v", err)
		return nil, fmt.Errorf("%w: failed to load set: %v", ErrInternal, err)
	}

	key := selection.Key{
		SlotDate:    req.Date.Format("2006-01-02"),
		TeeID:       req.TeeID,
		BookingTime: req.Time,
	}
	if !set.Remove(key) {
		uc.logger.Warn("RemoveSelection: selection not found for session=%s", req.SessionID)
		return nil, ErrSelectionNotFound
	}

	if err := uc.store.Save(ctx, req.SessionID, set); err != nil {
		uc.logger.Error("RemoveSelection: failed to save set: %v", err)
		return nil, fmt.Errorf("%w: failed to save set: %v", ErrInternal, err)
	}

	return responseFromSet(set.Entries, set), nil
}

// Restore возвращает выборки, относящиеся к текущему контексту просмотра.
// Выборки других дат и стартовых точек остаются в наборе.
func (uc *UseCase) Restore(ctx context.Context, req *RestoreRequest) (*Response, error) {
	if req.SessionID == "" {
		return nil, fmt.Errorf("%w: sessionId is required", ErrInvalidInput)
	}

	set, err := uc.store.Load(ctx, req.SessionID)
	if err != nil {
		uc.logger.Error("RestoreSelections: failed to load set: %v", err)
		return nil, fmt.Errorf("%w: failed to load set: %v", ErrInternal, err)
	}

	restored := set.RestoreForContext(req.CourseID, req.TeeID, req.Date)
	return responseFromSet(restored, set), nil
}

// Clear очищает весь набор сессии
func (uc *UseCase) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("%w: sessionId is required", ErrInvalidInput)
	}

	if err := uc.store.Clear(ctx, sessionID); err != nil {
		uc.logger.Error("ClearSelections: failed to clear set: %v", err)
		return fmt.Errorf("%w: failed to clear set: %v", ErrInternal, err)
	}

	uc.logger.Info("ClearSelections: cleared set for session=%s", sessionID)
	return nil
}

func responseFromSet(entries []selection.Entry, set *selection.Set) *Response {
	return &Response{
		Entries:           entries,
		TotalSelections:   set.Len(),
		TotalParticipants: set.TotalParticipants(),
	}
}

func validateUpsert(req *UpsertRequest) error {
	if req.MemberID <= 0 {
		return fmt.Errorf("%w: memberId must be positive", ErrInvalidInput)
	}
	if req.SessionID == "" {
		return fmt.Errorf("%w: sessionId is required", ErrInvalidInput)
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
	if req.Participants <= 0 {
		return fmt.Errorf("%w: participants must be positive", ErrInvalidInput)
	}
	return nil
}
