package submit_selections

import (
	"context"
	"fmt"
	"sync"

	"github.com/aldnch/GolfTeeService/internal/usecase/add_participants"
	"github.com/aldnch/GolfTeeService/internal/usecase/create_booking"
	"github.com/aldnch/GolfTeeService/internal/usecase/create_join_request"
)

// UseCase use case для пакетной отправки набора выборок.
// Каждая запись набора превращается в одно из действий: новое
// бронирование, добавление участников или заявка на присоединение.
type UseCase struct {
	bookingCreator   BookingCreator
	participantAdder ParticipantAdder
	joinRequester    JoinRequester
	store            SelectionStore
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingCreator BookingCreator,
	participantAdder ParticipantAdder,
	joinRequester JoinRequester,
	store SelectionStore,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingCreator:   bookingCreator,
		participantAdder: participantAdder,
		joinRequester:    joinRequester,
		store:            store,
		logger:           logger,
	}
}

// Execute выполняет use case отправки набора.
// Записи обрабатываются параллельно: каждая идет своей транзакцией,
// частичный провал не откатывает остальные. Набор очищается только
// когда все записи прошли; иначе участник видит, что именно не удалось,
// и может отправить набор повторно.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitSelections: member=%d, session=%s", req.MemberID, req.SessionID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitSelections: validation failed: %v", err)
		return nil, err
	}

	// 1. Загружаем набор сессии
	set, err := uc.store.Load(ctx, req.SessionID)
	if err != nil {
		uc.logger.Error("SubmitSelections: failed to load selections: %v", err)
		return nil, fmt.Errorf("%w: failed to load selections: %v", ErrInternal, err)
	}
	if set.Len() == 0 {
		uc.logger.Warn("SubmitSelections: empty selection set for session=%s", req.SessionID)
		return nil, ErrNoSelections
	}

	// 2. Классифицируем записи по действиям
	entries := partition(set.Entries)

	// 3. Обрабатываем записи параллельно
	outcomes := make([]Outcome, len(entries))
	var wg sync.WaitGroup
	for _, c := range entries {
		wg.Add(1)
		go func(c classified) {
			defer wg.Done()
			outcomes[c.index] = uc.processEntry(ctx, req.MemberID, c)
		}(c)
	}
	wg.Wait()

	// 4. Агрегируем итоги
	summary := buildSummary(outcomes)

	// 5. Очищаем набор только при полном успехе
	if summary.Failed == 0 {
		if err := uc.store.Clear(ctx, req.SessionID); err != nil {
			// Набор истечет по TTL, сами бронирования уже созданы
			uc.logger.Warn("SubmitSelections: failed to clear selections for session=%s: %v",
				req.SessionID, err)
		} else {
			summary.SelectionsCleared = true
		}
	}

	uc.logger.Info("SubmitSelections: member=%d processed %d selections: confirmed=%d, added=%d, requested=%d, existing=%d, failed=%d",
		req.MemberID, summary.Total, summary.Confirmed, summary.ParticipantsAdded,
		summary.JoinRequested, summary.ExistingRequests, summary.Failed)

	return &Response{
		Outcomes: outcomes,
		Summary:  summary,
	}, nil
}

// processEntry выполняет действие одной записи и собирает итог
func (uc *UseCase) processEntry(ctx context.Context, memberID int64, c classified) Outcome {
	outcome := Outcome{
		Date:         c.entry.SlotDate,
		TeeID:        c.entry.TeeID,
		Time:         c.entry.BookingTime,
		Participants: c.entry.Participants,
		Action:       c.action,
	}

	switch c.action {
	case ActionConfirm:
		resp, err := uc.bookingCreator.Execute(ctx, &create_booking.Request{
			MemberID:     memberID,
			CourseID:     c.entry.CourseID,
			TeeID:        c.entry.TeeID,
			Date:         c.entry.SlotDate,
			Time:         c.entry.BookingTime,
			Participants: c.entry.Participants,
		})
		if err != nil {
			uc.logger.Warn("SubmitSelections: confirm failed for %s %s: %v",
				c.entry.SlotDate.Format("2006-01-02"), c.entry.BookingTime, err)
			outcome.Status = OutcomeFailed
			outcome.Error = err.Error()
			return outcome
		}
		outcome.Status = OutcomeConfirmed
		outcome.BookingID = resp.ID

	case ActionAddParticipants:
		resp, err := uc.participantAdder.Execute(ctx, &add_participants.Request{
			MemberID:  memberID,
			BookingID: c.entry.OwnBookingID,
			Extra:     c.entry.Participants,
		})
		if err != nil {
			uc.logger.Warn("SubmitSelections: add participants failed for booking=%d: %v",
				c.entry.OwnBookingID, err)
			outcome.Status = OutcomeFailed
			outcome.Error = err.Error()
			return outcome
		}
		outcome.Status = OutcomeParticipantsAdded
		outcome.BookingID = resp.ID

	case ActionJoinRequest:
		resp, err := uc.joinRequester.Execute(ctx, &create_join_request.Request{
			RequesterID:  memberID,
			BookingID:    c.entry.OwningBookingID,
			Participants: c.entry.Participants,
		})
		if err != nil {
			uc.logger.Warn("SubmitSelections: join request failed for %s %s: %v",
				c.entry.SlotDate.Format("2006-01-02"), c.entry.BookingTime, err)
			outcome.Status = OutcomeFailed
			outcome.Error = err.Error()
			return outcome
		}
		if resp.AlreadyExists {
			outcome.Status = OutcomeExistingRequest
		} else {
			outcome.Status = OutcomeJoinRequested
		}
		outcome.RequestID = resp.ID

	default:
		outcome.Status = OutcomeFailed
		outcome.Error = "slot is no longer available"
	}

	return outcome
}

func validateRequest(req *Request) error {
	if req.MemberID <= 0 {
		return fmt.Errorf("%w: memberId must be positive", ErrInvalidInput)
	}
	if req.SessionID == "" {
		return fmt.Errorf("%w: sessionId is required", ErrInvalidInput)
	}
	return nil
}
