package manage_selections

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldnch/GolfTeeService/internal/domain"
	"github.com/aldnch/GolfTeeService/internal/selection"
	checkSlot "github.com/aldnch/GolfTeeService/internal/usecase/check_slot_availability"
)

type mockChecker struct {
	fn func(ctx context.Context, req *checkSlot.Request) (*checkSlot.Response, error)
}

func (m *mockChecker) Execute(ctx context.Context, req *checkSlot.Request) (*checkSlot.Response, error) {
	return m.fn(ctx, req)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func availableChecker() *mockChecker {
	return &mockChecker{
		fn: func(ctx context.Context, req *checkSlot.Request) (*checkSlot.Response, error) {
			return &checkSlot.Response{
				Status:         domain.SlotAvailable,
				Capacity:       4,
				AvailableSpots: 4,
				CanFit:         true,
			}, nil
		},
	}
}

func upsertRequest() *UpsertRequest {
	return &UpsertRequest{
		MemberID:     10,
		SessionID:    "session-1",
		CourseID:     1,
		TeeID:        2,
		Date:         time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
		Time:         "09:04",
		Participants: 2,
	}
}

func TestUpsert_StoresAvailabilitySnapshot(t *testing.T) {
	checker := &mockChecker{
		fn: func(ctx context.Context, req *checkSlot.Request) (*checkSlot.Response, error) {
			return &checkSlot.Response{
				Status:              domain.SlotPartiallyAvailable,
				Capacity:            4,
				CurrentParticipants: 2,
				AvailableSpots:      2,
				CanFit:              true,
				OwningBookingID:     200,
				CanJoinRequest:      true,
			}, nil
		},
	}
	store := selection.NewMemoryStore()
	uc := NewUseCase(checker, store, noopLogger{})

	resp, err := uc.Upsert(context.Background(), upsertRequest())
	require.NoError(t, err)
	require.Equal(t, 1, resp.TotalSelections)

	entry := resp.Entries[0]
	assert.Equal(t, domain.SlotPartiallyAvailable, entry.OriginalStatus)
	assert.Equal(t, int64(200), entry.OwningBookingID)
	assert.True(t, entry.CanJoinRequest)
	assert.Equal(t, 2, entry.AvailableSpots)
}

func TestUpsert_RejectsUnselectableSlot(t *testing.T) {
	checker := &mockChecker{
		fn: func(ctx context.Context, req *checkSlot.Request) (*checkSlot.Response, error) {
			return &checkSlot.Response{
				Status:              domain.SlotBooked,
				Capacity:            4,
				CurrentParticipants: 4,
			}, nil
		},
	}
	uc := NewUseCase(checker, selection.NewMemoryStore(), noopLogger{})

	_, err := uc.Upsert(context.Background(), upsertRequest())
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestUpsert_OwnBookingCappedByAvailableSpots(t *testing.T) {
	// Запрошенное число участников ограничено свободными местами
	// слота даже для владельца бронирования
	checker := &mockChecker{
		fn: func(ctx context.Context, req *checkSlot.Request) (*checkSlot.Response, error) {
			return &checkSlot.Response{
				Status:              domain.SlotPartiallyAvailable,
				Capacity:            4,
				CurrentParticipants: 3,
				AvailableSpots:      1,
				CanFit:              false,
				IsOwnBooking:        true,
				OwnBookingID:        100,
				CanAddParticipants:  true,
			}, nil
		},
	}
	uc := NewUseCase(checker, selection.NewMemoryStore(), noopLogger{})

	req := upsertRequest()
	req.Participants = 2
	_, err := uc.Upsert(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestUpsert_OwnBookingWithinAvailableSpots(t *testing.T) {
	checker := &mockChecker{
		fn: func(ctx context.Context, req *checkSlot.Request) (*checkSlot.Response, error) {
			return &checkSlot.Response{
				Status:              domain.SlotPartiallyAvailable,
				Capacity:            4,
				CurrentParticipants: 3,
				AvailableSpots:      1,
				CanFit:              true,
				IsOwnBooking:        true,
				OwnBookingID:        100,
				CanAddParticipants:  true,
			}, nil
		},
	}
	uc := NewUseCase(checker, selection.NewMemoryStore(), noopLogger{})

	req := upsertRequest()
	req.Participants = 1
	resp, err := uc.Upsert(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, resp.Entries[0].IsOwnBooking)
	assert.Equal(t, int64(100), resp.Entries[0].OwnBookingID)
}

func TestUpsert_ForwardsCheckerErrors(t *testing.T) {
	checker := &mockChecker{
		fn: func(ctx context.Context, req *checkSlot.Request) (*checkSlot.Response, error) {
			return nil, checkSlot.ErrSlotInPast
		},
	}
	uc := NewUseCase(checker, selection.NewMemoryStore(), noopLogger{})

	_, err := uc.Upsert(context.Background(), upsertRequest())
	assert.ErrorIs(t, err, checkSlot.ErrSlotInPast)
}

func TestRemove(t *testing.T) {
	store := selection.NewMemoryStore()
	uc := NewUseCase(availableChecker(), store, noopLogger{})

	_, err := uc.Upsert(context.Background(), upsertRequest())
	require.NoError(t, err)

	resp, err := uc.Remove(context.Background(), &RemoveRequest{
		SessionID: "session-1",
		TeeID:     2,
		Date:      time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
		Time:      "09:04",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.TotalSelections)

	// Повторное снятие того же слота
	_, err = uc.Remove(context.Background(), &RemoveRequest{
		SessionID: "session-1",
		TeeID:     2,
		Date:      time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
		Time:      "09:04",
	})
	assert.ErrorIs(t, err, ErrSelectionNotFound)
}

func TestRestore_ProjectsCurrentContext(t *testing.T) {
	store := selection.NewMemoryStore()
	uc := NewUseCase(availableChecker(), store, noopLogger{})

	req := upsertRequest()
	_, err := uc.Upsert(context.Background(), req)
	require.NoError(t, err)

	other := upsertRequest()
	other.Date = time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)
	_, err = uc.Upsert(context.Background(), other)
	require.NoError(t, err)

	resp, err := uc.Restore(context.Background(), &RestoreRequest{
		SessionID: "session-1",
		CourseID:  1,
		TeeID:     2,
		Date:      time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// Восстановлена одна выборка, но в наборе остаются обе
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, 2, resp.TotalSelections)
}

func TestClear(t *testing.T) {
	store := selection.NewMemoryStore()
	uc := NewUseCase(availableChecker(), store, noopLogger{})

	_, err := uc.Upsert(context.Background(), upsertRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Clear(context.Background(), "session-1"))

	set, err := store.Load(context.Background(), "session-1")
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())
}
