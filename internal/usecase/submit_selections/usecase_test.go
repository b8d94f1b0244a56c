package submit_selections

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldnch/GolfTeeService/internal/domain"
	"github.com/aldnch/GolfTeeService/internal/selection"
	"github.com/aldnch/GolfTeeService/internal/usecase/add_participants"
	"github.com/aldnch/GolfTeeService/internal/usecase/create_booking"
	"github.com/aldnch/GolfTeeService/internal/usecase/create_join_request"
	"github.com/aldnch/GolfTeeService/pkg/types"
)

type mockBookingCreator struct {
	fn func(ctx context.Context, req *create_booking.Request) (*create_booking.Response, error)
}

func (m *mockBookingCreator) Execute(ctx context.Context, req *create_booking.Request) (*create_booking.Response, error) {
	return m.fn(ctx, req)
}

type mockParticipantAdder struct {
	fn func(ctx context.Context, req *add_participants.Request) (*add_participants.Response, error)
}

func (m *mockParticipantAdder) Execute(ctx context.Context, req *add_participants.Request) (*add_participants.Response, error) {
	return m.fn(ctx, req)
}

type mockJoinRequester struct {
	fn func(ctx context.Context, req *create_join_request.Request) (*create_join_request.Response, error)
}

func (m *mockJoinRequester) Execute(ctx context.Context, req *create_join_request.Request) (*create_join_request.Response, error) {
	return m.fn(ctx, req)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func availableEntry(slotTime types.TimeString, participants int) selection.Entry {
	return selection.Entry{
		CourseID:       1,
		TeeID:          2,
		SlotDate:       time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
		BookingTime:    slotTime,
		Participants:   participants,
		OriginalStatus: domain.SlotAvailable,
	}
}

func ownBookingEntry(slotTime types.TimeString, bookingID int64, participants int) selection.Entry {
	e := availableEntry(slotTime, participants)
	e.OriginalStatus = domain.SlotPartiallyAvailable
	e.IsOwnBooking = true
	e.OwnBookingID = bookingID
	e.CanAddParticipants = true
	return e
}

func joinableEntry(slotTime types.TimeString, owningBookingID int64, participants int) selection.Entry {
	e := availableEntry(slotTime, participants)
	e.OriginalStatus = domain.SlotPartiallyAvailable
	e.OwningBookingID = owningBookingID
	e.CanJoinRequest = true
	return e
}

func storeWith(t *testing.T, entries ...selection.Entry) *selection.MemoryStore {
	t.Helper()
	store := selection.NewMemoryStore()
	set := selection.NewSet()
	for _, e := range entries {
		set.Upsert(e)
	}
	require.NoError(t, store.Save(context.Background(), "session-1", set))
	return store
}

func happyCreator() *mockBookingCreator {
	return &mockBookingCreator{
		fn: func(ctx context.Context, req *create_booking.Request) (*create_booking.Response, error) {
			return &create_booking.Response{ID: 101, Participants: req.Participants}, nil
		},
	}
}

func happyAdder() *mockParticipantAdder {
	return &mockParticipantAdder{
		fn: func(ctx context.Context, req *add_participants.Request) (*add_participants.Response, error) {
			return &add_participants.Response{ID: req.BookingID}, nil
		},
	}
}

func happyRequester() *mockJoinRequester {
	return &mockJoinRequester{
		fn: func(ctx context.Context, req *create_join_request.Request) (*create_join_request.Response, error) {
			return &create_join_request.Response{ID: 301}, nil
		},
	}
}

func TestClassifyEntry(t *testing.T) {
	tests := []struct {
		name     string
		entry    selection.Entry
		expected Action
	}{
		{"free slot", availableEntry("09:04", 2), ActionConfirm},
		{"own booking with spots", ownBookingEntry("09:04", 100, 1), ActionAddParticipants},
		{"foreign partial slot", joinableEntry("09:04", 200, 1), ActionJoinRequest},
		{
			name: "existing request still dispatches join",
			entry: func() selection.Entry {
				e := joinableEntry("09:04", 200, 1)
				e.CanJoinRequest = false
				e.HasExistingRequest = true
				return e
			}(),
			expected: ActionJoinRequest,
		},
		{
			name: "booked slot",
			entry: func() selection.Entry {
				e := availableEntry("09:04", 1)
				e.OriginalStatus = domain.SlotBooked
				return e
			}(),
			expected: ActionUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifyEntry(tt.entry))
		})
	}
}

func TestExecute_AllActionsSucceed(t *testing.T) {
	store := storeWith(t,
		availableEntry("09:04", 2),
		ownBookingEntry("10:00", 100, 1),
		joinableEntry("11:04", 200, 1),
	)

	uc := NewUseCase(happyCreator(), happyAdder(), happyRequester(), store, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{MemberID: 10, SessionID: "session-1"})
	require.NoError(t, err)
	require.Len(t, resp.Outcomes, 3)

	assert.Equal(t, 1, resp.Summary.Confirmed)
	assert.Equal(t, 1, resp.Summary.ParticipantsAdded)
	assert.Equal(t, 1, resp.Summary.JoinRequested)
	assert.Equal(t, 0, resp.Summary.Failed)
	assert.Equal(t, "Booking confirmed", resp.Summary.Title)
	assert.True(t, resp.Summary.SelectionsCleared)

	// Итоги идут в порядке выборок
	assert.Equal(t, OutcomeConfirmed, resp.Outcomes[0].Status)
	assert.Equal(t, OutcomeParticipantsAdded, resp.Outcomes[1].Status)
	assert.Equal(t, OutcomeJoinRequested, resp.Outcomes[2].Status)

	// Набор очищен при полном успехе
	set, err := store.Load(context.Background(), "session-1")
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())
}

func TestExecute_PartialFailureKeepsSelections(t *testing.T) {
	store := storeWith(t,
		availableEntry("09:04", 2),
		availableEntry("10:00", 1),
	)

	creator := &mockBookingCreator{
		fn: func(ctx context.Context, req *create_booking.Request) (*create_booking.Response, error) {
			if req.Time == "10:00" {
				return nil, create_booking.ErrSlotFull
			}
			return &create_booking.Response{ID: 101}, nil
		},
	}

	uc := NewUseCase(creator, happyAdder(), happyRequester(), store, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{MemberID: 10, SessionID: "session-1"})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Summary.Confirmed)
	assert.Equal(t, 1, resp.Summary.Failed)
	assert.Equal(t, "Partially completed", resp.Summary.Title)
	assert.False(t, resp.Summary.SelectionsCleared)

	assert.Equal(t, OutcomeFailed, resp.Outcomes[1].Status)
	assert.NotEmpty(t, resp.Outcomes[1].Error)

	// Набор остается, участник может исправить и повторить
	set, err := store.Load(context.Background(), "session-1")
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())
}

func TestExecute_ExistingRequestCountsAsSuccess(t *testing.T) {
	store := storeWith(t, joinableEntry("09:04", 200, 1))

	requester := &mockJoinRequester{
		fn: func(ctx context.Context, req *create_join_request.Request) (*create_join_request.Response, error) {
			return &create_join_request.Response{ID: 301, AlreadyExists: true}, nil
		},
	}

	uc := NewUseCase(happyCreator(), happyAdder(), requester, store, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{MemberID: 10, SessionID: "session-1"})
	require.NoError(t, err)

	assert.Equal(t, OutcomeExistingRequest, resp.Outcomes[0].Status)
	assert.Equal(t, 1, resp.Summary.ExistingRequests)
	assert.Equal(t, 0, resp.Summary.Failed)
	assert.Equal(t, "Requests already sent", resp.Summary.Title)
	assert.True(t, resp.Summary.SelectionsCleared)
}

func TestExecute_AllFailed(t *testing.T) {
	store := storeWith(t, availableEntry("09:04", 2))

	creator := &mockBookingCreator{
		fn: func(ctx context.Context, req *create_booking.Request) (*create_booking.Response, error) {
			return nil, create_booking.ErrSlotFull
		},
	}

	uc := NewUseCase(creator, happyAdder(), happyRequester(), store, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{MemberID: 10, SessionID: "session-1"})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Summary.Failed)
	assert.Equal(t, "Booking failed", resp.Summary.Title)
	assert.False(t, resp.Summary.SelectionsCleared)
}

func TestExecute_UnavailableEntryFails(t *testing.T) {
	booked := availableEntry("09:04", 1)
	booked.OriginalStatus = domain.SlotBooked
	store := storeWith(t, booked)

	uc := NewUseCase(happyCreator(), happyAdder(), happyRequester(), store, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{MemberID: 10, SessionID: "session-1"})
	require.NoError(t, err)

	assert.Equal(t, ActionUnavailable, resp.Outcomes[0].Action)
	assert.Equal(t, OutcomeFailed, resp.Outcomes[0].Status)
}

func TestExecute_EmptySet(t *testing.T) {
	store := selection.NewMemoryStore()
	uc := NewUseCase(happyCreator(), happyAdder(), happyRequester(), store, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{MemberID: 10, SessionID: "session-1"})
	assert.ErrorIs(t, err, ErrNoSelections)
}

func TestSummaryWording(t *testing.T) {
	tests := []struct {
		name     string
		summary  Summary
		expected string
	}{
		{"all booked", Summary{Total: 2, Confirmed: 2}, "Booking confirmed"},
		{"mixed booked and requested", Summary{Total: 2, Confirmed: 1, JoinRequested: 1}, "Booking confirmed"},
		{"only new requests", Summary{Total: 1, JoinRequested: 1}, "Join requests sent"},
		{"only existing requests", Summary{Total: 1, ExistingRequests: 1}, "Requests already sent"},
		{"partial failure", Summary{Total: 3, Confirmed: 2, Failed: 1}, "Partially completed"},
		{"total failure", Summary{Total: 2, Failed: 2}, "Booking failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, subtitle := summaryWording(tt.summary)
			assert.Equal(t, tt.expected, title)
			assert.NotEmpty(t, subtitle)
		})
	}
}
