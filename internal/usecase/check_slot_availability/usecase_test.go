package check_slot_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldnch/GolfTeeService/internal/domain"
	requestRepo "github.com/aldnch/GolfTeeService/internal/infra/storage/joinrequest"
)

type mockBookingRepo struct {
	getWithFilterFn func(ctx context.Context, filter domain.SlotBookingsFilter) ([]*domain.Booking, error)
}

func (m *mockBookingRepo) GetWithFilter(ctx context.Context, filter domain.SlotBookingsFilter) ([]*domain.Booking, error) {
	return m.getWithFilterFn(ctx, filter)
}

type mockRequestRepo struct {
	findPendingFn func(ctx context.Context, bookingID, requesterID int64) (*domain.JoinRequest, error)
}

func (m *mockRequestRepo) FindPendingByBookingAndRequester(ctx context.Context, bookingID, requesterID int64) (*domain.JoinRequest, error) {
	return m.findPendingFn(ctx, bookingID, requesterID)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func testSchedule() domain.SlotSchedule {
	return domain.SlotSchedule{Capacity: 4, GranularityMinutes: 8, WindowDays: 7, OpenTime: "06:00", CloseTime: "20:00"}
}

func newTestUseCase(bookings []*domain.Booking, pendingErr error) *UseCase {
	bookingRepo := &mockBookingRepo{
		getWithFilterFn: func(ctx context.Context, filter domain.SlotBookingsFilter) ([]*domain.Booking, error) {
			return bookings, nil
		},
	}
	reqRepo := &mockRequestRepo{
		findPendingFn: func(ctx context.Context, bookingID, requesterID int64) (*domain.JoinRequest, error) {
			if pendingErr != nil {
				return nil, pendingErr
			}
			return &domain.JoinRequest{ID: 300, Status: domain.RequestPendingApproval}, nil
		},
	}
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	return NewUseCase(bookingRepo, reqRepo, testSchedule(), fixedClock{now}, noopLogger{})
}

func baseRequest() *Request {
	return &Request{
		MemberID:     10,
		CourseID:     1,
		TeeID:        2,
		Date:         time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
		Time:         "10:00",
		Participants: 1,
	}
}

func TestExecute_EmptySlot(t *testing.T) {
	uc := newTestUseCase(nil, requestRepo.ErrRequestNotFound)

	resp, err := uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.SlotAvailable, resp.Status)
	assert.Equal(t, 4, resp.AvailableSpots)
	assert.True(t, resp.CanFit)
	assert.False(t, resp.IsOwnBooking)
	assert.False(t, resp.CanJoinRequest)
	assert.Zero(t, resp.OwningBookingID)
}

func TestExecute_OwnBooking(t *testing.T) {
	uc := newTestUseCase([]*domain.Booking{
		{ID: 100, MemberID: 10, Participants: 2, Status: domain.StatusConfirmed},
	}, requestRepo.ErrRequestNotFound)

	resp, err := uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)

	assert.True(t, resp.IsOwnBooking)
	assert.Equal(t, int64(100), resp.OwnBookingID)
	assert.True(t, resp.CanAddParticipants)
	assert.False(t, resp.CanJoinRequest)
}

func TestExecute_ForeignSlotJoinable(t *testing.T) {
	uc := newTestUseCase([]*domain.Booking{
		{ID: 200, MemberID: 20, Participants: 2, Status: domain.StatusConfirmed},
	}, requestRepo.ErrRequestNotFound)

	resp, err := uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.SlotPartiallyAvailable, resp.Status)
	assert.Equal(t, int64(200), resp.OwningBookingID)
	assert.True(t, resp.CanJoinRequest)
	assert.False(t, resp.HasPendingRequest)
}

func TestExecute_ForeignSlotWithPendingRequest(t *testing.T) {
	uc := newTestUseCase([]*domain.Booking{
		{ID: 200, MemberID: 20, Participants: 2, Status: domain.StatusConfirmed},
	}, nil)

	resp, err := uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)

	assert.True(t, resp.HasPendingRequest)
	assert.False(t, resp.CanJoinRequest)
}

func TestExecute_OwningBookingIsFirstCreated(t *testing.T) {
	// Репозиторий отдает бронирования по created_at, первое владеет слотом
	uc := newTestUseCase([]*domain.Booking{
		{ID: 200, MemberID: 20, Participants: 1, Status: domain.StatusConfirmed},
		{ID: 300, MemberID: 30, Participants: 1, Status: domain.StatusConfirmed},
	}, requestRepo.ErrRequestNotFound)

	resp, err := uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(200), resp.OwningBookingID)
	assert.Equal(t, 2, resp.CurrentParticipants)
}

func TestExecute_PastSlot(t *testing.T) {
	uc := newTestUseCase(nil, requestRepo.ErrRequestNotFound)

	req := baseRequest()
	req.Date = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	req.Time = "09:04" // now = 12:00

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotInPast)

	req.Date = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	req.Time = "15:00"
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotInPast)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(nil, requestRepo.ErrRequestNotFound)

	req := baseRequest()
	req.Time = "25:99"
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = baseRequest()
	req.Participants = 0
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
