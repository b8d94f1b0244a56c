package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldnch/GolfTeeService/internal/domain"
)

type mockBookingRepo struct {
	createFn        func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	getWithFilterFn func(ctx context.Context, filter domain.SlotBookingsFilter) ([]*domain.Booking, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	return m.createFn(ctx, booking)
}

func (m *mockBookingRepo) GetWithFilter(ctx context.Context, filter domain.SlotBookingsFilter) ([]*domain.Booking, error) {
	return m.getWithFilterFn(ctx, filter)
}

// mockTxManager прогоняет функцию без настоящей транзакции
type mockTxManager struct{}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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
	return domain.SlotSchedule{
		Capacity:           4,
		GranularityMinutes: 8,
		WindowDays:         7,
		OpenTime:           "06:00",
		CloseTime:          "20:00",
	}
}

func validRequest() *Request {
	return &Request{
		MemberID:     10,
		CourseID:     1,
		TeeID:        2,
		Date:         time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
		Time:         "09:04",
		Participants: 2,
	}
}

func newTestUseCase(repo *mockBookingRepo) *UseCase {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	return NewUseCase(repo, &mockTxManager{}, testSchedule(), fixedClock{now}, noopLogger{})
}

func TestExecute_Success(t *testing.T) {
	repo := &mockBookingRepo{
		getWithFilterFn: func(ctx context.Context, filter domain.SlotBookingsFilter) ([]*domain.Booking, error) {
			return nil, nil
		},
		createFn: func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
			created := *booking
			created.ID = 42
			created.CreatedAt = time.Now()
			created.UpdatedAt = created.CreatedAt
			return &created, nil
		},
	}

	resp, err := newTestUseCase(repo).Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, 2, resp.Participants)
}

func TestExecute_SlotFull(t *testing.T) {
	repo := &mockBookingRepo{
		getWithFilterFn: func(ctx context.Context, filter domain.SlotBookingsFilter) ([]*domain.Booking, error) {
			return []*domain.Booking{
				{ID: 1, MemberID: 20, Participants: 3, Status: domain.StatusConfirmed},
			}, nil
		},
	}

	// 3 занято, запрошено 2 при вместимости 4
	_, err := newTestUseCase(repo).Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotFull)
}

func TestExecute_AlreadyBooked(t *testing.T) {
	repo := &mockBookingRepo{
		getWithFilterFn: func(ctx context.Context, filter domain.SlotBookingsFilter) ([]*domain.Booking, error) {
			return []*domain.Booking{
				{ID: 1, MemberID: 10, Participants: 1, Status: domain.StatusConfirmed},
			}, nil
		},
	}

	_, err := newTestUseCase(repo).Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrAlreadyBooked)
}

func TestExecute_SlotTimeValidation(t *testing.T) {
	repo := &mockBookingRepo{
		getWithFilterFn: func(ctx context.Context, filter domain.SlotBookingsFilter) ([]*domain.Booking, error) {
			return nil, nil
		},
	}
	uc := newTestUseCase(repo)

	tests := []struct {
		name     string
		mutate   func(req *Request)
		expected error
	}{
		{
			name:     "date in the past",
			mutate:   func(req *Request) { req.Date = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC) },
			expected: ErrSlotInPast,
		},
		{
			name:     "date outside the window",
			mutate:   func(req *Request) { req.Date = time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC) },
			expected: ErrDateOutsideWindow,
		},
		{
			// 09:05 не лежит на сетке 06:00 + 8k минут
			name:     "time off the grid",
			mutate:   func(req *Request) { req.Time = "09:05" },
			expected: ErrTimeOffGrid,
		},
		{
			name:     "before opening",
			mutate:   func(req *Request) { req.Time = "05:52" },
			expected: ErrTimeOffGrid,
		},
		{
			name:     "at closing time",
			mutate:   func(req *Request) { req.Time = "20:00" },
			expected: ErrTimeOffGrid,
		},
		{
			// now = 12:00, слот 09:04 сегодня уже прошел
			name: "past slot today",
			mutate: func(req *Request) {
				req.Date = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
			},
			expected: ErrSlotInPast,
		},
		{
			name:     "too many participants",
			mutate:   func(req *Request) { req.Participants = 5 },
			expected: ErrInvalidInput,
		},
		{
			name:     "zero participants",
			mutate:   func(req *Request) { req.Participants = 0 },
			expected: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}
