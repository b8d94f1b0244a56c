package get_enhanced_orders

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldnch/GolfTeeService/internal/domain"
)

type mockBookingRepo struct {
	getByMemberFn func(ctx context.Context, memberID int64) ([]*domain.Booking, error)
}

func (m *mockBookingRepo) GetByMember(ctx context.Context, memberID int64) ([]*domain.Booking, error) {
	return m.getByMemberFn(ctx, memberID)
}

type mockRequestRepo struct {
	getSentFn     func(ctx context.Context, memberID int64) ([]*domain.JoinRequest, error)
	getReceivedFn func(ctx context.Context, ownerID int64) ([]*domain.JoinRequest, error)
}

func (m *mockRequestRepo) GetSentByMember(ctx context.Context, memberID int64) ([]*domain.JoinRequest, error) {
	return m.getSentFn(ctx, memberID)
}

func (m *mockRequestRepo) GetReceivedByOwner(ctx context.Context, ownerID int64) ([]*domain.JoinRequest, error) {
	return m.getReceivedFn(ctx, ownerID)
}

type mockMemberService struct{}

func (m *mockMemberService) GetMemberName(_ context.Context, memberID int64) string {
	return fmt.Sprintf("Member #%d", memberID)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func at(day, hour int) time.Time {
	return time.Date(2026, 8, day, hour, 0, 0, 0, time.UTC)
}

func fixtureRepos() (*mockBookingRepo, *mockRequestRepo) {
	bookings := &mockBookingRepo{
		getByMemberFn: func(ctx context.Context, memberID int64) ([]*domain.Booking, error) {
			return []*domain.Booking{
				{ID: 1, MemberID: 10, CourseID: 1, TeeID: 2, BookingTime: "09:04",
					Participants: 2, Status: domain.StatusConfirmed, CreatedAt: at(20, 10)},
				{ID: 2, MemberID: 10, CourseID: 1, TeeID: 2, BookingTime: "10:00",
					Participants: 1, Status: domain.StatusCancelled, CreatedAt: at(22, 10)},
			}, nil
		},
	}
	requests := &mockRequestRepo{
		getSentFn: func(ctx context.Context, memberID int64) ([]*domain.JoinRequest, error) {
			return []*domain.JoinRequest{
				{ID: 5, OriginalBookingID: 7, RequesterID: 10, OriginalBookerID: 30,
					Participants: 1, Status: domain.RequestPendingApproval, CreatedAt: at(21, 10)},
				{ID: 6, OriginalBookingID: 8, RequesterID: 10, OriginalBookerID: 40,
					Participants: 1, Status: domain.RequestRejected, CreatedAt: at(23, 10)},
			}, nil
		},
		getReceivedFn: func(ctx context.Context, ownerID int64) ([]*domain.JoinRequest, error) {
			return []*domain.JoinRequest{
				{ID: 9, OriginalBookingID: 1, RequesterID: 50, OriginalBookerID: 10,
					Participants: 2, Status: domain.RequestPendingApproval, CreatedAt: at(24, 10)},
			}, nil
		},
	}
	return bookings, requests
}

func TestExecute_BookingsViewMergesAndSorts(t *testing.T) {
	bookings, requests := fixtureRepos()
	uc := NewUseCase(bookings, requests, &mockMemberService{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		MemberID: 10, View: ViewBookings, Category: CategoryAll, Page: 1,
	})
	require.NoError(t, err)

	// Обе брони и решенная заявка, новые первыми:
	// заявка от 23-го, бронь от 22-го, бронь от 20-го
	require.Len(t, resp.Orders, 3)
	assert.Equal(t, int64(6), resp.Orders[0].RequestID)
	assert.Equal(t, int64(2), resp.Orders[1].BookingID)
	assert.Equal(t, int64(1), resp.Orders[2].BookingID)

	assert.Equal(t, domain.TagRejectedSent, resp.Orders[0].StatusTag)
	assert.Equal(t, domain.TagConfirmed, resp.Orders[2].StatusTag)
	assert.Equal(t, "Member #40", resp.Orders[0].CounterpartyName)
}

func TestExecute_BookingsViewExcludesPendingRequests(t *testing.T) {
	bookings, requests := fixtureRepos()
	uc := NewUseCase(bookings, requests, &mockMemberService{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		MemberID: 10, View: ViewBookings, Category: CategoryAll, Page: 1,
	})
	require.NoError(t, err)

	// Ожидающие заявки живут в разделе requests и сюда не попадают
	for _, o := range resp.Orders {
		assert.NotEqual(t, domain.TagSentRequestPending, o.StatusTag)
		assert.NotEqual(t, domain.TagReceiveRequestPending, o.StatusTag)
	}
}

func TestExecute_RequestsViewPendingBothDirections(t *testing.T) {
	bookings, requests := fixtureRepos()
	uc := NewUseCase(bookings, requests, &mockMemberService{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		MemberID: 10, View: ViewRequests, Category: CategoryAll, Page: 1,
	})
	require.NoError(t, err)

	// Полученная от 24-го и отправленная от 21-го, решенные не входят
	require.Len(t, resp.Orders, 2)

	received := resp.Orders[0]
	assert.Equal(t, domain.DisplayReceivedRequest, received.Type)
	assert.Equal(t, domain.TagReceiveRequestPending, received.StatusTag)
	assert.Equal(t, int64(50), received.CounterpartyID)
	assert.Equal(t, "Member #50", received.CounterpartyName)

	sent := resp.Orders[1]
	assert.Equal(t, domain.DisplaySentRequest, sent.Type)
	assert.Equal(t, domain.TagSentRequestPending, sent.StatusTag)
	assert.Equal(t, int64(5), sent.RequestID)
}

func TestExecute_CategoryFilter(t *testing.T) {
	bookings, requests := fixtureRepos()
	uc := NewUseCase(bookings, requests, &mockMemberService{}, noopLogger{})

	tests := []struct {
		name     string
		view     View
		category Category
		expected int
	}{
		{"bookings own", ViewBookings, CategoryOwnBookings, 2},
		{"bookings sent", ViewBookings, CategorySentRequests, 1},     // отклоненная заявка
		{"bookings received", ViewBookings, CategoryReceivedRequests, 0},
		{"requests sent", ViewRequests, CategorySentRequests, 1},     // ожидающая заявка
		{"requests received", ViewRequests, CategoryReceivedRequests, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Execute(context.Background(), &Request{
				MemberID: 10, View: tt.view, Category: tt.category, Page: 1,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, resp.TotalItems)
		})
	}
}

func TestExecute_Pagination(t *testing.T) {
	bookings := &mockBookingRepo{
		getByMemberFn: func(ctx context.Context, memberID int64) ([]*domain.Booking, error) {
			items := make([]*domain.Booking, 0, 25)
			for i := 0; i < 25; i++ {
				items = append(items, &domain.Booking{
					ID: int64(i + 1), MemberID: 10, CourseID: 1, TeeID: 2,
					Participants: 1, Status: domain.StatusConfirmed,
					CreatedAt: at(1, 0).Add(time.Duration(i) * time.Hour),
				})
			}
			return items, nil
		},
	}
	requests := &mockRequestRepo{
		getSentFn: func(ctx context.Context, memberID int64) ([]*domain.JoinRequest, error) {
			return nil, nil
		},
		getReceivedFn: func(ctx context.Context, ownerID int64) ([]*domain.JoinRequest, error) {
			return nil, nil
		},
	}
	uc := NewUseCase(bookings, requests, &mockMemberService{}, noopLogger{})

	page1, err := uc.Execute(context.Background(), &Request{MemberID: 10, View: ViewBookings, Category: CategoryAll, Page: 1})
	require.NoError(t, err)
	assert.Len(t, page1.Orders, 10)
	assert.Equal(t, 25, page1.TotalItems)
	assert.Equal(t, 3, page1.TotalPages)
	assert.True(t, page1.HasMore)

	page3, err := uc.Execute(context.Background(), &Request{MemberID: 10, View: ViewBookings, Category: CategoryAll, Page: 3})
	require.NoError(t, err)
	assert.Len(t, page3.Orders, 5)
	assert.False(t, page3.HasMore)

	page4, err := uc.Execute(context.Background(), &Request{MemberID: 10, View: ViewBookings, Category: CategoryAll, Page: 4})
	require.NoError(t, err)
	assert.Empty(t, page4.Orders)
}

func TestExecute_Validation(t *testing.T) {
	bookings, requests := fixtureRepos()
	uc := NewUseCase(bookings, requests, &mockMemberService{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{MemberID: 10, View: "other", Page: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{MemberID: 10, View: ViewBookings, Category: "weird", Page: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{MemberID: 10, View: ViewBookings, Category: CategoryAll, Page: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
