package reject_join_request

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldnch/GolfTeeService/internal/domain"
	requestRepo "github.com/aldnch/GolfTeeService/internal/infra/storage/joinrequest"
	"github.com/aldnch/GolfTeeService/pkg/ptr"
)

type mockRequestRepo struct {
	getByIDFn      func(ctx context.Context, id int64) (*domain.JoinRequest, error)
	updateStatusFn func(ctx context.Context, id int64, status domain.JoinRequestStatus, notes *string) error
}

func (m *mockRequestRepo) GetByID(ctx context.Context, id int64) (*domain.JoinRequest, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockRequestRepo) UpdateStatus(ctx context.Context, id int64, status domain.JoinRequestStatus, notes *string) error {
	return m.updateStatusFn(ctx, id, status, notes)
}

type mockTxManager struct{}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func pendingRequest() *domain.JoinRequest {
	return &domain.JoinRequest{
		ID:                300,
		OriginalBookingID: 200,
		RequesterID:       10,
		Participants:      1,
		Status:            domain.RequestPendingApproval,
		OriginalBookerID:  20,
	}
}

func TestExecute_RejectsWithReason(t *testing.T) {
	repo := &mockRequestRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.JoinRequest, error) {
			return pendingRequest(), nil
		},
	}

	var gotStatus domain.JoinRequestStatus
	var gotNotes *string
	repo.updateStatusFn = func(ctx context.Context, id int64, status domain.JoinRequestStatus, notes *string) error {
		gotStatus = status
		gotNotes = notes
		return nil
	}

	uc := NewUseCase(repo, &mockTxManager{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		MemberID:  20,
		RequestID: 300,
		Reason:    ptr.Ptr("slot reserved for family"),
	})
	require.NoError(t, err)

	assert.Equal(t, "rejected", resp.Status)
	assert.Equal(t, domain.RequestRejected, gotStatus)
	require.NotNil(t, gotNotes)
	assert.Equal(t, "slot reserved for family", *gotNotes)
}

func TestExecute_Failures(t *testing.T) {
	t.Run("not owner", func(t *testing.T) {
		repo := &mockRequestRepo{
			getByIDFn: func(ctx context.Context, id int64) (*domain.JoinRequest, error) {
				return pendingRequest(), nil
			},
		}
		uc := NewUseCase(repo, &mockTxManager{}, noopLogger{})

		_, err := uc.Execute(context.Background(), &Request{MemberID: 99, RequestID: 300})
		assert.ErrorIs(t, err, ErrNotOwner)
	})

	t.Run("already resolved", func(t *testing.T) {
		repo := &mockRequestRepo{
			getByIDFn: func(ctx context.Context, id int64) (*domain.JoinRequest, error) {
				r := pendingRequest()
				r.Status = domain.RequestRejected
				return r, nil
			},
		}
		uc := NewUseCase(repo, &mockTxManager{}, noopLogger{})

		_, err := uc.Execute(context.Background(), &Request{MemberID: 20, RequestID: 300})
		assert.ErrorIs(t, err, ErrRequestResolved)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &mockRequestRepo{
			getByIDFn: func(ctx context.Context, id int64) (*domain.JoinRequest, error) {
				return nil, requestRepo.ErrRequestNotFound
			},
		}
		uc := NewUseCase(repo, &mockTxManager{}, noopLogger{})

		_, err := uc.Execute(context.Background(), &Request{MemberID: 20, RequestID: 300})
		assert.ErrorIs(t, err, ErrRequestNotFound)
	})

	t.Run("reason too long", func(t *testing.T) {
		repo := &mockRequestRepo{
			getByIDFn: func(ctx context.Context, id int64) (*domain.JoinRequest, error) {
				return pendingRequest(), nil
			},
		}
		uc := NewUseCase(repo, &mockTxManager{}, noopLogger{})

		reason := string(make([]byte, domain.MaxNotesLength+1))
		_, err := uc.Execute(context.Background(), &Request{MemberID: 20, RequestID: 300, Reason: &reason})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
