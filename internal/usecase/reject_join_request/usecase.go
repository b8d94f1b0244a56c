package reject_join_request

import (
	"context"
	"errors"
	"fmt"

	"github.com/aldnch/GolfTeeService/internal/domain"
	requestRepo "github.com/aldnch/GolfTeeService/internal/infra/storage/joinrequest"
)

// UseCase use case для отклонения заявки на присоединение
type UseCase struct {
	requestRepo JoinRequestRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(requests JoinRequestRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		requestRepo: requests,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case отклонения заявки.
// Отклонение не трогает исходное бронирование, меняется только заявка.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RejectJoinRequest: member=%d, request=%d", req.MemberID, req.RequestID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RejectJoinRequest: validation failed: %v", err)
		return nil, err
	}

	var result *domain.JoinRequest

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		request, err := uc.requestRepo.GetByID(txCtx, req.RequestID)
		if err != nil {
			if errors.Is(err, requestRepo.ErrRequestNotFound) {
				uc.logger.Warn("RejectJoinRequest: request id=%d not found", req.RequestID)
				return ErrRequestNotFound
			}
			uc.logger.Error("RejectJoinRequest: failed to get request id=%d: %v", req.RequestID, err)
			return fmt.Errorf("%w: failed to get request: %v", ErrInternal, err)
		}

		if request.OriginalBookerID != req.MemberID {
			uc.logger.Warn("RejectJoinRequest: member=%d does not own booking id=%d",
				req.MemberID, request.OriginalBookingID)
			return ErrNotOwner
		}
		if request.IsResolved() {
			uc.logger.Warn("RejectJoinRequest: request id=%d already %s", req.RequestID, request.Status)
			return ErrRequestResolved
		}

		if err := uc.requestRepo.UpdateStatus(txCtx, request.ID, domain.RequestRejected, req.Reason); err != nil {
			uc.logger.Error("RejectJoinRequest: failed to update request id=%d: %v", request.ID, err)
			return fmt.Errorf("%w: failed to update request: %v", ErrInternal, err)
		}

		request.Status = domain.RequestRejected
		if req.Reason != nil {
			request.Notes = req.Reason
		}
		result = request
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("RejectJoinRequest: request id=%d rejected", result.ID)

	return &Response{
		ID:                result.ID,
		OriginalBookingID: result.OriginalBookingID,
		RequesterID:       result.RequesterID,
		Status:            string(result.Status),
		Notes:             result.Notes,
		UpdatedAt:         result.UpdatedAt,
	}, nil
}

func validateRequest(req *Request) error {
	if req.MemberID <= 0 {
		return fmt.Errorf("%w: memberId must be positive", ErrInvalidInput)
	}
	if req.RequestID <= 0 {
		return fmt.Errorf("%w: requestId must be positive", ErrInvalidInput)
	}
	if req.Reason != nil && len(*req.Reason) > domain.MaxNotesLength {
		return fmt.Errorf("%w: reason must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	return nil
}
