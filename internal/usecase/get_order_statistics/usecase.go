package get_order_statistics

import (
	"context"
	"fmt"

	"github.com/aldnch/GolfTeeService/internal/domain"
	"github.com/aldnch/GolfTeeService/pkg/ptr"
)

// UseCase use case для счетчиков заказов участника
type UseCase struct {
	bookingRepo BookingRepository
	requestRepo JoinRequestRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookings BookingRepository, requests JoinRequestRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookings,
		requestRepo: requests,
		logger:      logger,
	}
}

// Execute выполняет use case подсчета статистики
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetOrderStatistics: member=%d", req.MemberID)

	if req.MemberID <= 0 {
		return nil, fmt.Errorf("%w: memberId must be positive", ErrInvalidInput)
	}

	resp := &Response{}
	var err error

	if resp.TotalBookings, err = uc.bookingRepo.CountByMember(ctx, req.MemberID, nil); err != nil {
		return nil, uc.countErr("total bookings", err)
	}
	if resp.ConfirmedBookings, err = uc.bookingRepo.CountByMember(ctx, req.MemberID, ptr.Ptr(domain.StatusConfirmed)); err != nil {
		return nil, uc.countErr("confirmed bookings", err)
	}
	if resp.CancelledBookings, err = uc.bookingRepo.CountByMember(ctx, req.MemberID, ptr.Ptr(domain.StatusCancelled)); err != nil {
		return nil, uc.countErr("cancelled bookings", err)
	}

	if resp.SentRequests, err = uc.requestRepo.CountSentByMember(ctx, req.MemberID, nil); err != nil {
		return nil, uc.countErr("sent requests", err)
	}
	if resp.SentPendingRequests, err = uc.requestRepo.CountSentByMember(ctx, req.MemberID, ptr.Ptr(domain.RequestPendingApproval)); err != nil {
		return nil, uc.countErr("sent pending requests", err)
	}
	if resp.SentApprovedRequests, err = uc.requestRepo.CountSentByMember(ctx, req.MemberID, ptr.Ptr(domain.RequestApproved)); err != nil {
		return nil, uc.countErr("sent approved requests", err)
	}
	if resp.SentRejectedRequests, err = uc.requestRepo.CountSentByMember(ctx, req.MemberID, ptr.Ptr(domain.RequestRejected)); err != nil {
		return nil, uc.countErr("sent rejected requests", err)
	}

	if resp.ReceivedRequests, err = uc.requestRepo.CountReceivedByOwner(ctx, req.MemberID, nil); err != nil {
		return nil, uc.countErr("received requests", err)
	}
	if resp.ReceivedPendingRequests, err = uc.requestRepo.CountReceivedByOwner(ctx, req.MemberID, ptr.Ptr(domain.RequestPendingApproval)); err != nil {
		return nil, uc.countErr("received pending requests", err)
	}
	if resp.ReceivedApprovedRequests, err = uc.requestRepo.CountReceivedByOwner(ctx, req.MemberID, ptr.Ptr(domain.RequestApproved)); err != nil {
		return nil, uc.countErr("received approved requests", err)
	}
	if resp.ReceivedRejectedRequests, err = uc.requestRepo.CountReceivedByOwner(ctx, req.MemberID, ptr.Ptr(domain.RequestRejected)); err != nil {
		return nil, uc.countErr("received rejected requests", err)
	}

	return resp, nil
}

func (uc *UseCase) countErr(what string, err error) error {
	uc.logger.Error("GetOrderStatistics: failed to count %s: %v", what, err)
	return fmt.Errorf("%w: failed to count %s: %v", ErrInternal, what, err)
}
