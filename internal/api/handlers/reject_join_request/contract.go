package reject_join_request

import (
	"context"

	rejectRequest "github.com/aldnch/GolfTeeService/internal/usecase/reject_join_request"
)

type RejectJoinRequestUseCase interface {
	Execute(ctx context.Context, req *rejectRequest.Request) (*rejectRequest.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
