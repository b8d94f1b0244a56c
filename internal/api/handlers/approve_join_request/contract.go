package approve_join_request

import (
	"context"

	approveRequest "github.com/aldnch/GolfTeeService/internal/usecase/approve_join_request"
)

type ApproveJoinRequestUseCase interface {
	Execute(ctx context.Context, req *approveRequest.Request) (*approveRequest.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
