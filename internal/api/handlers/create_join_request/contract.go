package create_join_request

import (
	"context"

	createRequest "github.com/aldnch/GolfTeeService/internal/usecase/create_join_request"
)

type CreateJoinRequestUseCase interface {
	Execute(ctx context.Context, req *createRequest.Request) (*createRequest.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
