package get_order_statistics

import (
	"context"

	getStats "github.com/aldnch/GolfTeeService/internal/usecase/get_order_statistics"
)

type GetOrderStatisticsUseCase interface {
	Execute(ctx context.Context, req *getStats.Request) (*getStats.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
