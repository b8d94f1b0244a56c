package get_enhanced_orders

import (
	"context"

	getOrders "github.com/aldnch/GolfTeeService/internal/usecase/get_enhanced_orders"
)

type GetEnhancedOrdersUseCase interface {
	Execute(ctx context.Context, req *getOrders.Request) (*getOrders.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
