package check_slot_availability

import (
	"context"

	checkSlot "github.com/aldnch/GolfTeeService/internal/usecase/check_slot_availability"
)

type CheckSlotAvailabilityUseCase interface {
	Execute(ctx context.Context, req *checkSlot.Request) (*checkSlot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
