package manage_selections

import (
	"context"

	"github.com/aldnch/GolfTeeService/internal/selection"
	"github.com/aldnch/GolfTeeService/internal/usecase/check_slot_availability"
)

// AvailabilityChecker интерфейс use case проверки доступности слота
type AvailabilityChecker interface {
	Execute(ctx context.Context, req *check_slot_availability.Request) (*check_slot_availability.Response, error)
}

// SelectionStore интерфейс хранилища наборов выборок
type SelectionStore interface {
	Load(ctx context.Context, sessionID string) (*selection.Set, error)
	Save(ctx context.Context, sessionID string, set *selection.Set) error
	Clear(ctx context.Context, sessionID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
