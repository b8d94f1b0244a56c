package submit_selections

import (
	"context"

	"github.com/aldnch/GolfTeeService/internal/selection"
	"github.com/aldnch/GolfTeeService/internal/usecase/add_participants"
	"github.com/aldnch/GolfTeeService/internal/usecase/create_booking"
	"github.com/aldnch/GolfTeeService/internal/usecase/create_join_request"
)

// BookingCreator интерфейс use case создания бронирования
type BookingCreator interface {
	Execute(ctx context.Context, req *create_booking.Request) (*create_booking.Response, error)
}

// ParticipantAdder интерфейс use case добавления участников
type ParticipantAdder interface {
	Execute(ctx context.Context, req *add_participants.Request) (*add_participants.Response, error)
}

// JoinRequester интерфейс use case создания заявки на присоединение
type JoinRequester interface {
	Execute(ctx context.Context, req *create_join_request.Request) (*create_join_request.Response, error)
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
