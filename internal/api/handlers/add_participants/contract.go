package add_participants

import (
	"context"

	addParticipants "github.com/aldnch/GolfTeeService/internal/usecase/add_participants"
)

type AddParticipantsUseCase interface {
	Execute(ctx context.Context, req *addParticipants.Request) (*addParticipants.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
