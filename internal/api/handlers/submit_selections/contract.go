package submit_selections

import (
	"context"

	submitSelections "github.com/aldnch/GolfTeeService/internal/usecase/submit_selections"
)

type SubmitSelectionsUseCase interface {
	Execute(ctx context.Context, req *submitSelections.Request) (*submitSelections.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
