package selections

import (
	"context"

	manageSelections "github.com/aldnch/GolfTeeService/internal/usecase/manage_selections"
)

type ManageSelectionsUseCase interface {
	Upsert(ctx context.Context, req *manageSelections.UpsertRequest) (*manageSelections.Response, error)
	Remove(ctx context.Context, req *manageSelections.RemoveRequest) (*manageSelections.Response, error)
	Restore(ctx context.Context, req *manageSelections.RestoreRequest) (*manageSelections.Response, error)
	Clear(ctx context.Context, sessionID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
