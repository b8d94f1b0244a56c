package reject_join_request

import (
	"context"

	"github.com/aldnch/GolfTeeService/internal/domain"
)

// JoinRequestRepository интерфейс репозитория заявок на присоединение
type JoinRequestRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.JoinRequest, error)
	UpdateStatus(ctx context.Context, id int64, status domain.JoinRequestStatus, notes *string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
