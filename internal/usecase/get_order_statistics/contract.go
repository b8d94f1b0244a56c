package get_order_statistics

import (
	"context"

	"github.com/aldnch/GolfTeeService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	CountByMember(ctx context.Context, memberID int64, status *domain.BookingStatus) (int, error)
}

// JoinRequestRepository интерфейс репозитория заявок на присоединение
type JoinRequestRepository interface {
	CountSentByMember(ctx context.Context, memberID int64, status *domain.JoinRequestStatus) (int, error)
	CountReceivedByOwner(ctx context.Context, ownerID int64, status *domain.JoinRequestStatus) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
