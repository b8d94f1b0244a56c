package get_enhanced_orders

import (
	"context"

	"github.com/aldnch/GolfTeeService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByMember(ctx context.Context, memberID int64) ([]*domain.Booking, error)
}

// JoinRequestRepository интерфейс репозитория заявок на присоединение
type JoinRequestRepository interface {
	GetSentByMember(ctx context.Context, memberID int64) ([]*domain.JoinRequest, error)
	GetReceivedByOwner(ctx context.Context, ownerID int64) ([]*domain.JoinRequest, error)
}

// MemberServiceClient интерфейс клиента сервиса участников
type MemberServiceClient interface {
	GetMemberName(ctx context.Context, memberID int64) string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
