package get_available_slots

import (
	"context"
	"time"

	"github.com/aldnch/GolfTeeService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetWithFilter(ctx context.Context, filter domain.SlotBookingsFilter) ([]*domain.Booking, error)
}

// JoinRequestRepository интерфейс репозитория заявок на присоединение
type JoinRequestRepository interface {
	GetSentByMember(ctx context.Context, memberID int64) ([]*domain.JoinRequest, error)
}

// MemberServiceClient интерфейс клиента сервиса участников
type MemberServiceClient interface {
	GetMemberName(ctx context.Context, memberID int64) string
}

// Clock интерфейс часов клуба (для тестирования и привязки к поясу)
type Clock interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
