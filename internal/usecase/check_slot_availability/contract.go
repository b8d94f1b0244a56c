package check_slot_availability

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
	FindPendingByBookingAndRequester(ctx context.Context, bookingID, requesterID int64) (*domain.JoinRequest, error)
}

// Clock интерфейс часов клуба
type Clock interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
