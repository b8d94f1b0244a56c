package create_join_request

import (
	"context"

	"github.com/aldnch/GolfTeeService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetWithFilter(ctx context.Context, filter domain.SlotBookingsFilter) ([]*domain.Booking, error)
}

// JoinRequestRepository интерфейс репозитория заявок на присоединение
type JoinRequestRepository interface {
	Create(ctx context.Context, request *domain.JoinRequest) (*domain.JoinRequest, error)
	FindPendingByBookingAndRequester(ctx context.Context, bookingID, requesterID int64) (*domain.JoinRequest, error)
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
