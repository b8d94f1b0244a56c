package get_enhanced_orders

import (
	"time"

	"github.com/aldnch/GolfTeeService/internal/domain"
	"github.com/aldnch/GolfTeeService/pkg/types"
)

// View раздел объединенного списка заказов
type View string

const (
	// ViewBookings свои бронирования и решенные заявки в обе стороны
	ViewBookings View = "bookings"

	// ViewRequests заявки в обе стороны, еще ожидающие решения
	ViewRequests View = "requests"
)

// Category фильтр по типу элемента списка
type Category string

const (
	CategoryAll              Category = "all"
	CategoryOwnBookings      Category = "own_bookings"
	CategorySentRequests     Category = "sent_requests"
	CategoryReceivedRequests Category = "received_requests"
)

// DefaultPageSize размер страницы объединенного списка
const DefaultPageSize = 10

// Request модель запроса объединенного списка заказов
type Request struct {
	MemberID int64    // ID участника
	View     View     // Раздел списка
	Category Category // Фильтр по статусу
	Page     int      // Номер страницы, с единицы
}

// Order один элемент объединенного списка
type Order struct {
	Type             domain.DisplayType `json:"type"`
	StatusTag        domain.StatusTag   `json:"statusTag"`
	BookingID        int64              `json:"bookingId,omitempty"`
	RequestID        int64              `json:"requestId,omitempty"`
	CourseID         int64              `json:"courseId"`
	TeeID            int64              `json:"teeId"`
	Date             time.Time          `json:"date"`
	Time             types.TimeString   `json:"time"`
	Participants     int                `json:"participants"`
	CounterpartyID   int64              `json:"counterpartyId,omitempty"`
	CounterpartyName string             `json:"counterpartyName,omitempty"`
	Notes            *string            `json:"notes,omitempty"`
	CreatedAt        time.Time          `json:"createdAt"`
}

// Response модель ответа со страницей объединенного списка
type Response struct {
	Orders     []Order `json:"orders"`
	Page       int     `json:"page"`
	PageSize   int     `json:"pageSize"`
	TotalItems int     `json:"totalItems"`
	TotalPages int     `json:"totalPages"`
	HasMore    bool    `json:"hasMore"`
}
