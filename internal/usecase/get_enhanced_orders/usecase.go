package get_enhanced_orders

import (
	"context"
	"fmt"
	"sort"

	"github.com/aldnch/GolfTeeService/internal/domain"
)

// UseCase use case для объединенного списка заказов участника.
// Свои бронирования, отправленные и полученные заявки сводятся
// в один список с единым сводным статусом на элемент. Раздел
// bookings показывает бронирования и решенные заявки, раздел
// requests - только заявки, ожидающие решения.
type UseCase struct {
	bookingRepo BookingRepository
	requestRepo JoinRequestRepository
	memberSvc   MemberServiceClient
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookings BookingRepository,
	requests JoinRequestRepository,
	memberSvc MemberServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookings,
		requestRepo: requests,
		memberSvc:   memberSvc,
		logger:      logger,
	}
}

// Execute выполняет use case объединенного списка
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetEnhancedOrders: member=%d, view=%s, category=%s, page=%d",
		req.MemberID, req.View, req.Category, req.Page)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetEnhancedOrders: validation failed: %v", err)
		return nil, err
	}

	orders, err := uc.collect(ctx, req)
	if err != nil {
		return nil, err
	}

	// Фильтр по типу элемента
	orders = filterByCategory(orders, req.Category)

	// Новые первыми
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	total := len(orders)
	page := paginate(orders, req.Page)

	uc.logger.Info("GetEnhancedOrders: member=%d, %d items total, page %d has %d",
		req.MemberID, total, req.Page, len(page))

	totalPages := (total + DefaultPageSize - 1) / DefaultPageSize
	return &Response{
		Orders:     page,
		Page:       req.Page,
		PageSize:   DefaultPageSize,
		TotalItems: total,
		TotalPages: totalPages,
		HasMore:    req.Page < totalPages,
	}, nil
}

// collect собирает все три коллекции и применяет раздел. Бронирования
// живут только в bookings, заявка попадает в раздел по своему статусу.
func (uc *UseCase) collect(ctx context.Context, req *Request) ([]Order, error) {
	bookings, err := uc.bookingRepo.GetByMember(ctx, req.MemberID)
	if err != nil {
		uc.logger.Error("GetEnhancedOrders: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	sent, err := uc.requestRepo.GetSentByMember(ctx, req.MemberID)
	if err != nil {
		uc.logger.Error("GetEnhancedOrders: failed to get sent requests: %v", err)
		return nil, fmt.Errorf("%w: failed to get sent requests: %v", ErrInternal, err)
	}

	received, err := uc.requestRepo.GetReceivedByOwner(ctx, req.MemberID)
	if err != nil {
		uc.logger.Error("GetEnhancedOrders: failed to get received requests: %v", err)
		return nil, fmt.Errorf("%w: failed to get received requests: %v", ErrInternal, err)
	}

	orders := make([]Order, 0, len(bookings)+len(sent)+len(received))

	if req.View == ViewBookings {
		for _, b := range bookings {
			orders = append(orders, orderFromBooking(b))
		}
	}
	for _, r := range sent {
		if requestInView(req.View, r) {
			orders = append(orders, uc.orderFromRequest(ctx, domain.DisplaySentRequest, r, r.OriginalBookerID))
		}
	}
	for _, r := range received {
		if requestInView(req.View, r) {
			orders = append(orders, uc.orderFromRequest(ctx, domain.DisplayReceivedRequest, r, r.RequesterID))
		}
	}

	return orders, nil
}

// requestInView решает, в каком разделе живет заявка: ожидающие
// попадают в requests, решенные в bookings
func requestInView(view View, r *domain.JoinRequest) bool {
	if view == ViewRequests {
		return r.IsPending()
	}
	return r.IsResolved()
}

func orderFromBooking(b *domain.Booking) Order {
	return Order{
		Type:         domain.DisplayOwnBooking,
		StatusTag:    domain.Classify(domain.DisplayOwnBooking, string(b.Status)),
		BookingID:    b.ID,
		CourseID:     b.CourseID,
		TeeID:        b.TeeID,
		Date:         b.SlotDate,
		Time:         b.BookingTime,
		Participants: b.Participants,
		CreatedAt:    b.CreatedAt,
	}
}

func (uc *UseCase) orderFromRequest(ctx context.Context, displayType domain.DisplayType, r *domain.JoinRequest, counterpartyID int64) Order {
	return Order{
		Type:             displayType,
		StatusTag:        domain.Classify(displayType, string(r.Status)),
		BookingID:        r.OriginalBookingID,
		RequestID:        r.ID,
		CourseID:         r.CourseID,
		TeeID:            r.TeeID,
		Date:             r.SlotDate,
		Time:             r.BookingTime,
		Participants:     r.Participants,
		CounterpartyID:   counterpartyID,
		CounterpartyName: uc.memberSvc.GetMemberName(ctx, counterpartyID),
		Notes:            r.Notes,
		CreatedAt:        r.CreatedAt,
	}
}

// filterByCategory оставляет элементы запрошенного типа
func filterByCategory(orders []Order, category Category) []Order {
	if category == CategoryAll || category == "" {
		return orders
	}

	filtered := make([]Order, 0, len(orders))
	for _, o := range orders {
		if o.Type == displayTypeOf(category) {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

func displayTypeOf(category Category) domain.DisplayType {
	switch category {
	case CategoryOwnBookings:
		return domain.DisplayOwnBooking
	case CategorySentRequests:
		return domain.DisplaySentRequest
	case CategoryReceivedRequests:
		return domain.DisplayReceivedRequest
	}
	return ""
}

func paginate(orders []Order, page int) []Order {
	start := (page - 1) * DefaultPageSize
	if start >= len(orders) {
		return []Order{}
	}
	end := start + DefaultPageSize
	if end > len(orders) {
		end = len(orders)
	}
	return orders[start:end]
}

func validateRequest(req *Request) error {
	if req.MemberID <= 0 {
		return fmt.Errorf("%w: memberId must be positive", ErrInvalidInput)
	}
	if req.View != ViewBookings && req.View != ViewRequests {
		return fmt.Errorf("%w: view must be %q or %q", ErrInvalidInput, ViewBookings, ViewRequests)
	}
	switch req.Category {
	case CategoryAll, CategoryOwnBookings, CategorySentRequests, CategoryReceivedRequests, "":
	default:
		return fmt.Errorf("%w: unknown category %q", ErrInvalidInput, req.Category)
	}
	if req.Page <= 0 {
		return fmt.Errorf("%w: page must be positive", ErrInvalidInput)
	}
	return nil
}
