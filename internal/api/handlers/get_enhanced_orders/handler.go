package get_enhanced_orders

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/aldnch/GolfTeeService/internal/api/handlers"
	"github.com/aldnch/GolfTeeService/internal/api/middleware"
	getOrders "github.com/aldnch/GolfTeeService/internal/usecase/get_enhanced_orders"
)

const (
	msgInvalidInput = "invalid request parameters"
)

type Handler struct {
	useCase GetEnhancedOrdersUseCase
	logger  Logger
}

func NewHandler(useCase GetEnhancedOrdersUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/orders/enhanced?view=bookings&filter=all&page=1
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	memberID, _ := middleware.MemberIDFrom(r.Context())
	query := r.URL.Query()

	view := getOrders.View(query.Get("view"))
	if view == "" {
		view = getOrders.ViewBookings
	}

	category := getOrders.Category(query.Get("filter"))
	if category == "" {
		category = getOrders.CategoryAll
	}

	page := 1
	if raw := query.Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		page = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &getOrders.Request{
		MemberID: memberID,
		View:     view,
		Category: category,
		Page:     page,
	})
	if err != nil {
		switch {
		case errors.Is(err, getOrders.ErrInvalidInput):
			h.logger.Warn("GET /orders/enhanced - invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /orders/enhanced - failed: member=%d, error=%v", memberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
