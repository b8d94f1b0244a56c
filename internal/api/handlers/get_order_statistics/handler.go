package get_order_statistics

import (
	"net/http"

	"github.com/aldnch/GolfTeeService/internal/api/handlers"
	"github.com/aldnch/GolfTeeService/internal/api/middleware"
	getStats "github.com/aldnch/GolfTeeService/internal/usecase/get_order_statistics"
)

type Handler struct {
	useCase GetOrderStatisticsUseCase
	logger  Logger
}

func NewHandler(useCase GetOrderStatisticsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/orders/statistics
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	memberID, _ := middleware.MemberIDFrom(r.Context())

	result, err := h.useCase.Execute(r.Context(), &getStats.Request{MemberID: memberID})
	if err != nil {
		h.logger.Error("GET /orders/statistics - failed: member=%d, error=%v", memberID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
