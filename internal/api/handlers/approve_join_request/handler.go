package approve_join_request

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/aldnch/GolfTeeService/internal/api/handlers"
	"github.com/aldnch/GolfTeeService/internal/api/middleware"
	approveRequest "github.com/aldnch/GolfTeeService/internal/usecase/approve_join_request"
)

const (
	msgInvalidRequestID = "invalid request id"
	msgRequestNotFound  = "join request not found"
	msgNotOwner         = "only the booking owner can approve requests"
	msgRequestResolved  = "request is already resolved"
	msgSlotFull         = "not enough spots left in the slot"
	msgBookingInactive  = "original booking is not active"
)

type Handler struct {
	useCase ApproveJoinRequestUseCase
	logger  Logger
}

func NewHandler(useCase ApproveJoinRequestUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/join-requests/{requestId}/approve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	memberID, _ := middleware.MemberIDFrom(r.Context())

	requestID, err := strconv.ParseInt(mux.Vars(r)["requestId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &approveRequest.Request{
		MemberID:  memberID,
		RequestID: requestID,
	})
	if err != nil {
		switch {
		case errors.Is(err, approveRequest.ErrRequestNotFound):
			h.logger.Warn("POST /join-requests/%d/approve - not found", requestID)
			handlers.RespondNotFound(w, msgRequestNotFound)

		case errors.Is(err, approveRequest.ErrNotOwner):
			h.logger.Warn("POST /join-requests/%d/approve - member=%d not owner", requestID, memberID)
			handlers.RespondForbidden(w, msgNotOwner)

		case errors.Is(err, approveRequest.ErrRequestResolved):
			handlers.RespondConflict(w, msgRequestResolved)

		case errors.Is(err, approveRequest.ErrSlotFull):
			h.logger.Warn("POST /join-requests/%d/approve - slot full", requestID)
			handlers.RespondConflict(w, msgSlotFull)

		case errors.Is(err, approveRequest.ErrBookingInactive):
			handlers.RespondConflict(w, msgBookingInactive)

		case errors.Is(err, approveRequest.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestID)

		default:
			h.logger.Error("POST /join-requests/%d/approve - failed: error=%v", requestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /join-requests/%d/approve - approved, booking=%d now has %d participants",
		result.ID, result.OriginalBookingID, result.BookingParticipants)
	handlers.RespondJSON(w, http.StatusOK, result)
}
