package reject_join_request

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/aldnch/GolfTeeService/internal/api/handlers"
	"github.com/aldnch/GolfTeeService/internal/api/middleware"
	rejectRequest "github.com/aldnch/GolfTeeService/internal/usecase/reject_join_request"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidRequestID   = "invalid request id"
	msgRequestNotFound    = "join request not found"
	msgNotOwner           = "only the booking owner can reject requests"
	msgRequestResolved    = "request is already resolved"
	msgInvalidInput       = "invalid request parameters"
)

// RejectRequest HTTP request model, тело опционально
type RejectRequest struct {
	Reason *string `json:"reason,omitempty"`
}

type Handler struct {
	useCase RejectJoinRequestUseCase
	logger  Logger
}

func NewHandler(useCase RejectJoinRequestUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/join-requests/{requestId}/reject
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	memberID, _ := middleware.MemberIDFrom(r.Context())

	requestID, err := strconv.ParseInt(mux.Vars(r)["requestId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestID)
		return
	}

	var req RejectRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /join-requests/{id}/reject - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &rejectRequest.Request{
		MemberID:  memberID,
		RequestID: requestID,
		Reason:    req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, rejectRequest.ErrRequestNotFound):
			h.logger.Warn("POST /join-requests/%d/reject - not found", requestID)
			handlers.RespondNotFound(w, msgRequestNotFound)

		case errors.Is(err, rejectRequest.ErrNotOwner):
			h.logger.Warn("POST /join-requests/%d/reject - member=%d not owner", requestID, memberID)
			handlers.RespondForbidden(w, msgNotOwner)

		case errors.Is(err, rejectRequest.ErrRequestResolved):
			handlers.RespondConflict(w, msgRequestResolved)

		case errors.Is(err, rejectRequest.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /join-requests/%d/reject - failed: error=%v", requestID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /join-requests/%d/reject - rejected", result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
