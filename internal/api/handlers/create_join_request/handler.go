package create_join_request

import (
	"errors"
	"net/http"

	"github.com/aldnch/GolfTeeService/internal/api/handlers"
	"github.com/aldnch/GolfTeeService/internal/api/middleware"
	createRequest "github.com/aldnch/GolfTeeService/internal/usecase/create_join_request"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgBookingNotFound    = "booking not found"
	msgBookingInactive    = "booking is not active"
	msgOwnBooking         = "cannot send a join request to your own booking"
	msgSlotFull           = "no spots left in the slot"
	msgInvalidInput       = "invalid request parameters"
)

// JoinRequestRequest HTTP request model
type JoinRequestRequest struct {
	BookingID    int64   `json:"bookingId"`
	Participants int     `json:"participants"`
	Notes        *string `json:"notes,omitempty"`
}

type Handler struct {
	useCase CreateJoinRequestUseCase
	logger  Logger
}

func NewHandler(useCase CreateJoinRequestUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/join-requests
// Повторная отправка на ту же пару (бронирование, участник) вернет
// существующую заявку с alreadyExists=true и статусом 200, а не 201.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	memberID, _ := middleware.MemberIDFrom(r.Context())

	var req JoinRequestRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /join-requests - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &createRequest.Request{
		RequesterID:  memberID,
		BookingID:    req.BookingID,
		Participants: req.Participants,
		Notes:        req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, createRequest.ErrBookingNotFound):
			h.logger.Warn("POST /join-requests - booking=%d not found", req.BookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, createRequest.ErrBookingInactive):
			handlers.RespondConflict(w, msgBookingInactive)

		case errors.Is(err, createRequest.ErrOwnBooking):
			h.logger.Warn("POST /join-requests - member=%d targets own booking=%d", memberID, req.BookingID)
			handlers.RespondBadRequest(w, msgOwnBooking)

		case errors.Is(err, createRequest.ErrSlotFull):
			handlers.RespondConflict(w, msgSlotFull)

		case errors.Is(err, createRequest.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /join-requests - failed: member=%d, error=%v", memberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusCreated
	if result.AlreadyExists {
		status = http.StatusOK
		h.logger.Info("POST /join-requests - existing request id=%d returned", result.ID)
	} else {
		h.logger.Info("POST /join-requests - request created: id=%d, member=%d", result.ID, memberID)
	}
	handlers.RespondJSON(w, status, result)
}
