package add_participants

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/aldnch/GolfTeeService/internal/api/handlers"
	"github.com/aldnch/GolfTeeService/internal/api/middleware"
	addParticipants "github.com/aldnch/GolfTeeService/internal/usecase/add_participants"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidBookingID   = "invalid booking id"
	msgBookingNotFound    = "booking not found"
	msgNotOwner           = "only the booking owner can add participants"
	msgBookingInactive    = "booking is not active"
	msgSlotFull           = "not enough spots left in the slot"
	msgInvalidInput       = "invalid request parameters"
)

// AddParticipantsRequest HTTP request model
type AddParticipantsRequest struct {
	Participants int `json:"participants"`
}

type Handler struct {
	useCase AddParticipantsUseCase
	logger  Logger
}

func NewHandler(useCase AddParticipantsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/participants
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	memberID, _ := middleware.MemberIDFrom(r.Context())

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req AddParticipantsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/participants - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &addParticipants.Request{
		MemberID:  memberID,
		BookingID: bookingID,
		Extra:     req.Participants,
	})
	if err != nil {
		switch {
		case errors.Is(err, addParticipants.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/%d/participants - not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, addParticipants.ErrNotOwner):
			h.logger.Warn("POST /bookings/%d/participants - member=%d not owner", bookingID, memberID)
			handlers.RespondForbidden(w, msgNotOwner)

		case errors.Is(err, addParticipants.ErrBookingInactive):
			handlers.RespondConflict(w, msgBookingInactive)

		case errors.Is(err, addParticipants.ErrSlotFull):
			h.logger.Warn("POST /bookings/%d/participants - slot full", bookingID)
			handlers.RespondConflict(w, msgSlotFull)

		case errors.Is(err, addParticipants.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings/%d/participants - failed: error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/%d/participants - now %d participants", result.ID, result.Participants)
	handlers.RespondJSON(w, http.StatusOK, result)
}
