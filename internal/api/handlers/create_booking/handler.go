package create_booking

import (
	"errors"
	"net/http"

	"github.com/aldnch/GolfTeeService/internal/api/handlers"
	"github.com/aldnch/GolfTeeService/internal/api/middleware"
	createBooking "github.com/aldnch/GolfTeeService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateOrTime  = "invalid date or time, expected YYYY-MM-DD and HH:MM"
	msgSlotInPast         = "slot is in the past"
	msgDateOutsideWindow  = "date is outside the booking window"
	msgTimeOffGrid        = "time is not on the slot grid"
	msgSlotFull           = "not enough spots left in the slot"
	msgAlreadyBooked      = "you already have a booking in this slot"
	msgInvalidInput       = "invalid request parameters"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	memberID, _ := middleware.MemberIDFrom(r.Context())

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(memberID)
	if err != nil {
		h.logger.Warn("POST /bookings - failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotFull):
			h.logger.Warn("POST /bookings - slot full: member=%d, course=%d", memberID, req.CourseID)
			handlers.RespondConflict(w, msgSlotFull)

		case errors.Is(err, createBooking.ErrAlreadyBooked):
			h.logger.Warn("POST /bookings - already booked: member=%d", memberID)
			handlers.RespondConflict(w, msgAlreadyBooked)

		case errors.Is(err, createBooking.ErrSlotInPast):
			handlers.RespondBadRequest(w, msgSlotInPast)

		case errors.Is(err, createBooking.ErrDateOutsideWindow):
			handlers.RespondBadRequest(w, msgDateOutsideWindow)

		case errors.Is(err, createBooking.ErrTimeOffGrid):
			handlers.RespondBadRequest(w, msgTimeOffGrid)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - failed: member=%d, error=%v", memberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - booking created: id=%d, member=%d", result.ID, memberID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
