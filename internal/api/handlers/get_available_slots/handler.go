package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/aldnch/GolfTeeService/internal/api/handlers"
	"github.com/aldnch/GolfTeeService/internal/api/middleware"
	"github.com/aldnch/GolfTeeService/internal/domain"
	getSlots "github.com/aldnch/GolfTeeService/internal/usecase/get_available_slots"
)

const (
	msgInvalidCourseID  = "invalid course id"
	msgInvalidTeeID     = "invalid tee id"
	msgInvalidDate      = "invalid date, expected YYYY-MM-DD"
	msgDateInPast       = "date is in the past"
	msgDateOutsideRange = "date is outside the booking window"
	msgInvalidInput     = "invalid request parameters"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/courses/{courseId}/tees/{teeId}/slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	memberID, _ := middleware.MemberIDFrom(r.Context())
	vars := mux.Vars(r)

	courseID, err := strconv.ParseInt(vars["courseId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCourseID)
		return
	}
	teeID, err := strconv.ParseInt(vars["teeId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTeeID)
		return
	}
	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getSlots.Request{
		MemberID: memberID,
		CourseID: courseID,
		TeeID:    teeID,
		Date:     date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getSlots.ErrDateInPast):
			h.logger.Warn("GET /slots - date in past: member=%d, course=%d", memberID, courseID)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getSlots.ErrDateOutsideWindow):
			h.logger.Warn("GET /slots - date outside window: member=%d, course=%d", memberID, courseID)
			handlers.RespondBadRequest(w, msgDateOutsideRange)

		case errors.Is(err, getSlots.ErrInvalidInput):
			h.logger.Warn("GET /slots - invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /slots - failed: member=%d, course=%d, tee=%d, error=%v",
				memberID, courseID, teeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
