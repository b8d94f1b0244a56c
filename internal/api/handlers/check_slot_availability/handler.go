package check_slot_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/aldnch/GolfTeeService/internal/api/handlers"
	"github.com/aldnch/GolfTeeService/internal/api/middleware"
	"github.com/aldnch/GolfTeeService/internal/domain"
	checkSlot "github.com/aldnch/GolfTeeService/internal/usecase/check_slot_availability"
	"github.com/aldnch/GolfTeeService/pkg/types"
)

const (
	msgInvalidCourseID = "invalid course id"
	msgInvalidTeeID    = "invalid tee id"
	msgInvalidDate     = "invalid date, expected YYYY-MM-DD"
	msgInvalidTime     = "invalid time, expected HH:MM"
	msgSlotInPast      = "slot is in the past"
	msgInvalidInput    = "invalid request parameters"
)

type Handler struct {
	useCase CheckSlotAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckSlotAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/courses/{courseId}/tees/{teeId}/slots/availability?date=YYYY-MM-DD&time=HH:MM&participants=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	memberID, _ := middleware.MemberIDFrom(r.Context())
	vars := mux.Vars(r)
	query := r.URL.Query()

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
	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	slotTime, err := types.NewTimeStringFromString(query.Get("time"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	participants := 1
	if raw := query.Get("participants"); raw != "" {
		participants, err = strconv.Atoi(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &checkSlot.Request{
		MemberID:     memberID,
		CourseID:     courseID,
		TeeID:        teeID,
		Date:         date,
		Time:         slotTime,
		Participants: participants,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkSlot.ErrSlotInPast):
			h.logger.Warn("GET /slots/availability - slot in past: member=%d", memberID)
			handlers.RespondBadRequest(w, msgSlotInPast)

		case errors.Is(err, checkSlot.ErrInvalidInput):
			h.logger.Warn("GET /slots/availability - invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /slots/availability - failed: member=%d, error=%v", memberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
