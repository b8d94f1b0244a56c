package selections

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/aldnch/GolfTeeService/internal/api/handlers"
	"github.com/aldnch/GolfTeeService/internal/api/middleware"
	"github.com/aldnch/GolfTeeService/internal/domain"
	checkSlot "github.com/aldnch/GolfTeeService/internal/usecase/check_slot_availability"
	manageSelections "github.com/aldnch/GolfTeeService/internal/usecase/manage_selections"
	"github.com/aldnch/GolfTeeService/pkg/types"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMissingSession     = "missing X-Session-ID header"
	msgInvalidDate        = "invalid date, expected YYYY-MM-DD"
	msgInvalidTime        = "invalid time, expected HH:MM"
	msgSlotUnavailable    = "slot is not available for selection"
	msgSelectionNotFound  = "selection not found"
	msgSlotInPast         = "slot is in the past"
	msgInvalidInput       = "invalid request parameters"
)

type Handler struct {
	useCase ManageSelectionsUseCase
	logger  Logger
}

func NewHandler(useCase ManageSelectionsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleRestore GET /api/v1/selections?courseId=&teeId=&date=
// Возвращает выборки, относящиеся к текущему контексту просмотра.
func (h *Handler) HandleRestore(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.SessionIDFrom(r.Context())
	if !ok {
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}
	query := r.URL.Query()

	courseID, err := strconv.ParseInt(query.Get("courseId"), 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}
	teeID, err := strconv.ParseInt(query.Get("teeId"), 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}
	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Restore(r.Context(), &manageSelections.RestoreRequest{
		SessionID: sessionID,
		CourseID:  courseID,
		TeeID:     teeID,
		Date:      date,
	})
	if err != nil {
		h.handleError(w, "GET /selections", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpsert PUT /api/v1/selections
func (h *Handler) HandleUpsert(w http.ResponseWriter, r *http.Request) {
	memberID, _ := middleware.MemberIDFrom(r.Context())
	sessionID, ok := middleware.SessionIDFrom(r.Context())
	if !ok {
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}

	var req UpsertSelectionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /selections - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	slotTime, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Upsert(r.Context(), &manageSelections.UpsertRequest{
		MemberID:     memberID,
		SessionID:    sessionID,
		CourseID:     req.CourseID,
		TeeID:        req.TeeID,
		Date:         date,
		Time:         slotTime,
		Participants: req.Participants,
	})
	if err != nil {
		h.handleError(w, "PUT /selections", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleRemove DELETE /api/v1/selections
func (h *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.SessionIDFrom(r.Context())
	if !ok {
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}

	var req RemoveSelectionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("DELETE /selections - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	slotTime, err := types.NewTimeStringFromString(req.Time)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Remove(r.Context(), &manageSelections.RemoveRequest{
		SessionID: sessionID,
		TeeID:     req.TeeID,
		Date:      date,
		Time:      slotTime,
	})
	if err != nil {
		h.handleError(w, "DELETE /selections", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleClear DELETE /api/v1/selections/all
func (h *Handler) HandleClear(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.SessionIDFrom(r.Context())
	if !ok {
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}

	if err := h.useCase.Clear(r.Context(), sessionID); err != nil {
		h.handleError(w, "DELETE /selections/all", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"cleared": true})
}

func (h *Handler) handleError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, manageSelections.ErrSlotUnavailable):
		h.logger.Warn("%s - slot unavailable", op)
		handlers.RespondConflict(w, msgSlotUnavailable)

	case errors.Is(err, manageSelections.ErrSelectionNotFound):
		handlers.RespondNotFound(w, msgSelectionNotFound)

	case errors.Is(err, manageSelections.ErrInvalidInput), errors.Is(err, checkSlot.ErrInvalidInput):
		handlers.RespondBadRequest(w, msgInvalidInput)

	// Upsert прогоняет слот через проверку доступности
	case errors.Is(err, checkSlot.ErrSlotInPast):
		handlers.RespondBadRequest(w, msgSlotInPast)

	default:
		h.logger.Error("%s - failed: %v", op, err)
		handlers.RespondInternalError(w)
	}
}
