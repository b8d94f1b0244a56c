package submit_selections

import (
	"errors"
	"net/http"

	"github.com/aldnch/GolfTeeService/internal/api/handlers"
	"github.com/aldnch/GolfTeeService/internal/api/middleware"
	submitSelections "github.com/aldnch/GolfTeeService/internal/usecase/submit_selections"
)

const (
	msgMissingSession = "missing X-Session-ID header"
	msgNoSelections   = "no slots selected"
)

type Handler struct {
	useCase SubmitSelectionsUseCase
	logger  Logger
}

func NewHandler(useCase SubmitSelectionsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/selections/submit
// Частичный провал не считается ошибкой: ответ 200 с итогами по каждой
// выборке, клиент показывает сводку. Провал всего набора возвращается
// с кодом ошибки в конверте, итоги по записям остаются в data.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	memberID, _ := middleware.MemberIDFrom(r.Context())
	sessionID, ok := middleware.SessionIDFrom(r.Context())
	if !ok {
		handlers.RespondBadRequest(w, msgMissingSession)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &submitSelections.Request{
		MemberID:  memberID,
		SessionID: sessionID,
	})
	if err != nil {
		switch {
		case errors.Is(err, submitSelections.ErrNoSelections):
			h.logger.Warn("POST /selections/submit - empty set: member=%d", memberID)
			handlers.RespondBadRequest(w, msgNoSelections)

		case errors.Is(err, submitSelections.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgNoSelections)

		default:
			h.logger.Error("POST /selections/submit - failed: member=%d, error=%v", memberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if result.Summary.Failed > 0 && result.Summary.Failed == result.Summary.Total {
		handlers.RespondFailure(w, http.StatusOK, result, result.Summary.Title)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
