package get_calendar

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getCalendar "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_calendar"
)

const (
	msgMissingRange     = "параметры from и to обязательны"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange     = "дата to не может быть раньше from"
	msgActivityNotFound = "активность не найдена"
)

var msgRangeTooLarge = fmt.Sprintf("диапазон не может быть длиннее %d дней", domain.MaxCalendarDays)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/activities/{activityId}/calendar
// Query params: from, to (required, YYYY-MM-DD, включительно)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	activityID := mux.Vars(r)["activityId"]

	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")
	if fromStr == "" || toStr == "" {
		h.logger.Warn("GET /activities/{id}/calendar - Missing range")
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	useCaseReq, err := ToUseCaseRequest(activityID, fromStr, toStr)
	if err != nil {
		h.logger.Warn("GET /activities/{id}/calendar - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrRangeTooLarge):
			h.logger.Warn("GET /activities/{id}/calendar - Range too large: activity_id=%s, from=%s, to=%s",
				activityID, fromStr, toStr)
			handlers.RespondBadRequest(w, msgRangeTooLarge)

		case errors.Is(err, getCalendar.ErrInvalidInput):
			h.logger.Warn("GET /activities/{id}/calendar - Invalid input: activity_id=%s, error=%v", activityID, err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, getCalendar.ErrActivityNotFound):
			h.logger.Warn("GET /activities/{id}/calendar - Activity not found: activity_id=%s", activityID)
			handlers.RespondNotFound(w, msgActivityNotFound)

		default:
			h.logger.Error("GET /activities/{id}/calendar - Failed to build calendar: activity_id=%s, error=%v",
				activityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /activities/{id}/calendar - Calendar built: activity_id=%s, days=%d", activityID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
