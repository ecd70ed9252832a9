package get_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	getAvailability "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_availability"
)

const (
	msgMissingDate      = "дата обязательна"
	msgInvalidParams    = "некорректный формат, ожидается date=YYYY-MM-DD и time=HH:MM"
	msgInvalidInput     = "некорректные параметры запроса"
	msgActivityNotFound = "активность не найдена"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/activities/{activityId}/availability
// Query params: date (required, YYYY-MM-DD), time (optional, HH:MM)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	activityID := mux.Vars(r)["activityId"]

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /activities/{id}/availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(activityID, dateStr, r.URL.Query().Get("time"))
	if err != nil {
		h.logger.Warn("GET /activities/{id}/availability - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /activities/{id}/availability - Invalid input: activity_id=%s, error=%v", activityID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getAvailability.ErrActivityNotFound):
			h.logger.Warn("GET /activities/{id}/availability - Activity not found: activity_id=%s", activityID)
			handlers.RespondNotFound(w, msgActivityNotFound)

		default:
			h.logger.Error("GET /activities/{id}/availability - Failed to resolve availability: activity_id=%s, error=%v",
				activityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /activities/{id}/availability - Availability resolved: activity_id=%s, date=%s, periods=%d",
		activityID, dateStr, len(result.Schedules))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
