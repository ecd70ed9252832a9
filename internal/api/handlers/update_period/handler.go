package update_period

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/periods"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/periods/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные периода"
	msgNotFound           = "период не найден"
	msgActivityNotFound   = "активность не найдена"
)

type Handler struct {
	service PeriodService
	logger  Logger
}

func NewHandler(service PeriodService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/periods/{periodId}
// Тело полностью заменяет период, включая расписание
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	periodID := mux.Vars(r)["periodId"]

	var draft models.PeriodDraft
	if err := handlers.DecodeJSON(r, &draft); err != nil {
		h.logger.Warn("PUT /periods/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), periodID, &draft)
	if err != nil {
		switch {
		case errors.Is(err, periods.ErrInvalidInput):
			h.logger.Warn("PUT /periods/{id} - Invalid data: period_id=%s, error=%v", periodID, err)
			handlers.RespondValidationError(w, msgInvalidData, err)

		case errors.Is(err, periods.ErrPeriodNotFound):
			h.logger.Warn("PUT /periods/{id} - Period not found: period_id=%s", periodID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, periods.ErrActivityNotFound):
			h.logger.Warn("PUT /periods/{id} - Unknown activity: period_id=%s, error=%v", periodID, err)
			handlers.RespondNotFound(w, msgActivityNotFound)

		default:
			h.logger.Error("PUT /periods/{id} - Failed to update period: period_id=%s, error=%v", periodID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /periods/{id} - Period updated successfully: period_id=%s", periodID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
