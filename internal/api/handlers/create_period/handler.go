package create_period

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/periods"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/periods/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные периода"
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

// Handle POST /api/v1/periods
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var draft models.PeriodDraft
	if err := handlers.DecodeJSON(r, &draft); err != nil {
		h.logger.Warn("POST /periods - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &draft)
	if err != nil {
		switch {
		case errors.Is(err, periods.ErrInvalidInput):
			h.logger.Warn("POST /periods - Invalid data: %v", err)
			handlers.RespondValidationError(w, msgInvalidData, err)

		case errors.Is(err, periods.ErrActivityNotFound):
			h.logger.Warn("POST /periods - Unknown activity: %v", err)
			handlers.RespondNotFound(w, msgActivityNotFound)

		default:
			h.logger.Error("POST /periods - Failed to create period: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /periods - Period created successfully: period_id=%s, activities=%v", result.ID, result.Activities)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
