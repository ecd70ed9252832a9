package delete_period

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/periods"
)

const (
	msgNotFound = "период не найден"
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

// Handle DELETE /api/v1/periods/{periodId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	periodID := mux.Vars(r)["periodId"]

	if err := h.service.Delete(r.Context(), periodID); err != nil {
		switch {
		case errors.Is(err, periods.ErrPeriodNotFound):
			h.logger.Warn("DELETE /periods/{id} - Period not found: period_id=%s", periodID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /periods/{id} - Failed to delete period: period_id=%s, error=%v", periodID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /periods/{id} - Period deleted successfully: period_id=%s", periodID)
	handlers.RespondNoContent(w)
}
