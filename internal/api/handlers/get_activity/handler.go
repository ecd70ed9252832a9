package get_activity

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/activities"
)

const (
	msgNotFound = "активность не найдена"
)

type Handler struct {
	service ActivityService
	logger  Logger
}

func NewHandler(service ActivityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/activities/{activityId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	activityID := mux.Vars(r)["activityId"]

	result, err := h.service.GetByID(r.Context(), activityID)
	if err != nil {
		switch {
		case errors.Is(err, activities.ErrActivityNotFound):
			h.logger.Warn("GET /activities/{id} - Activity not found: activity_id=%s", activityID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /activities/{id} - Failed to get activity: activity_id=%s, error=%v", activityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /activities/{id} - Activity retrieved successfully: activity_id=%s", activityID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
