package delete_activity

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/activities"
)

const (
	msgNotFound = "активность не найдена"
	msgInUse    = "активность используется в периодах"
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

// Handle DELETE /api/v1/activities/{activityId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	activityID := mux.Vars(r)["activityId"]

	if err := h.service.Delete(r.Context(), activityID); err != nil {
		switch {
		case errors.Is(err, activities.ErrActivityNotFound):
			h.logger.Warn("DELETE /activities/{id} - Activity not found: activity_id=%s", activityID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, activities.ErrActivityInUse):
			h.logger.Warn("DELETE /activities/{id} - Activity in use: activity_id=%s, error=%v", activityID, err)
			handlers.RespondConflict(w, msgInUse)

		default:
			h.logger.Error("DELETE /activities/{id} - Failed to delete activity: activity_id=%s, error=%v", activityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /activities/{id} - Activity deleted successfully: activity_id=%s", activityID)
	handlers.RespondNoContent(w)
}
