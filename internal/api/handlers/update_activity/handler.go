package update_activity

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/activities"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/activities/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные активности"
	msgNotFound           = "активность не найдена"
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

// Handle PATCH /api/v1/activities/{activityId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	activityID := mux.Vars(r)["activityId"]

	var req models.UpdateActivityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /activities/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), activityID, &req)
	if err != nil {
		switch {
		case errors.Is(err, activities.ErrInvalidInput):
			h.logger.Warn("PATCH /activities/{id} - Invalid data: activity_id=%s, error=%v", activityID, err)
			handlers.RespondValidationError(w, msgInvalidData, err)

		case errors.Is(err, activities.ErrActivityNotFound):
			h.logger.Warn("PATCH /activities/{id} - Activity not found: activity_id=%s", activityID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /activities/{id} - Failed to update activity: activity_id=%s, error=%v", activityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /activities/{id} - Activity updated successfully: activity_id=%s", activityID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
