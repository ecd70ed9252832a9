package create_activity

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/activities"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/activities/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные активности"
	msgAlreadyExists      = "активность с таким ID уже существует"
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

// Handle POST /api/v1/activities
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateActivityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /activities - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, activities.ErrInvalidInput):
			h.logger.Warn("POST /activities - Invalid data: %v", err)
			handlers.RespondValidationError(w, msgInvalidData, err)

		case errors.Is(err, activities.ErrActivityAlreadyExists):
			h.logger.Warn("POST /activities - Activity already exists: %v", err)
			handlers.RespondConflict(w, msgAlreadyExists)

		default:
			h.logger.Error("POST /activities - Failed to create activity: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /activities - Activity created successfully: activity_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
