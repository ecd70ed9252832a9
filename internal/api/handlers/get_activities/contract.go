package get_activities

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/activities/models"
)

type ActivityService interface {
	List(ctx context.Context) ([]*models.ActivityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
