package list_periods

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/periods/models"
)

type PeriodService interface {
	List(ctx context.Context, req *models.ListPeriodsRequest) ([]*models.PeriodResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
