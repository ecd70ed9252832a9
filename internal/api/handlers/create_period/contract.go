package create_period

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/periods/models"
)

type PeriodService interface {
	Create(ctx context.Context, draft *models.PeriodDraft) (*models.PeriodResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
