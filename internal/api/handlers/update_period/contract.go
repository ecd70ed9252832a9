package update_period

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/periods/models"
)

type PeriodService interface {
	Update(ctx context.Context, id string, draft *models.PeriodDraft) (*models.PeriodResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
