package get_calendar

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// ActivityRepository интерфейс репозитория активностей
type ActivityRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Activity, error)
}

// PeriodRepository интерфейс репозитория периодов
type PeriodRepository interface {
	List(ctx context.Context, filter domain.PeriodFilter) ([]*domain.Period, error)
}

// MetricsRecorder учитывает результаты разрешения доступности
type MetricsRecorder interface {
	RecordAvailability(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
