package get_availability

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// ActivityRepository интерфейс репозитория активностей
type ActivityRepository interface {
	// GetByID получает активность по ID
	GetByID(ctx context.Context, id string) (*domain.Activity, error)
}

// PeriodRepository интерфейс репозитория периодов
type PeriodRepository interface {
	// List получает периоды по фильтру (активность и пересечение с диапазоном дат)
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
