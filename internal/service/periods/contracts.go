package periods

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// PeriodRepository интерфейс репозитория периодов
type PeriodRepository interface {
	Create(ctx context.Context, period *domain.Period) (*domain.Period, error)
	GetByID(ctx context.Context, id string) (*domain.Period, error)
	List(ctx context.Context, filter domain.PeriodFilter) ([]*domain.Period, error)
	Update(ctx context.Context, period *domain.Period) (*domain.Period, error)
	Delete(ctx context.Context, id string) error
}

// ActivityRepository интерфейс проверки существования активностей
type ActivityRepository interface {
	ExistingIDs(ctx context.Context, ids []string) ([]string, error)
}

// TxManager выполняет функцию в транзакции, переданной через контекст
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
