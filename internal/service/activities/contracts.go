package activities

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// ActivityRepository интерфейс репозитория активностей
type ActivityRepository interface {
	Create(ctx context.Context, activity *domain.Activity) (*domain.Activity, error)
	GetByID(ctx context.Context, id string) (*domain.Activity, error)
	List(ctx context.Context) ([]*domain.Activity, error)
	Update(ctx context.Context, activity *domain.Activity) (*domain.Activity, error)
	Delete(ctx context.Context, id string) error
}

// PeriodRepository интерфейс поиска периодов, ссылающихся на активность
type PeriodRepository interface {
	List(ctx context.Context, filter domain.PeriodFilter) ([]*domain.Period, error)
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
