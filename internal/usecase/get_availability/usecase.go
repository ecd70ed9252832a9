package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	activityRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/activity"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
)

// UseCase use case для получения доступности активности на дату
type UseCase struct {
	activityRepo ActivityRepository
	periodRepo   PeriodRepository
	metrics      MetricsRecorder
	logger       Logger
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil.
func NewUseCase(
	activityRepo ActivityRepository,
	periodRepo PeriodRepository,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		activityRepo: activityRepo,
		periodRepo:   periodRepo,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute выполняет use case получения доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	date := domain.DateOnly(req.Date)
	uc.logger.Info("GetAvailability: activity=%s, date=%s", req.ActivityID, date.Format(domain.DateFormat))

	// 2. Проверяем существование активности
	if _, err := uc.activityRepo.GetByID(ctx, req.ActivityID); err != nil {
		if errors.Is(err, activityRepo.ErrActivityNotFound) {
			uc.logger.Warn("GetAvailability: activity id=%s not found", req.ActivityID)
			return nil, ErrActivityNotFound
		}
		uc.logger.Error("GetAvailability: failed to get activity id=%s: %v", req.ActivityID, err)
		return nil, fmt.Errorf("%w: failed to get activity: %v", ErrInternal, err)
	}

	// 3. Загружаем периоды, пересекающие дату
	periods, err := uc.periodRepo.List(ctx, domain.PeriodFilter{
		ActivityID: &req.ActivityID,
		From:       &date,
		To:         &date,
	})
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list periods: %v", err)
		return nil, fmt.Errorf("%w: failed to list periods: %v", ErrInternal, err)
	}

	// 4. Разрешаем расписание дня
	entries := availability.ScheduleForDate(date, req.ActivityID, periods)

	response := &Response{
		Date:       date,
		ActivityID: req.ActivityID,
		Schedules:  FromEntries(entries),
	}

	// 5. Если передано время, проверяем открытость в этот момент
	if req.Time != nil {
		isOpen := availability.IsOpenAt(date, *req.Time, req.ActivityID, periods)
		response.IsOpen = &isOpen

		uc.record(resultLabel(isOpen))
		uc.logger.Info("GetAvailability: activity=%s, date=%s, time=%s, open=%t",
			req.ActivityID, date.Format(domain.DateFormat), req.Time.String(), isOpen)
		return response, nil
	}

	uc.record(metrics.ResultSchedule)
	uc.logger.Info("GetAvailability: activity=%s, date=%s, %d covering period(s)",
		req.ActivityID, date.Format(domain.DateFormat), len(entries))

	return response, nil
}

func (uc *UseCase) record(result string) {
	if uc.metrics != nil {
		uc.metrics.RecordAvailability(result)
	}
}

func resultLabel(isOpen bool) string {
	if isOpen {
		return metrics.ResultOpen
	}
	return metrics.ResultClosed
}
