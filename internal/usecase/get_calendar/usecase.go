package get_calendar

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	activityRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/activity"
	getAvailability "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_availability"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
)

// UseCase use case для получения календаря доступности активности
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

// Execute выполняет use case получения календаря
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCalendar: validation failed: %v", err)
		return nil, err
	}

	from := domain.DateOnly(req.From)
	to := domain.DateOnly(req.To)
	uc.logger.Info("GetCalendar: activity=%s, from=%s, to=%s",
		req.ActivityID, from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	// 2. Проверяем существование активности
	if _, err := uc.activityRepo.GetByID(ctx, req.ActivityID); err != nil {
		if errors.Is(err, activityRepo.ErrActivityNotFound) {
			uc.logger.Warn("GetCalendar: activity id=%s not found", req.ActivityID)
			return nil, ErrActivityNotFound
		}
		uc.logger.Error("GetCalendar: failed to get activity id=%s: %v", req.ActivityID, err)
		return nil, fmt.Errorf("%w: failed to get activity: %v", ErrInternal, err)
	}

	// 3. Загружаем периоды один раз на весь диапазон
	periods, err := uc.periodRepo.List(ctx, domain.PeriodFilter{
		ActivityID: &req.ActivityID,
		From:       &from,
		To:         &to,
	})
	if err != nil {
		uc.logger.Error("GetCalendar: failed to list periods: %v", err)
		return nil, fmt.Errorf("%w: failed to list periods: %v", ErrInternal, err)
	}

	// 4. Разрешаем каждый день диапазона
	days := make([]Day, 0, domain.DaysInRange(from, to))
	openDays := 0
	for date := from; !date.After(to); date = date.AddDate(0, 0, 1) {
		entries := availability.ScheduleForDate(date, req.ActivityID, periods)
		day := Day{
			Date:      date,
			IsOpen:    len(entries) > 0,
			Schedules: getAvailability.FromEntries(entries),
		}
		if day.IsOpen {
			openDays++
		}
		days = append(days, day)
	}

	if uc.metrics != nil {
		uc.metrics.RecordAvailability(metrics.ResultCalendar)
	}

	uc.logger.Info("GetCalendar: activity=%s, %d day(s), %d open", req.ActivityID, len(days), openDays)

	return &Response{
		ActivityID: req.ActivityID,
		From:       from,
		To:         to,
		Days:       days,
	}, nil
}
