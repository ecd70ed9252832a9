package period

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

const (
	periodsTable   = "periods"
	schedulesTable = "period_day_schedules"
)

var periodColumns = []string{
	"id",
	"name",
	"start_date",
	"end_date",
	"activity_ids",
	"is_off_peak",
	"created_at",
	"updated_at",
}

var scheduleColumns = []string{
	"period_id",
	"day_of_week",
	"start_time",
	"end_time",
	"is_active",
	"break_start_time",
	"break_end_time",
}

// Repository репозиторий периодов и их недельных расписаний
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория периодов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет период вместе с расписанием.
// Пишет в две таблицы, поэтому вызывающий код должен передать транзакцию через контекст.
func (r *Repository) Create(ctx context.Context, period *domain.Period) (*domain.Period, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(periodsTable).
		Columns("id", "name", "start_date", "end_date", "activity_ids", "is_off_peak").
		Values(
			period.ID,
			period.Name,
			domain.DateOnly(period.StartDate),
			domain.DateOnly(period.EndDate),
			pq.Array(period.Activities),
			period.IsOffPeak,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	if err := r.insertSchedule(ctx, executor, period.ID, period.Schedule); err != nil {
		return nil, err
	}

	period.CreatedAt = createdAt.Time
	period.UpdatedAt = updatedAt.Time

	return period, nil
}

// GetByID получает период по ID вместе с расписанием
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Period, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(periodColumns...).
		From(periodsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	period, err := scanPeriod(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPeriodNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan period: %w", ErrScanRow, err)
	}

	if err := r.attachSchedules(ctx, executor, []*domain.Period{period}); err != nil {
		return nil, err
	}

	return period, nil
}

// List возвращает периоды, подходящие под фильтр, отсортированные по дате начала.
// Фильтр по датам оставляет периоды, пересекающиеся с [From, To].
func (r *Repository) List(ctx context.Context, filter domain.PeriodFilter) ([]*domain.Period, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(periodColumns...).
		From(periodsTable).
		OrderBy("start_date ASC", "id ASC")

	if filter.ActivityID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Expr("? = ANY(activity_ids)", *filter.ActivityID))
	}
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"end_date": domain.DateOnly(*filter.From)})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"start_date": domain.DateOnly(*filter.To)})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	periods := make([]*domain.Period, 0)
	for rows.Next() {
		period, err := scanPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		periods = append(periods, period)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	if err := r.attachSchedules(ctx, executor, periods); err != nil {
		return nil, err
	}

	return periods, nil
}

// Update полностью заменяет период и его расписание.
// Как и Create, должен вызываться в транзакции.
func (r *Repository) Update(ctx context.Context, period *domain.Period) (*domain.Period, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(periodsTable).
		Set("name", period.Name).
		Set("start_date", domain.DateOnly(period.StartDate)).
		Set("end_date", domain.DateOnly(period.EndDate)).
		Set("activity_ids", pq.Array(period.Activities)).
		Set("is_off_peak", period.IsOffPeak).
		Where(squirrel.Eq{"id": period.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPeriodNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	deleteQuery, deleteArgs, err := psqlbuilder.Delete(schedulesTable).
		Where(squirrel.Eq{"period_id": period.ID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build schedule delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return nil, fmt.Errorf("%w: Update - delete schedule: %w", ErrExecQuery, err)
	}

	if err := r.insertSchedule(ctx, executor, period.ID, period.Schedule); err != nil {
		return nil, err
	}

	period.CreatedAt = createdAt.Time
	period.UpdatedAt = updatedAt.Time

	return period, nil
}

// Delete удаляет период. Расписание удаляется каскадно.
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(periodsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrPeriodNotFound
	}

	return nil
}

// Helper methods

func (r *Repository) insertSchedule(ctx context.Context, executor DBExecutor, periodID string, schedule []domain.DaySchedule) error {
	if len(schedule) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert(schedulesTable).Columns(scheduleColumns...)
	for _, day := range schedule {
		insertBuilder = insertBuilder.Values(
			periodID,
			day.DayOfWeek,
			day.StartTime,
			day.EndTime,
			day.IsActive,
			day.BreakStartTime,
			day.BreakEndTime,
		)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: insertSchedule - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: insertSchedule - execute insert: %w", ErrExecQuery, err)
	}

	return nil
}

// attachSchedules загружает расписания всех периодов одним запросом
func (r *Repository) attachSchedules(ctx context.Context, executor DBExecutor, periods []*domain.Period) error {
	if len(periods) == 0 {
		return nil
	}

	byID := make(map[string]*domain.Period, len(periods))
	ids := make([]string, 0, len(periods))
	for _, p := range periods {
		p.Schedule = make([]domain.DaySchedule, 0, domain.DaysInWeek)
		byID[p.ID] = p
		ids = append(ids, p.ID)
	}

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From(schedulesTable).
		Where(squirrel.Eq{"period_id": ids}).
		OrderBy("period_id ASC", "day_of_week ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: attachSchedules - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: attachSchedules - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var periodID string
		var day domain.DaySchedule

		err := rows.Scan(
			&periodID,
			&day.DayOfWeek,
			&day.StartTime,
			&day.EndTime,
			&day.IsActive,
			&day.BreakStartTime,
			&day.BreakEndTime,
		)
		if err != nil {
			return fmt.Errorf("%w: attachSchedules - scan row: %w", ErrScanRow, err)
		}

		if p, ok := byID[periodID]; ok {
			p.Schedule = append(p.Schedule, day)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: attachSchedules - rows error: %w", ErrScanRow, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPeriod(row rowScanner) (*domain.Period, error) {
	var period domain.Period
	var startDate, endDate time.Time
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&period.ID,
		&period.Name,
		&startDate,
		&endDate,
		pq.Array(&period.Activities),
		&period.IsOffPeak,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	period.StartDate = domain.DateOnly(startDate)
	period.EndDate = domain.DateOnly(endDate)
	period.CreatedAt = createdAt.Time
	period.UpdatedAt = updatedAt.Time

	return &period, nil
}
