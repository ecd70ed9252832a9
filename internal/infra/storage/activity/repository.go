package activity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/psqlbuilder"
)

const activitiesTable = "activities"

// pgUniqueViolation код ошибки Postgres unique_violation
const pgUniqueViolation = "23505"

var activityColumns = []string{"id", "name", "description", "created_at", "updated_at"}

// Repository репозиторий активностей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория активностей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает активность. ID задается вызывающим кодом.
func (r *Repository) Create(ctx context.Context, activity *domain.Activity) (*domain.Activity, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(activitiesTable).
		Columns("id", "name", "description").
		Values(activity.ID, activity.Name, activity.Description).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if isUniqueViolation(err) {
		return nil, ErrDuplicateActivity
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	activity.CreatedAt = createdAt.Time
	activity.UpdatedAt = updatedAt.Time

	return activity, nil
}

// GetByID получает активность по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	query, args, err := psqlbuilder.Select(activityColumns...).
		From(activitiesTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.selectRows(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("GetByID - %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrActivityNotFound
	}

	return rows[0].toDomain(), nil
}

// List возвращает все активности, отсортированные по имени
func (r *Repository) List(ctx context.Context) ([]*domain.Activity, error) {
	query, args, err := psqlbuilder.Select(activityColumns...).
		From(activitiesTable).
		OrderBy("name ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.selectRows(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("List - %w", err)
	}

	activities := make([]*domain.Activity, 0, len(rows))
	for _, row := range rows {
		activities = append(activities, row.toDomain())
	}

	return activities, nil
}

// ExistingIDs возвращает те из ids, для которых есть активность
func (r *Repository) ExistingIDs(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return []string{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id").
		From(activitiesTable).
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ExistingIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ExistingIDs - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	var found []activityIDRow
	if err := sqlx.StructScan(rows, &found); err != nil {
		return nil, fmt.Errorf("%w: ExistingIDs - scan rows: %w", ErrScanRow, err)
	}

	existing := make([]string, 0, len(found))
	for _, row := range found {
		existing = append(existing, row.ID)
	}

	return existing, nil
}

// Update сохраняет имя и описание активности
func (r *Repository) Update(ctx context.Context, activity *domain.Activity) (*domain.Activity, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(activitiesTable).
		Set("name", activity.Name).
		Set("description", activity.Description).
		Where(squirrel.Eq{"id": activity.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrActivityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	activity.CreatedAt = createdAt.Time
	activity.UpdatedAt = updatedAt.Time

	return activity, nil
}

// Delete удаляет активность
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(activitiesTable).
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
		return ErrActivityNotFound
	}

	return nil
}

// Helper methods

func (r *Repository) selectRows(ctx context.Context, query string, args []interface{}) ([]activityRow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	var result []activityRow
	if err := sqlx.StructScan(rows, &result); err != nil {
		return nil, fmt.Errorf("%w: scan rows: %w", ErrScanRow, err)
	}

	return result, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation
}
