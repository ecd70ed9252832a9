package activity

import (
	"database/sql"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// activityRow строка таблицы activities
type activityRow struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	CreatedAt   sql.NullTime   `db:"created_at"`
	UpdatedAt   sql.NullTime   `db:"updated_at"`
}

// activityIDRow проекция только на id
type activityIDRow struct {
	ID string `db:"id"`
}

func (r activityRow) toDomain() *domain.Activity {
	a := &domain.Activity{
		ID:        r.ID,
		Name:      r.Name,
		CreatedAt: r.CreatedAt.Time,
		UpdatedAt: r.UpdatedAt.Time,
	}
	if r.Description.Valid {
		description := r.Description.String
		a.Description = &description
	}
	return a
}
