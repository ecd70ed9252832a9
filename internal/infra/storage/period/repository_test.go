package period

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

func setupPeriodMock(t *testing.T) (*Repository, *dbmetrics.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	wrapped := dbmetrics.Wrap(db, nil)
	return NewRepository(wrapped), wrapped, mock
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func samplePeriod() *domain.Period {
	return &domain.Period{
		ID:         "P1",
		Name:       "Spring",
		StartDate:  date(2025, time.February, 1),
		EndDate:    date(2025, time.May, 31),
		Activities: []string{"kayak"},
		Schedule: []domain.DaySchedule{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "18:00", IsActive: true},
		},
	}
}

func periodRows() *sqlmock.Rows {
	return sqlmock.NewRows(periodColumns)
}

func scheduleRows() *sqlmock.Rows {
	return sqlmock.NewRows(scheduleColumns)
}

func TestRepository_Create(t *testing.T) {
	repo, _, mock := setupPeriodMock(t)
	now := time.Now()
	period := samplePeriod()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO periods (id,name,start_date,end_date,activity_ids,is_off_peak) VALUES ($1,$2,$3,$4,$5,$6) RETURNING created_at, updated_at")).
		WithArgs("P1", "Spring", date(2025, time.February, 1), date(2025, time.May, 31), pq.Array([]string{"kayak"}), false).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO period_day_schedules")).
		WithArgs("P1", 1, types.TimeString("09:00"), types.TimeString("18:00"), true, nil, nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.Create(context.Background(), period)
	require.NoError(t, err)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_ScheduleInsertFails(t *testing.T) {
	repo, _, mock := setupPeriodMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO periods")).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO period_day_schedules")).
		WillReturnError(errors.New("check constraint violated"))

	_, err := repo.Create(context.Background(), samplePeriod())
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_UsesTransactionFromContext(t *testing.T) {
	repo, db, mock := setupPeriodMock(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO periods")).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO period_day_schedules")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	_, err = repo.Create(dbmetrics.WithTx(context.Background(), tx), samplePeriod())
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	repo, _, mock := setupPeriodMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, start_date, end_date, activity_ids, is_off_peak, created_at, updated_at FROM periods WHERE id = $1")).
		WithArgs("P1").
		WillReturnRows(periodRows().AddRow("P1", "Spring", date(2025, 2, 1), date(2025, 5, 31), "{kayak,paddle}", true, now, now))
	mock.ExpectQuery(regexp.QuoteMeta("FROM period_day_schedules WHERE period_id IN ($1) ORDER BY period_id ASC, day_of_week ASC")).
		WithArgs("P1").
		WillReturnRows(scheduleRows().
			AddRow("P1", 1, "09:00:00", "18:00:00", true, "12:00:00", "13:00:00").
			AddRow("P1", 7, nil, nil, false, nil, nil))

	period, err := repo.GetByID(context.Background(), "P1")
	require.NoError(t, err)

	assert.Equal(t, "Spring", period.Name)
	assert.Equal(t, []string{"kayak", "paddle"}, period.Activities)
	assert.True(t, period.IsOffPeak)
	assert.Equal(t, date(2025, 2, 1), period.StartDate)
	require.Len(t, period.Schedule, 2)
	assert.Equal(t, domain.DaySchedule{
		DayOfWeek:      1,
		StartTime:      "09:00",
		EndTime:        "18:00",
		IsActive:       true,
		BreakStartTime: ptr.Ptr(types.TimeString("12:00")),
		BreakEndTime:   ptr.Ptr(types.TimeString("13:00")),
	}, period.Schedule[0])
	assert.Equal(t, domain.DaySchedule{DayOfWeek: 7}, period.Schedule[1])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, _, mock := setupPeriodMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM periods WHERE id = $1")).
		WithArgs("missing").
		WillReturnRows(periodRows())

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrPeriodNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_QueryError(t *testing.T) {
	repo, _, mock := setupPeriodMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM periods WHERE id = $1")).
		WillReturnError(sql.ErrConnDone)

	_, err := repo.GetByID(context.Background(), "P1")
	assert.ErrorIs(t, err, ErrScanRow)
	assert.NotErrorIs(t, err, ErrPeriodNotFound)
}

func TestRepository_List_WithFilter(t *testing.T) {
	repo, _, mock := setupPeriodMock(t)
	now := time.Now()
	from, to := date(2025, 3, 1), date(2025, 3, 31)

	mock.ExpectQuery(regexp.QuoteMeta("FROM periods WHERE $1 = ANY(activity_ids) AND end_date >= $2 AND start_date <= $3 ORDER BY start_date ASC, id ASC")).
		WithArgs("kayak", from, to).
		WillReturnRows(periodRows().
			AddRow("P1", "Spring", date(2025, 2, 1), date(2025, 5, 31), "{kayak}", false, now, now).
			AddRow("P2", "March", date(2025, 3, 1), date(2025, 4, 30), "{kayak}", false, now, now))
	mock.ExpectQuery(regexp.QuoteMeta("FROM period_day_schedules WHERE period_id IN ($1,$2)")).
		WithArgs("P1", "P2").
		WillReturnRows(scheduleRows().
			AddRow("P1", 1, "09:00:00", "12:00:00", true, nil, nil).
			AddRow("P2", 1, "13:00:00", "18:00:00", true, nil, nil).
			AddRow("P2", 2, "13:00:00", "18:00:00", true, nil, nil))

	periods, err := repo.List(context.Background(), domain.PeriodFilter{
		ActivityID: ptr.Ptr("kayak"),
		From:       &from,
		To:         &to,
	})
	require.NoError(t, err)

	require.Len(t, periods, 2)
	assert.Equal(t, "P1", periods[0].ID)
	assert.Len(t, periods[0].Schedule, 1)
	assert.Equal(t, "P2", periods[1].ID)
	assert.Len(t, periods[1].Schedule, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List_Empty(t *testing.T) {
	repo, _, mock := setupPeriodMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, start_date, end_date, activity_ids, is_off_peak, created_at, updated_at FROM periods ORDER BY start_date ASC, id ASC")).
		WillReturnRows(periodRows())

	periods, err := repo.List(context.Background(), domain.PeriodFilter{})
	require.NoError(t, err)
	assert.NotNil(t, periods)
	assert.Empty(t, periods)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	repo, _, mock := setupPeriodMock(t)
	created := time.Now().Add(-time.Hour)
	updated := time.Now()
	period := samplePeriod()
	period.Name = "Spring 2"

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE periods SET name = $1, start_date = $2, end_date = $3, activity_ids = $4, is_off_peak = $5 WHERE id = $6 RETURNING created_at, updated_at")).
		WithArgs("Spring 2", date(2025, 2, 1), date(2025, 5, 31), pq.Array([]string{"kayak"}), false, "P1").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(created, updated))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM period_day_schedules WHERE period_id = $1")).
		WithArgs("P1").
		WillReturnResult(sqlmock.NewResult(0, 7))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO period_day_schedules")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	result, err := repo.Update(context.Background(), period)
	require.NoError(t, err)
	assert.Equal(t, created, result.CreatedAt)
	assert.Equal(t, updated, result.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update_NotFound(t *testing.T) {
	repo, _, mock := setupPeriodMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE periods")).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}))

	_, err := repo.Update(context.Background(), samplePeriod())
	assert.ErrorIs(t, err, ErrPeriodNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	repo, _, mock := setupPeriodMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM periods WHERE id = $1")).
		WithArgs("P1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM periods WHERE id = $1")).
		WithArgs("P1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), "P1"))
	assert.ErrorIs(t, repo.Delete(context.Background(), "P1"), ErrPeriodNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
