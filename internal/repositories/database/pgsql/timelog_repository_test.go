package pgsql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jairjanssen9-web/levant---clock-in/internal/apperrors"
	"github.com/jairjanssen9-web/levant---clock-in/internal/core/domain"
	portsrepo "github.com/jairjanssen9-web/levant---clock-in/internal/core/ports/repositories"
)

var timeLogRowColumns = []string{
	"log_id", "employee_id", "log_date", "clock_in", "clock_out",
	"status", "flagged", "created_at", "created_by", "last_updated_at", "last_updated_by",
}

func newTestTimeLog(now time.Time) domain.TimeLog {
	return domain.TimeLog{
		LogID:      "log-1",
		EmployeeID: "emp-1",
		LogDate:    domain.DateOf(now),
		ClockIn:    now,
		Status:     domain.TimeLogActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "emp-1",
			LastUpdatedAt: now,
			LastUpdatedBy: "emp-1",
		},
	}
}

func TestTranslateTimeLogPgError(t *testing.T) {
	activeErr := &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: activeSessionIndexName}
	assert.ErrorIs(t, translateTimeLogPgError(activeErr), apperrors.ErrActiveSessionExists)

	dupErr := &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "time_logs_pkey"}
	assert.ErrorIs(t, translateTimeLogPgError(dupErr), apperrors.ErrDuplicate)

	fkErr := &pgconn.PgError{Code: foreignKeyViolationCode}
	assert.ErrorIs(t, translateTimeLogPgError(fkErr), apperrors.ErrNotFound)

	plainErr := errors.New("connection reset")
	assert.Equal(t, plainErr, translateTimeLogPgError(plainErr))
}

func TestSaveTimeLog_Success(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &PgxTimeLogRepository{BaseRepository: BaseRepository{DB: mock}}
	log := newTestTimeLog(time.Now().UTC())

	mock.ExpectExec("INSERT INTO time_logs").
		WithArgs(log.LogID, log.EmployeeID, pgtype.Date{Time: log.LogDate, Valid: true}, log.ClockIn, log.ClockOut,
			string(log.Status), log.Flagged, log.CreatedAt, log.CreatedBy, log.LastUpdatedAt, log.LastUpdatedBy).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.SaveTimeLog(context.Background(), log)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveTimeLog_ActiveConflict(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &PgxTimeLogRepository{BaseRepository: BaseRepository{DB: mock}}
	log := newTestTimeLog(time.Now().UTC())

	mock.ExpectExec("INSERT INTO time_logs").
		WithArgs(log.LogID, log.EmployeeID, pgtype.Date{Time: log.LogDate, Valid: true}, log.ClockIn, log.ClockOut,
			string(log.Status), log.Flagged, log.CreatedAt, log.CreatedBy, log.LastUpdatedAt, log.LastUpdatedBy).
		WillReturnError(&pgconn.PgError{Code: uniqueViolationCode, ConstraintName: activeSessionIndexName})

	err = repo.SaveTimeLog(context.Background(), log)
	assert.ErrorIs(t, err, apperrors.ErrActiveSessionExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveTimeLog_UnknownEmployee(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &PgxTimeLogRepository{BaseRepository: BaseRepository{DB: mock}}
	log := newTestTimeLog(time.Now().UTC())
	log.EmployeeID = "no-such-employee"

	mock.ExpectExec("INSERT INTO time_logs").
		WithArgs(log.LogID, log.EmployeeID, pgtype.Date{Time: log.LogDate, Valid: true}, log.ClockIn, log.ClockOut,
			string(log.Status), log.Flagged, log.CreatedAt, log.CreatedBy, log.LastUpdatedAt, log.LastUpdatedBy).
		WillReturnError(&pgconn.PgError{Code: foreignKeyViolationCode})

	err = repo.SaveTimeLog(context.Background(), log)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteTimeLog_NotActive(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &PgxTimeLogRepository{BaseRepository: BaseRepository{DB: mock}}
	now := time.Now().UTC()

	mock.ExpectExec("UPDATE time_logs").
		WithArgs(now, string(domain.TimeLogCompleted), now, "emp-1", "log-1", string(domain.TimeLogActive)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.CompleteTimeLog(context.Background(), "log-1", now, now, "emp-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindActiveTimeLogByEmployee_Found(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &PgxTimeLogRepository{BaseRepository: BaseRepository{DB: mock}}
	now := time.Now().UTC()
	in := now.Add(-2 * time.Hour)

	rows := pgxmock.NewRows(timeLogRowColumns).
		AddRow("log-1", "emp-1", domain.DateOf(now), in, (*time.Time)(nil),
			string(domain.TimeLogActive), false, in, "emp-1", in, "emp-1")

	mock.ExpectQuery("SELECT .+ FROM time_logs WHERE employee_id").
		WithArgs("emp-1", string(domain.TimeLogActive)).
		WillReturnRows(rows)

	// A corrected-but-still-open session returns with its edit trail.
	editRows := pgxmock.NewRows([]string{
		"edit_id", "log_id", "seq", "edited_at", "previous_in", "previous_out", "reason", "admin_id", "admin_name",
	}).
		AddRow("edit-1", "log-1", int64(1), now, now.Add(-3*time.Hour), (*time.Time)(nil), "started earlier", "admin-1", "Dana")
	mock.ExpectQuery("FROM time_log_edits").
		WithArgs([]string{"log-1"}).
		WillReturnRows(editRows)

	log, err := repo.FindActiveTimeLogByEmployee(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, "log-1", log.LogID)
	assert.Equal(t, domain.TimeLogActive, log.Status)
	assert.Nil(t, log.ClockOut)
	require.Len(t, log.Edits, 1)
	assert.Equal(t, "started earlier", log.Edits[0].Reason)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindTimeLogByID_WithEdits(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &PgxTimeLogRepository{BaseRepository: BaseRepository{DB: mock}}
	now := time.Now().UTC()
	firstIn := now.Add(-8 * time.Hour)
	secondIn := now.Add(-7 * time.Hour)
	out := now.Add(-time.Hour)

	logRows := pgxmock.NewRows(timeLogRowColumns).
		AddRow("log-1", "emp-1", domain.DateOf(now), secondIn, &out,
			string(domain.TimeLogCompleted), false, firstIn, "emp-1", now, "admin-1")
	mock.ExpectQuery("SELECT .+ FROM time_logs WHERE log_id").
		WithArgs("log-1").
		WillReturnRows(logRows)

	editRows := pgxmock.NewRows([]string{
		"edit_id", "log_id", "seq", "edited_at", "previous_in", "previous_out", "reason", "admin_id", "admin_name",
	}).
		AddRow("edit-1", "log-1", int64(1), now, firstIn, &out, "rounding correction", "admin-1", "Dana")
	mock.ExpectQuery("FROM time_log_edits").
		WithArgs([]string{"log-1"}).
		WillReturnRows(editRows)

	log, err := repo.FindTimeLogByID(context.Background(), "log-1")
	require.NoError(t, err)
	require.Len(t, log.Edits, 1)
	assert.Equal(t, "rounding correction", log.Edits[0].Reason)
	assert.True(t, log.Edits[0].PreviousIn.Equal(firstIn))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindTimeLogs_WindowBoundsSentAsDates(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &PgxTimeLogRepository{BaseRepository: BaseRepository{DB: mock}}
	// A local date west of UTC must reach the store as that calendar date,
	// not as a timestamp the server shifts into its own zone.
	day := time.Date(2026, 8, 30, 0, 0, 0, 0, time.FixedZone("UTC-5", -5*60*60))
	in := time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows(timeLogRowColumns).
		AddRow("log-1", "emp-1", time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), in, (*time.Time)(nil),
			string(domain.TimeLogActive), false, in, "emp-1", in, "emp-1")
	mock.ExpectQuery("FROM time_logs").
		WithArgs("", pgtype.Date{Time: day, Valid: true}, pgtype.Date{Time: day, Valid: true}, 100, 0).
		WillReturnRows(rows)
	mock.ExpectQuery("FROM time_log_edits").
		WithArgs([]string{"log-1"}).
		WillReturnRows(pgxmock.NewRows([]string{
			"edit_id", "log_id", "seq", "edited_at", "previous_in", "previous_out", "reason", "admin_id", "admin_name",
		}))

	logs, err := repo.FindTimeLogs(context.Background(), portsrepo.TimeLogFilter{From: day, To: day})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "log-1", logs[0].LogID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyEdit_ConflictingActiveLog(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &PgxTimeLogRepository{BaseRepository: BaseRepository{DB: mock}}
	now := time.Now().UTC()
	log := newTestTimeLog(now)
	edit := domain.EditRecord{
		EditID:    "edit-1",
		LogID:     log.LogID,
		EditedAt:  now,
		Reason:    "reopen after early clock-out",
		AdminID:   "admin-1",
		AdminName: "Dana",
	}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT log_id FROM time_logs").
		WithArgs(log.EmployeeID, string(domain.TimeLogActive), log.LogID).
		WillReturnRows(pgxmock.NewRows([]string{"log_id"}).AddRow("log-2"))
	mock.ExpectRollback()

	err = repo.ApplyEdit(context.Background(), log, edit)
	assert.ErrorIs(t, err, apperrors.ErrActiveSessionExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyEdit_Success(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &PgxTimeLogRepository{BaseRepository: BaseRepository{DB: mock}}
	now := time.Now().UTC()
	out := now.Add(-time.Hour)
	log := newTestTimeLog(now)
	log.ClockOut = &out
	log.Status = domain.TimeLogCompleted
	edit := domain.EditRecord{
		EditID:      "edit-1",
		LogID:       log.LogID,
		EditedAt:    now,
		PreviousIn:  log.ClockIn,
		PreviousOut: nil,
		Reason:      "forgot to clock out",
		AdminID:     "admin-1",
		AdminName:   "Dana",
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE time_logs").
		WithArgs(log.ClockIn, log.ClockOut, string(log.Status), log.Flagged,
			log.LastUpdatedAt, log.LastUpdatedBy, log.LogID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("INSERT INTO time_log_edits").
		WithArgs(edit.EditID, edit.LogID, edit.EditedAt, edit.PreviousIn, edit.PreviousOut,
			edit.Reason, edit.AdminID, edit.AdminName).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	err = repo.ApplyEdit(context.Background(), log, edit)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
