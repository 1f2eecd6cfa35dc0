package pgsql

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jairjanssen9-web/levant---clock-in/internal/apperrors"
)

func TestMarkEmployeeDeactivated_Success(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &PgxEmployeeRepository{BaseRepository: BaseRepository{DB: mock}}
	now := time.Now().UTC()

	mock.ExpectExec("UPDATE employees").
		WithArgs(now, "admin-1", "emp-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.MarkEmployeeDeactivated(context.Background(), "emp-1", now, "admin-1")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkEmployeeDeactivated_RepeatIsNoOp(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &PgxEmployeeRepository{BaseRepository: BaseRepository{DB: mock}}
	now := time.Now().UTC()
	earlier := now.Add(-24 * time.Hour)

	// The guarded UPDATE matches nothing the second time around; the row
	// still exists, so the repeat succeeds without touching anything else.
	// No statement against time_logs runs at any point.
	mock.ExpectExec("UPDATE employees").
		WithArgs(now, "admin-1", "emp-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery("SELECT deactivated_at FROM employees").
		WithArgs("emp-1").
		WillReturnRows(pgxmock.NewRows([]string{"deactivated_at"}).AddRow(&earlier))

	err = repo.MarkEmployeeDeactivated(context.Background(), "emp-1", now, "admin-1")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkEmployeeDeactivated_UnknownEmployee(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := &PgxEmployeeRepository{BaseRepository: BaseRepository{DB: mock}}
	now := time.Now().UTC()

	mock.ExpectExec("UPDATE employees").
		WithArgs(now, "admin-1", "emp-9").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectQuery("SELECT deactivated_at FROM employees").
		WithArgs("emp-9").
		WillReturnRows(pgxmock.NewRows([]string{"deactivated_at"}))

	err = repo.MarkEmployeeDeactivated(context.Background(), "emp-9", now, "admin-1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
