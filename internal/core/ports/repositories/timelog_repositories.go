package repositories

import (
	"context"
	"time"

	"github.com/jairjanssen9-web/levant---clock-in/internal/core/domain"
)

// TimeLogFilter narrows a time log listing. Zero values mean "no filter".
type TimeLogFilter struct {
	EmployeeID string
	From       time.Time // inclusive log date lower bound
	To         time.Time // inclusive log date upper bound
	Limit      int
	Offset     int
}

// TimeLogReader defines read operations over the time log store.
type TimeLogReader interface {
	// FindTimeLogByID retrieves a time log with its full edit trail.
	FindTimeLogByID(ctx context.Context, logID string) (*domain.TimeLog, error)

	// FindTimeLogs retrieves time logs matching the filter, in creation
	// order, with edit trails attached.
	FindTimeLogs(ctx context.Context, filter TimeLogFilter) ([]domain.TimeLog, error)

	// FindActiveTimeLogByEmployee returns the employee's open session, or
	// apperrors.ErrNotFound when none exists.
	FindActiveTimeLogByEmployee(ctx context.Context, employeeID string) (*domain.TimeLog, error)

	// FindActiveTimeLogs returns every open session across employees.
	FindActiveTimeLogs(ctx context.Context) ([]domain.TimeLog, error)
}

// TimeLogWriter defines write operations over the time log store.
type TimeLogWriter interface {
	// SaveTimeLog persists a new time log. A unique violation on the
	// active-session index is surfaced as apperrors.ErrActiveSessionExists.
	SaveTimeLog(ctx context.Context, log domain.TimeLog) error

	// CompleteTimeLog closes the given active log. Returns
	// apperrors.ErrNotFound if the log is missing or already completed.
	CompleteTimeLog(ctx context.Context, logID string, clockOut time.Time, updatedAt time.Time, updatedBy string) error
}

// TimeLogEditor applies administrator corrections transactionally.
type TimeLogEditor interface {
	// ApplyEdit overwrites the log's boundaries, status, and flag with the
	// values in log, and appends edit to the audit trail, in one
	// transaction. When the edit would leave the employee with a second
	// active log the transaction is aborted with
	// apperrors.ErrActiveSessionExists and nothing is mutated.
	ApplyEdit(ctx context.Context, log domain.TimeLog, edit domain.EditRecord) error
}

// TimeLogRepositoryFacade combines all time-log repository interfaces.
type TimeLogRepositoryFacade interface {
	TimeLogReader
	TimeLogWriter
	TimeLogEditor
}
