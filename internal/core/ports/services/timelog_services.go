package services

import (
	"context"

	"github.com/jairjanssen9-web/levant---clock-in/internal/core/domain"
	"github.com/jairjanssen9-web/levant---clock-in/internal/dto"
)

// SessionSvc is the session state machine: it decides whether a clock-in
// or clock-out is currently legal for a worker and applies the transition.
type SessionSvc interface {
	// ClockIn opens a new session for the employee. Rejected with
	// apperrors.ErrNotFound (unknown employee), apperrors.ErrEmployeeInactive,
	// or apperrors.ErrActiveSessionExists (already working).
	ClockIn(ctx context.Context, employeeID string) (*domain.TimeLog, error)

	// ClockOut closes the employee's open session and returns it. When no
	// session is open the call is a no-op and returns (nil, nil); a double
	// clock-out must never corrupt state or surface an error.
	ClockOut(ctx context.Context, employeeID string) (*domain.TimeLog, error)
}

// TimeLogReaderSvc defines read operations over the time log store.
type TimeLogReaderSvc interface {
	// GetTimeLogByID retrieves a time log with its edit trail.
	GetTimeLogByID(ctx context.Context, logID string) (*domain.TimeLog, error)

	// ListTimeLogs retrieves time logs matching the query parameters.
	ListTimeLogs(ctx context.Context, params dto.ListTimeLogsParams) ([]domain.TimeLog, error)
}

// TimeLogEditorSvc is the correction/audit engine.
type TimeLogEditorSvc interface {
	// EditTimeLog applies an administrator correction: the pre-edit
	// boundaries are captured into a new append-only EditRecord attributed
	// to the acting admin, then the boundaries are overwritten and the
	// status recomputed. The single-active-session invariant is
	// re-validated; a violating edit is rejected with
	// apperrors.ErrActiveSessionExists and nothing is mutated.
	EditTimeLog(ctx context.Context, logID string, req dto.EditTimeLogRequest, editorAdminID string) (*domain.TimeLog, error)
}

// TimeLogSvcFacade combines all time-log service interfaces.
type TimeLogSvcFacade interface {
	SessionSvc
	TimeLogReaderSvc
	TimeLogEditorSvc
}
