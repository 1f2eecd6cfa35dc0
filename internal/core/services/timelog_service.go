package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jairjanssen9-web/levant---clock-in/internal/apperrors"
	"github.com/jairjanssen9-web/levant---clock-in/internal/core/domain"
	portsrepo "github.com/jairjanssen9-web/levant---clock-in/internal/core/ports/repositories"
	portssvc "github.com/jairjanssen9-web/levant---clock-in/internal/core/ports/services"
	"github.com/jairjanssen9-web/levant---clock-in/internal/dto"
)

// timeLogServiceImpl implements the TimeLogSvcFacade interface
type timeLogServiceImpl struct {
	BaseService
	timeLogRepo    portsrepo.TimeLogRepositoryFacade
	employeeRepo   portsrepo.EmployeeReader
	adminReader    portssvc.AdminReaderSvc
	intervalPolicy domain.IntervalPolicy
}

// TimeLogServiceOption is a functional option for configuring the time log service
type TimeLogServiceOption func(*timeLogServiceImpl)

// WithNowFunc pins the service clock, for tests.
func WithNowFunc(nowFn func() time.Time) TimeLogServiceOption {
	return func(s *timeLogServiceImpl) {
		s.nowFn = nowFn
	}
}

// WithIntervalPolicy overrides the configured inverted-interval policy.
func WithIntervalPolicy(policy domain.IntervalPolicy) TimeLogServiceOption {
	return func(s *timeLogServiceImpl) {
		s.intervalPolicy = policy
	}
}

// NewTimeLogService creates a new time log service with the provided options
func NewTimeLogService(timeLogRepo portsrepo.TimeLogRepositoryFacade, employeeRepo portsrepo.EmployeeReader, adminReader portssvc.AdminReaderSvc, options ...TimeLogServiceOption) portssvc.TimeLogSvcFacade {
	svc := &timeLogServiceImpl{
		timeLogRepo:    timeLogRepo,
		employeeRepo:   employeeRepo,
		adminReader:    adminReader,
		intervalPolicy: domain.PolicyLenient,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure timeLogServiceImpl implements the TimeLogSvcFacade interface
var _ portssvc.TimeLogSvcFacade = (*timeLogServiceImpl)(nil)

func (s *timeLogServiceImpl) ClockIn(ctx context.Context, employeeID string) (*domain.TimeLog, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to find employee %s: %w", employeeID, err)
	}
	if !employee.IsActive() {
		return nil, fmt.Errorf("employee %s: %w", employeeID, apperrors.ErrEmployeeInactive)
	}

	// Cheap pre-check; the partial unique index settles races.
	_, err = s.timeLogRepo.FindActiveTimeLogByEmployee(ctx, employeeID)
	if err == nil {
		return nil, fmt.Errorf("employee %s: %w", employeeID, apperrors.ErrActiveSessionExists)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for active time log: %w", err)
	}

	now := s.Now()
	log := domain.TimeLog{
		LogID:      uuid.NewString(),
		EmployeeID: employeeID,
		LogDate:    domain.DateOf(now),
		ClockIn:    now,
		Status:     domain.TimeLogActive,
		Edits:      []domain.EditRecord{},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     employeeID,
			LastUpdatedAt: now,
			LastUpdatedBy: employeeID,
		},
	}

	if err := s.timeLogRepo.SaveTimeLog(ctx, log); err != nil {
		s.LogError(ctx, err, "failed to save time log", "employee_id", employeeID)
		if errors.Is(err, apperrors.ErrActiveSessionExists) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to clock in employee %s: %w", employeeID, err)
	}

	s.LogInfo(ctx, "employee clocked in", "employee_id", employeeID, "log_id", log.LogID)
	return &log, nil
}

func (s *timeLogServiceImpl) ClockOut(ctx context.Context, employeeID string) (*domain.TimeLog, error) {
	log, err := s.timeLogRepo.FindActiveTimeLogByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// No open session: a clock-out with nothing to close is a no-op.
			s.LogInfo(ctx, "clock-out without open session ignored", "employee_id", employeeID)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find active time log for employee %s: %w", employeeID, err)
	}

	now := s.Now()
	if err := s.timeLogRepo.CompleteTimeLog(ctx, log.LogID, now, now, employeeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Lost the race against a concurrent clock-out; same no-op outcome.
			return nil, nil
		}
		return nil, fmt.Errorf("failed to clock out employee %s: %w", employeeID, err)
	}

	clockOut := now
	log.ClockOut = &clockOut
	log.Status = domain.TimeLogCompleted
	log.LastUpdatedAt = now
	log.LastUpdatedBy = employeeID

	s.LogInfo(ctx, "employee clocked out", "employee_id", employeeID, "log_id", log.LogID)
	return log, nil
}

func (s *timeLogServiceImpl) GetTimeLogByID(ctx context.Context, logID string) (*domain.TimeLog, error) {
	log, err := s.timeLogRepo.FindTimeLogByID(ctx, logID)
	if err != nil {
		return nil, fmt.Errorf("failed to get time log %s: %w", logID, err)
	}
	return log, nil
}

func (s *timeLogServiceImpl) ListTimeLogs(ctx context.Context, params dto.ListTimeLogsParams) ([]domain.TimeLog, error) {
	filter := portsrepo.TimeLogFilter{
		EmployeeID: params.EmployeeID,
		From:       params.From,
		To:         params.To,
		Limit:      params.Limit,
		Offset:     params.Offset,
	}
	logs, err := s.timeLogRepo.FindTimeLogs(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list time logs: %w", err)
	}
	return logs, nil
}

func (s *timeLogServiceImpl) EditTimeLog(ctx context.Context, logID string, req dto.EditTimeLogRequest, editorAdminID string) (*domain.TimeLog, error) {
	if strings.TrimSpace(req.Reason) == "" {
		return nil, fmt.Errorf("edit reason is required: %w", apperrors.ErrValidation)
	}
	if req.ClockIn.IsZero() {
		return nil, fmt.Errorf("edit clock-in is required: %w", apperrors.ErrValidation)
	}

	log, err := s.timeLogRepo.FindTimeLogByID(ctx, logID)
	if err != nil {
		return nil, fmt.Errorf("failed to find time log %s: %w", logID, err)
	}

	admin, err := s.adminReader.GetAdminByID(ctx, editorAdminID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve editing admin %s: %w", editorAdminID, err)
	}

	now := s.Now()

	// The pre-image is captured before anything changes; the trail together
	// with the final boundaries reconstructs every state the log ever had.
	edit := domain.EditRecord{
		EditID:      uuid.NewString(),
		LogID:       log.LogID,
		EditedAt:    now,
		PreviousIn:  log.ClockIn,
		PreviousOut: log.ClockOut,
		Reason:      strings.TrimSpace(req.Reason),
		AdminID:     admin.AdminID,
		AdminName:   admin.Name,
	}

	log.ClockIn = req.ClockIn
	log.ClockOut = req.ClockOut
	log.Status = domain.StatusForClockOut(req.ClockOut)

	if log.HasInvertedInterval() {
		if s.intervalPolicy == domain.PolicyStrict {
			return nil, fmt.Errorf("clock-out precedes clock-in: %w", apperrors.ErrInvertedInterval)
		}
		log.Flagged = true
		s.LogWarn(ctx, "edit produced inverted interval, log flagged", "log_id", log.LogID)
	} else {
		log.Flagged = false
	}

	log.LastUpdatedAt = now
	log.LastUpdatedBy = admin.AdminID

	if err := s.timeLogRepo.ApplyEdit(ctx, *log, edit); err != nil {
		if errors.Is(err, apperrors.ErrActiveSessionExists) {
			return nil, fmt.Errorf("edit would open a second active session for employee %s: %w", log.EmployeeID, err)
		}
		return nil, fmt.Errorf("failed to apply edit to time log %s: %w", logID, err)
	}

	log.Edits = append(log.Edits, edit)
	s.LogInfo(ctx, "time log edited", "log_id", log.LogID, "admin_id", admin.AdminID)
	return log, nil
}
