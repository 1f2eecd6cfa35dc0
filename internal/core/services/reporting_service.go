package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jairjanssen9-web/levant---clock-in/internal/apperrors"
	"github.com/jairjanssen9-web/levant---clock-in/internal/core/domain"
	portsrepo "github.com/jairjanssen9-web/levant---clock-in/internal/core/ports/repositories"
	portssvc "github.com/jairjanssen9-web/levant---clock-in/internal/core/ports/services"
	"github.com/jairjanssen9-web/levant---clock-in/internal/dto"
	"github.com/jairjanssen9-web/levant---clock-in/internal/platform/config"
)

const reportingPageSize = 500

// reportingServiceImpl implements the ReportingSvcFacade interface
type reportingServiceImpl struct {
	BaseService
	employeeRepo portsrepo.EmployeeReader
	timeLogRepo  portsrepo.TimeLogReader
	cfg          *config.Config
}

// NewReportingService creates a new reporting service
func NewReportingService(cfg *config.Config, employeeRepo portsrepo.EmployeeReader, timeLogRepo portsrepo.TimeLogReader) portssvc.ReportingSvcFacade {
	return &reportingServiceImpl{
		employeeRepo: employeeRepo,
		timeLogRepo:  timeLogRepo,
		cfg:          cfg,
	}
}

// Ensure reportingServiceImpl implements the ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingServiceImpl)(nil)

func (s *reportingServiceImpl) DashboardStatus(ctx context.Context, now time.Time) (*dto.DashboardResponse, error) {
	employees, err := s.listAllEmployees(ctx)
	if err != nil {
		return nil, err
	}

	// Today's logs cover the not-started/finished distinction; open sessions
	// are fetched separately since a forgotten clock-out can span midnight.
	today := domain.DateOf(now)
	todayLogs, err := s.timeLogRepo.FindTimeLogs(ctx, portsrepo.TimeLogFilter{From: today, To: today, Limit: reportingPageSize})
	if err != nil {
		return nil, fmt.Errorf("failed to load today's time logs: %w", err)
	}
	activeLogs, err := s.timeLogRepo.FindActiveTimeLogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load active time logs: %w", err)
	}

	logs := make([]domain.TimeLog, 0, len(todayLogs)+len(activeLogs))
	logs = append(logs, todayLogs...)
	seen := make(map[string]struct{}, len(todayLogs))
	for _, l := range todayLogs {
		seen[l.LogID] = struct{}{}
	}
	for _, l := range activeLogs {
		if _, ok := seen[l.LogID]; !ok {
			logs = append(logs, l)
		}
	}

	statuses := make([]dto.EmployeeStatusResponse, 0, len(employees))
	for i := range employees {
		e := &employees[i]
		status := dto.EmployeeStatusResponse{
			Employee: dto.ToEmployeeResponse(e),
			Status:   domain.DeriveWorkStatus(e.EmployeeID, logs, now),
		}
		if active := domain.ActiveLogFor(e.EmployeeID, logs); active != nil {
			clockIn := active.ClockIn
			status.ClockIn = &clockIn
		}
		statuses = append(statuses, status)
	}

	return &dto.DashboardResponse{Statuses: statuses}, nil
}

func (s *reportingServiceImpl) HoursReport(ctx context.Context, from, to time.Time) (*dto.HoursReportResponse, error) {
	from = domain.DateOf(from)
	to = domain.DateOf(to)
	if to.Before(from) {
		return nil, fmt.Errorf("report window ends before it starts: %w", apperrors.ErrValidation)
	}

	logs, err := s.listLogsInWindow(ctx, from, to)
	if err != nil {
		return nil, err
	}

	type bucket struct {
		minutes int64
	}
	buckets := make(map[string]*bucket)
	for i := range logs {
		l := &logs[i]
		// Only clean completed work counts toward pay. Flagged logs wait
		// for another correction.
		if l.Status != domain.TimeLogCompleted || l.Flagged || l.ClockOut == nil {
			continue
		}
		if l.HasInvertedInterval() {
			continue
		}
		b := buckets[l.EmployeeID]
		if b == nil {
			b = &bucket{}
			buckets[l.EmployeeID] = b
		}
		b.minutes += int64(l.ClockOut.Sub(l.ClockIn) / time.Minute)
	}

	sixty := decimal.NewFromInt(60)
	lines := make([]dto.EmployeeHoursResponse, 0, len(buckets))
	total := decimal.Zero
	for employeeID, b := range buckets {
		employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve employee %s for report: %w", employeeID, err)
		}
		hours := decimal.NewFromInt(b.minutes).Div(sixty).Round(2)
		rate := s.cfg.HourlyRateFor(employee.Role)
		pay := hours.Mul(rate).Round(2)
		lines = append(lines, dto.EmployeeHoursResponse{
			EmployeeID: employee.EmployeeID,
			Name:       employee.Name,
			Role:       employee.Role,
			Hours:      hours,
			HourlyRate: rate,
			Pay:        pay,
		})
		total = total.Add(pay)
	}
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].Name != lines[j].Name {
			return lines[i].Name < lines[j].Name
		}
		return lines[i].EmployeeID < lines[j].EmployeeID
	})

	return &dto.HoursReportResponse{
		From:  from.Format("2006-01-02"),
		To:    to.Format("2006-01-02"),
		Lines: lines,
		Total: total,
	}, nil
}

func (s *reportingServiceImpl) listAllEmployees(ctx context.Context) ([]domain.Employee, error) {
	var all []domain.Employee
	for offset := 0; ; offset += reportingPageSize {
		page, err := s.employeeRepo.FindEmployees(ctx, reportingPageSize, offset, false)
		if err != nil {
			return nil, fmt.Errorf("failed to list employees for report: %w", err)
		}
		all = append(all, page...)
		if len(page) < reportingPageSize {
			return all, nil
		}
	}
}

func (s *reportingServiceImpl) listLogsInWindow(ctx context.Context, from, to time.Time) ([]domain.TimeLog, error) {
	var all []domain.TimeLog
	for offset := 0; ; offset += reportingPageSize {
		page, err := s.timeLogRepo.FindTimeLogs(ctx, portsrepo.TimeLogFilter{
			From:   from,
			To:     to,
			Limit:  reportingPageSize,
			Offset: offset,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list time logs for report: %w", err)
		}
		all = append(all, page...)
		if len(page) < reportingPageSize {
			return all, nil
		}
	}
}
