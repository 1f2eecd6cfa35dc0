package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/jairjanssen9-web/levant---clock-in/internal/core/domain"
	portsrepo "github.com/jairjanssen9-web/levant---clock-in/internal/core/ports/repositories"
	portssvc "github.com/jairjanssen9-web/levant---clock-in/internal/core/ports/services"
	"github.com/jairjanssen9-web/levant---clock-in/internal/core/services"
	"github.com/jairjanssen9-web/levant---clock-in/internal/platform/config"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockEmployeeRepo *MockEmployeeRepository
	mockTimeLogRepo  *MockTimeLogRepository
	service          portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.mockTimeLogRepo = new(MockTimeLogRepository)
	cfg := &config.Config{
		PayRateDefault: decimal.RequireFromString("12.00"),
		PayRates: map[domain.EmployeeRole]decimal.Decimal{
			domain.RoleBarista: decimal.RequireFromString("10.00"),
			domain.RoleChef:    decimal.RequireFromString("15.50"),
		},
	}
	suite.service = services.NewReportingService(cfg, suite.mockEmployeeRepo, suite.mockTimeLogRepo)
}

func (suite *ReportingServiceTestSuite) TestDashboardStatus() {
	ctx := context.Background()
	now := time.Date(2025, 3, 14, 14, 30, 0, 0, time.UTC)
	today := domain.DateOf(now)

	employees := []domain.Employee{
		{EmployeeID: "emp-working", Name: "Mara", Role: domain.RoleBarista},
		{EmployeeID: "emp-done", Name: "Jon", Role: domain.RoleChef},
		{EmployeeID: "emp-idle", Name: "Pia", Role: domain.RoleServer},
	}
	workingIn := now.Add(-3 * time.Hour)
	doneIn := time.Date(2025, 3, 14, 6, 0, 0, 0, time.UTC)
	doneOut := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	todayLogs := []domain.TimeLog{
		{LogID: "log-done", EmployeeID: "emp-done", LogDate: today, ClockIn: doneIn, ClockOut: &doneOut, Status: domain.TimeLogCompleted},
	}
	activeLogs := []domain.TimeLog{
		{LogID: "log-working", EmployeeID: "emp-working", LogDate: today, ClockIn: workingIn, Status: domain.TimeLogActive},
	}

	suite.mockEmployeeRepo.On("FindEmployees", ctx, mock.Anything, 0, false).Return(employees, nil).Once()
	suite.mockTimeLogRepo.On("FindTimeLogs", ctx, mock.MatchedBy(func(f portsrepo.TimeLogFilter) bool {
		return f.From.Equal(today) && f.To.Equal(today)
	})).Return(todayLogs, nil).Once()
	suite.mockTimeLogRepo.On("FindActiveTimeLogs", ctx).Return(activeLogs, nil).Once()

	resp, err := suite.service.DashboardStatus(ctx, now)

	suite.Require().NoError(err)
	suite.Require().Len(resp.Statuses, 3)

	byID := make(map[string]domain.WorkStatus)
	for _, s := range resp.Statuses {
		byID[s.Employee.EmployeeID] = s.Status
	}
	suite.Equal(domain.StatusWorking, byID["emp-working"])
	suite.Equal(domain.StatusFinishedToday, byID["emp-done"])
	suite.Equal(domain.StatusNotStarted, byID["emp-idle"])

	for _, s := range resp.Statuses {
		if s.Employee.EmployeeID == "emp-working" {
			suite.Require().NotNil(s.ClockIn)
			suite.True(s.ClockIn.Equal(workingIn))
		} else {
			suite.Nil(s.ClockIn)
		}
	}
}

func (suite *ReportingServiceTestSuite) TestHoursReport() {
	ctx := context.Background()
	from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)

	day1In := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	day1Out := day1In.Add(8 * time.Hour)
	day2In := time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC)
	day2Out := day2In.Add(4 * time.Hour)
	chefIn := time.Date(2025, 3, 12, 7, 0, 0, 0, time.UTC)
	chefOut := chefIn.Add(10 * time.Hour)
	openIn := time.Date(2025, 3, 13, 9, 0, 0, 0, time.UTC)
	flaggedOut := day1In.Add(-time.Hour)

	logs := []domain.TimeLog{
		{LogID: "l1", EmployeeID: "emp-1", ClockIn: day1In, ClockOut: &day1Out, Status: domain.TimeLogCompleted},
		{LogID: "l2", EmployeeID: "emp-1", ClockIn: day2In, ClockOut: &day2Out, Status: domain.TimeLogCompleted},
		{LogID: "l3", EmployeeID: "emp-2", ClockIn: chefIn, ClockOut: &chefOut, Status: domain.TimeLogCompleted},
		// Still open; contributes nothing.
		{LogID: "l4", EmployeeID: "emp-1", ClockIn: openIn, Status: domain.TimeLogActive},
		// Flagged after a lenient edit; excluded until corrected again.
		{LogID: "l5", EmployeeID: "emp-2", ClockIn: day1In, ClockOut: &flaggedOut, Status: domain.TimeLogCompleted, Flagged: true},
	}

	suite.mockTimeLogRepo.On("FindTimeLogs", ctx, mock.Anything).Return(logs, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, "emp-1").
		Return(&domain.Employee{EmployeeID: "emp-1", Name: "Mara", Role: domain.RoleBarista}, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, "emp-2").
		Return(&domain.Employee{EmployeeID: "emp-2", Name: "Jon", Role: domain.RoleChef}, nil).Once()

	resp, err := suite.service.HoursReport(ctx, from, to)

	suite.Require().NoError(err)
	suite.Require().Len(resp.Lines, 2)
	suite.Equal("2025-03-10", resp.From)
	suite.Equal("2025-03-16", resp.To)

	// Sorted by name: Jon before Mara.
	jon, mara := resp.Lines[0], resp.Lines[1]
	suite.Equal("Jon", jon.Name)
	suite.True(jon.Hours.Equal(decimal.RequireFromString("10")), "jon hours: %s", jon.Hours)
	suite.True(jon.Pay.Equal(decimal.RequireFromString("155")), "jon pay: %s", jon.Pay)

	suite.Equal("Mara", mara.Name)
	suite.True(mara.Hours.Equal(decimal.RequireFromString("12")), "mara hours: %s", mara.Hours)
	suite.True(mara.Pay.Equal(decimal.RequireFromString("120")), "mara pay: %s", mara.Pay)

	suite.True(resp.Total.Equal(decimal.RequireFromString("275")), "total: %s", resp.Total)
}

func (suite *ReportingServiceTestSuite) TestHoursReport_InvertedWindow() {
	ctx := context.Background()
	from := time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	resp, err := suite.service.HoursReport(ctx, from, to)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.mockTimeLogRepo.AssertNotCalled(suite.T(), "FindTimeLogs", mock.Anything, mock.Anything)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
