package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/jairjanssen9-web/levant---clock-in/internal/apperrors"
	"github.com/jairjanssen9-web/levant---clock-in/internal/core/domain"
	portssvc "github.com/jairjanssen9-web/levant---clock-in/internal/core/ports/services"
	"github.com/jairjanssen9-web/levant---clock-in/internal/core/services"
	"github.com/jairjanssen9-web/levant---clock-in/internal/dto"
)

type EmployeeServiceTestSuite struct {
	suite.Suite
	mockEmployeeRepo *MockEmployeeRepository
	service          portssvc.EmployeeSvcFacade
}

func (suite *EmployeeServiceTestSuite) SetupTest() {
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.service = services.NewEmployeeService(suite.mockEmployeeRepo)
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_Success() {
	ctx := context.Background()
	req := dto.CreateEmployeeRequest{Name: "Mara", Role: domain.RoleBarista}

	suite.mockEmployeeRepo.On("SaveEmployee", ctx, mock.MatchedBy(func(e domain.Employee) bool {
		return e.Name == "Mara" && e.Role == domain.RoleBarista && e.DeactivatedAt == nil && e.CreatedBy == "admin-1"
	})).Return(nil).Once()

	employee, err := suite.service.CreateEmployee(ctx, req, "admin-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(employee)
	suite.NotEmpty(employee.EmployeeID)
	suite.True(employee.IsActive())
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestCreateEmployee_InvalidRole() {
	ctx := context.Background()
	req := dto.CreateEmployeeRequest{Name: "Mara", Role: domain.EmployeeRole("astronaut")}

	employee, err := suite.service.CreateEmployee(ctx, req, "admin-1")

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(employee)
	suite.mockEmployeeRepo.AssertNotCalled(suite.T(), "SaveEmployee", mock.Anything, mock.Anything)
}

func (suite *EmployeeServiceTestSuite) TestUpdateEmployee_PartialUpdate() {
	ctx := context.Background()
	existing := &domain.Employee{EmployeeID: "emp-1", Name: "Mara", Role: domain.RoleBarista}
	newRole := domain.RoleManager

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, "emp-1").Return(existing, nil).Once()
	suite.mockEmployeeRepo.On("UpdateEmployee", ctx, mock.MatchedBy(func(e domain.Employee) bool {
		return e.Name == "Mara" && e.Role == domain.RoleManager && e.LastUpdatedBy == "admin-1"
	})).Return(nil).Once()

	employee, err := suite.service.UpdateEmployee(ctx, "emp-1", dto.UpdateEmployeeRequest{Role: &newRole}, "admin-1")

	suite.Require().NoError(err)
	suite.Equal(domain.RoleManager, employee.Role)
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestDeactivateEmployee() {
	ctx := context.Background()

	suite.mockEmployeeRepo.On("MarkEmployeeDeactivated", ctx, "emp-1", mock.AnythingOfType("time.Time"), "admin-1").Return(nil).Once()

	err := suite.service.DeactivateEmployee(ctx, "emp-1", "admin-1")

	suite.Require().NoError(err)
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
}

func (suite *EmployeeServiceTestSuite) TestDeactivateEmployee_UnknownEmployee() {
	ctx := context.Background()

	suite.mockEmployeeRepo.On("MarkEmployeeDeactivated", ctx, "emp-1", mock.AnythingOfType("time.Time"), "admin-1").
		Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeactivateEmployee(ctx, "emp-1", "admin-1")

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *EmployeeServiceTestSuite) TestGetEmployeeByID_IncludesDeactivated() {
	ctx := context.Background()
	deactivatedAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	existing := &domain.Employee{EmployeeID: "emp-1", Name: "Mara", Role: domain.RoleBarista, DeactivatedAt: &deactivatedAt}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, "emp-1").Return(existing, nil).Once()

	employee, err := suite.service.GetEmployeeByID(ctx, "emp-1")

	suite.Require().NoError(err)
	suite.False(employee.IsActive())
}

func (suite *EmployeeServiceTestSuite) TestListEmployees_DefaultLimit() {
	ctx := context.Background()

	suite.mockEmployeeRepo.On("FindEmployees", ctx, 50, 0, false).Return([]domain.Employee{}, nil).Once()

	employees, err := suite.service.ListEmployees(ctx, dto.ListEmployeesParams{})

	suite.Require().NoError(err)
	suite.Empty(employees)
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
}

func TestEmployeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EmployeeServiceTestSuite))
}
