package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jairjanssen9-web/levant---clock-in/internal/apperrors"
	"github.com/jairjanssen9-web/levant---clock-in/internal/core/domain"
	portsrepo "github.com/jairjanssen9-web/levant---clock-in/internal/core/ports/repositories"
	portssvc "github.com/jairjanssen9-web/levant---clock-in/internal/core/ports/services"
	"github.com/jairjanssen9-web/levant---clock-in/internal/dto"
)

// employeeServiceImpl implements the EmployeeSvcFacade interface
type employeeServiceImpl struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepositoryFacade
}

// EmployeeServiceOption is a functional option for configuring the employee service
type EmployeeServiceOption func(*employeeServiceImpl)

// WithEmployeeNowFunc pins the service clock, for tests.
func WithEmployeeNowFunc(nowFn func() time.Time) EmployeeServiceOption {
	return func(s *employeeServiceImpl) {
		s.nowFn = nowFn
	}
}

// NewEmployeeService creates a new employee service with the provided options
func NewEmployeeService(repo portsrepo.EmployeeRepositoryFacade, options ...EmployeeServiceOption) portssvc.EmployeeSvcFacade {
	svc := &employeeServiceImpl{
		employeeRepo: repo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure employeeServiceImpl implements the EmployeeSvcFacade interface
var _ portssvc.EmployeeSvcFacade = (*employeeServiceImpl)(nil)

func (s *employeeServiceImpl) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, creatorAdminID string) (*domain.Employee, error) {
	if !req.Role.Valid() {
		return nil, fmt.Errorf("invalid employee role %q: %w", req.Role, apperrors.ErrValidation)
	}

	now := s.Now()
	employee := domain.Employee{
		EmployeeID: uuid.NewString(),
		Name:       req.Name,
		Role:       req.Role,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorAdminID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorAdminID,
		},
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		s.LogError(ctx, err, "failed to save employee")
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	s.LogInfo(ctx, "employee created", "employee_id", employee.EmployeeID, "role", string(employee.Role))
	return &employee, nil
}

func (s *employeeServiceImpl) UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest, updaterAdminID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to find employee %s: %w", employeeID, err)
	}

	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.Role != nil {
		if !req.Role.Valid() {
			return nil, fmt.Errorf("invalid employee role %q: %w", *req.Role, apperrors.ErrValidation)
		}
		employee.Role = *req.Role
	}
	employee.LastUpdatedAt = s.Now()
	employee.LastUpdatedBy = updaterAdminID

	if err := s.employeeRepo.UpdateEmployee(ctx, *employee); err != nil {
		s.LogError(ctx, err, "failed to update employee", "employee_id", employeeID)
		return nil, fmt.Errorf("failed to update employee %s: %w", employeeID, err)
	}

	return employee, nil
}

func (s *employeeServiceImpl) DeactivateEmployee(ctx context.Context, employeeID string, deactivatorAdminID string) error {
	if err := s.employeeRepo.MarkEmployeeDeactivated(ctx, employeeID, s.Now(), deactivatorAdminID); err != nil {
		return fmt.Errorf("failed to deactivate employee %s: %w", employeeID, err)
	}
	s.LogInfo(ctx, "employee deactivated", "employee_id", employeeID)
	return nil
}

func (s *employeeServiceImpl) GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee %s: %w", employeeID, err)
	}
	return employee, nil
}

func (s *employeeServiceImpl) ListEmployees(ctx context.Context, params dto.ListEmployeesParams) ([]domain.Employee, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}
	employees, err := s.employeeRepo.FindEmployees(ctx, limit, params.Offset, params.IncludeDeactivated)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}
