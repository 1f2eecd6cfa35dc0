package services

import (
	"context"

	"github.com/jairjanssen9-web/levant---clock-in/internal/core/domain"
	"github.com/jairjanssen9-web/levant---clock-in/internal/dto"
)

// EmployeeReaderSvc defines read operations for the employee registry.
type EmployeeReaderSvc interface {
	// GetEmployeeByID retrieves an employee by id, including deactivated ones.
	GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// ListEmployees retrieves a paginated list of employees.
	ListEmployees(ctx context.Context, params dto.ListEmployeesParams) ([]domain.Employee, error)
}

// EmployeeWriterSvc defines write operations for the employee registry.
type EmployeeWriterSvc interface {
	// CreateEmployee adds a new active employee.
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, creatorAdminID string) (*domain.Employee, error)

	// UpdateEmployee updates an employee's name and/or role.
	UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest, updaterAdminID string) (*domain.Employee, error)
}

// EmployeeLifecycleSvc defines operations for managing employee lifecycle.
type EmployeeLifecycleSvc interface {
	// DeactivateEmployee soft deletes an employee. Time logs are untouched.
	DeactivateEmployee(ctx context.Context, employeeID string, deactivatorAdminID string) error
}

// EmployeeSvcFacade combines all employee-related service interfaces.
type EmployeeSvcFacade interface {
	EmployeeReaderSvc
	EmployeeWriterSvc
	EmployeeLifecycleSvc
}
