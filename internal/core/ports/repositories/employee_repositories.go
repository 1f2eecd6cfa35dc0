package repositories

import (
	"context"
	"time"

	"github.com/jairjanssen9-web/levant---clock-in/internal/core/domain"
)

// EmployeeReader defines read operations for the employee registry.
type EmployeeReader interface {
	// FindEmployeeByID retrieves an employee by id, including deactivated
	// ones: historical time logs must stay attributable.
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// FindEmployees retrieves a paginated list of employees. Deactivated
	// employees are only included when includeDeactivated is set.
	FindEmployees(ctx context.Context, limit, offset int, includeDeactivated bool) ([]domain.Employee, error)
}

// EmployeeWriter defines write operations for the employee registry.
type EmployeeWriter interface {
	// SaveEmployee persists a new employee.
	SaveEmployee(ctx context.Context, employee domain.Employee) error

	// UpdateEmployee updates an existing employee's details.
	UpdateEmployee(ctx context.Context, employee domain.Employee) error
}

// EmployeeLifecycleManager defines soft-delete operations. Employees are
// never hard deleted.
type EmployeeLifecycleManager interface {
	// MarkEmployeeDeactivated sets the deactivation timestamp. Time logs
	// referencing the employee are not touched. Repeating the call for an
	// already deactivated employee is a no-op, not an error.
	MarkEmployeeDeactivated(ctx context.Context, employeeID string, deactivatedAt time.Time, deactivatedBy string) error
}

// EmployeeRepositoryFacade combines all employee-related repository interfaces.
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
	EmployeeLifecycleManager
}
