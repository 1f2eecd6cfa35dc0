package domain

import "time"

// EmployeeRole is the closed set of role tags an employee can carry.
type EmployeeRole string

const (
	RoleBarista EmployeeRole = "barista"
	RoleChef    EmployeeRole = "chef"
	RoleServer  EmployeeRole = "server"
	RoleManager EmployeeRole = "manager"
)

// Valid reports whether the role is one of the known tags.
func (r EmployeeRole) Valid() bool {
	switch r {
	case RoleBarista, RoleChef, RoleServer, RoleManager:
		return true
	}
	return false
}

// Employee represents a worker in the registry. Employees are never hard
// deleted; DeactivatedAt marks them ineligible for clocking in while keeping
// historical time logs attributable.
type Employee struct {
	EmployeeID string       `json:"employeeID"`
	Name       string       `json:"name"`
	Role       EmployeeRole `json:"role"`
	AuditFields
	DeactivatedAt *time.Time `json:"deactivatedAt,omitempty"`
}

// IsActive reports whether the employee may clock in and appear on the
// dashboard.
func (e Employee) IsActive() bool {
	return e.DeactivatedAt == nil
}
