package dto

import (
	"time"

	"github.com/jairjanssen9-web/levant---clock-in/internal/core/domain"
)

// CreateEmployeeRequest defines the data needed to add a worker to the registry.
type CreateEmployeeRequest struct {
	Name string              `json:"name" binding:"required"`
	Role domain.EmployeeRole `json:"role" binding:"required,employeerole"`
}

// UpdateEmployeeRequest defines the data allowed for updating an employee.
// Pointers distinguish omitted fields from zero values.
type UpdateEmployeeRequest struct {
	Name *string              `json:"name"`
	Role *domain.EmployeeRole `json:"role" binding:"omitempty,employeerole"`
}

// ListEmployeesParams defines query parameters for listing employees.
// Deactivated employees are excluded unless explicitly requested.
type ListEmployeesParams struct {
	Limit              int  `form:"limit,default=50"`
	Offset             int  `form:"offset,default=0"`
	IncludeDeactivated bool `form:"includeDeactivated,default=false"`
}

// EmployeeResponse defines the data returned for an employee.
type EmployeeResponse struct {
	EmployeeID    string              `json:"employeeID"`
	Name          string              `json:"name"`
	Role          domain.EmployeeRole `json:"role"`
	IsActive      bool                `json:"isActive"`
	DeactivatedAt *time.Time          `json:"deactivatedAt,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
	LastUpdatedAt time.Time           `json:"lastUpdatedAt"`
}

// ListEmployeesResponse wraps the list of employees.
type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}

// ToEmployeeResponse converts a domain.Employee to its response DTO.
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:    e.EmployeeID,
		Name:          e.Name,
		Role:          e.Role,
		IsActive:      e.IsActive(),
		DeactivatedAt: e.DeactivatedAt,
		CreatedAt:     e.CreatedAt,
		LastUpdatedAt: e.LastUpdatedAt,
	}
}

// ToListEmployeesResponse converts a slice of domain employees to the list DTO.
func ToListEmployeesResponse(employees []domain.Employee) ListEmployeesResponse {
	responses := make([]EmployeeResponse, len(employees))
	for i := range employees {
		responses[i] = ToEmployeeResponse(&employees[i])
	}
	return ListEmployeesResponse{Employees: responses}
}
