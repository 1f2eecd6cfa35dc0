package models

import "time"

// Employee is the database representation of a worker.
type Employee struct {
	EmployeeID string `db:"employee_id"`
	Name       string `db:"name"`
	Role       string `db:"role"`
	AuditFields
	DeactivatedAt *time.Time `db:"deactivated_at"`
}
