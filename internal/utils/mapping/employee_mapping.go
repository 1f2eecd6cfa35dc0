package mapping

import (
	"github.com/jairjanssen9-web/levant---clock-in/internal/core/domain"
	"github.com/jairjanssen9-web/levant---clock-in/internal/models"
)

// ToModelEmployee converts a domain Employee to its database model.
func ToModelEmployee(d domain.Employee) models.Employee {
	return models.Employee{
		EmployeeID:    d.EmployeeID,
		Name:          d.Name,
		Role:          string(d.Role),
		AuditFields:   ToModelAuditFields(d.AuditFields),
		DeactivatedAt: d.DeactivatedAt,
	}
}

// ToDomainEmployee converts a database model to a domain Employee.
func ToDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		EmployeeID:    m.EmployeeID,
		Name:          m.Name,
		Role:          domain.EmployeeRole(m.Role),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
		DeactivatedAt: m.DeactivatedAt,
	}
}

// ToDomainEmployeeSlice converts a slice of models to domain employees.
func ToDomainEmployeeSlice(ms []models.Employee) []domain.Employee {
	ds := make([]domain.Employee, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEmployee(m)
	}
	return ds
}
