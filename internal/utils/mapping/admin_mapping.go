package mapping

import (
	"github.com/jairjanssen9-web/levant---clock-in/internal/core/domain"
	"github.com/jairjanssen9-web/levant---clock-in/internal/models"
)

// ToModelAdmin converts a domain Admin to its database model.
func ToModelAdmin(d domain.Admin) models.Admin {
	return models.Admin{
		AdminID:      d.AdminID,
		Username:     d.Username,
		Name:         d.Name,
		PasswordHash: d.PasswordHash,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAdmin converts a database model to a domain Admin.
func ToDomainAdmin(m models.Admin) domain.Admin {
	return domain.Admin{
		AdminID:      m.AdminID,
		Username:     m.Username,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
