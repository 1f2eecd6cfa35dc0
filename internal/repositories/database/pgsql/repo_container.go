package pgsql

import (
	portsrepo "github.com/jairjanssen9-web/levant---clock-in/internal/core/ports/repositories"
	"github.com/jairjanssen9-web/levant---clock-in/pkg/database"
)

// NewRepositoryProvider wires the pgx-backed repositories into the provider
// consumed by the service layer.
func NewRepositoryProvider(db database.Queryer) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		EmployeeRepo: newPgxEmployeeRepository(db),
		TimeLogRepo:  newPgxTimeLogRepository(db),
		AdminRepo:    newPgxAdminRepository(db),
	}
}
