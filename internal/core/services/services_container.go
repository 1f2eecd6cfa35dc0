package services

import (
	portsrepo "github.com/jairjanssen9-web/levant---clock-in/internal/core/ports/repositories"
	portssvc "github.com/jairjanssen9-web/levant---clock-in/internal/core/ports/services"
	"github.com/jairjanssen9-web/levant---clock-in/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Auth first; the correction engine resolves editing admins through it.
	container.Auth = NewAuthService(cfg, repos.AdminRepo)

	container.Employee = NewEmployeeService(repos.EmployeeRepo)
	container.TimeLog = NewTimeLogService(
		repos.TimeLogRepo,
		repos.EmployeeRepo,
		container.Auth,
		WithIntervalPolicy(cfg.EditIntervalPolicy),
	)
	container.Reporting = NewReportingService(cfg, repos.EmployeeRepo, repos.TimeLogRepo)

	return container
}
