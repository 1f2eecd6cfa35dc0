package repositories

import (
	"context"

	"github.com/jairjanssen9-web/levant---clock-in/internal/core/domain"
)

// AdminReader defines read operations for administrator accounts.
type AdminReader interface {
	// FindAdminByID retrieves an admin account by id.
	FindAdminByID(ctx context.Context, adminID string) (*domain.Admin, error)

	// FindAdminByUsername retrieves an admin account by username.
	FindAdminByUsername(ctx context.Context, username string) (*domain.Admin, error)
}

// AdminWriter defines write operations for administrator accounts.
type AdminWriter interface {
	// SaveAdmin persists a new admin account.
	SaveAdmin(ctx context.Context, admin domain.Admin) error
}

// AdminRepositoryFacade combines all admin-related repository interfaces.
type AdminRepositoryFacade interface {
	AdminReader
	AdminWriter
}
