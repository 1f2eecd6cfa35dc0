package services

import (
	"context"
	"time"

	"github.com/jairjanssen9-web/levant---clock-in/internal/core/domain"
)

// AdminReaderSvc resolves admin accounts; the correction engine uses it to
// attribute edits to the authenticated actor.
type AdminReaderSvc interface {
	// GetAdminByID retrieves an admin account by id.
	GetAdminByID(ctx context.Context, adminID string) (*domain.Admin, error)
}

// AuthSvcFacade handles administrator authentication and token issuance.
type AuthSvcFacade interface {
	AdminReaderSvc

	// Authenticate verifies credentials and returns the admin account, or
	// apperrors.ErrUnauthorized on mismatch.
	Authenticate(ctx context.Context, username, password string) (*domain.Admin, error)

	// GenerateAccessToken issues a signed JWT for the admin.
	GenerateAccessToken(ctx context.Context, admin *domain.Admin) (string, time.Time, error)

	// EnsureBootstrapAdmin creates the configured initial admin account if
	// no account with that username exists yet.
	EnsureBootstrapAdmin(ctx context.Context) error
}
