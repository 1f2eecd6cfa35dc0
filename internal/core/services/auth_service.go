package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jairjanssen9-web/levant---clock-in/internal/apperrors"
	"github.com/jairjanssen9-web/levant---clock-in/internal/core/domain"
	portsrepo "github.com/jairjanssen9-web/levant---clock-in/internal/core/ports/repositories"
	portssvc "github.com/jairjanssen9-web/levant---clock-in/internal/core/ports/services"
	"github.com/jairjanssen9-web/levant---clock-in/internal/platform/config"
	"github.com/jairjanssen9-web/levant---clock-in/internal/utils"
)

// authServiceImpl implements the AuthSvcFacade interface
type authServiceImpl struct {
	BaseService
	adminRepo portsrepo.AdminRepositoryFacade
	cfg       *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(cfg *config.Config, adminRepo portsrepo.AdminRepositoryFacade) portssvc.AuthSvcFacade {
	return &authServiceImpl{
		adminRepo: adminRepo,
		cfg:       cfg,
	}
}

// Ensure authServiceImpl implements the AuthSvcFacade interface
var _ portssvc.AuthSvcFacade = (*authServiceImpl)(nil)

func (s *authServiceImpl) GetAdminByID(ctx context.Context, adminID string) (*domain.Admin, error) {
	admin, err := s.adminRepo.FindAdminByID(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("failed to get admin %s: %w", adminID, err)
	}
	return admin, nil
}

func (s *authServiceImpl) Authenticate(ctx context.Context, username, password string) (*domain.Admin, error) {
	admin, err := s.adminRepo.FindAdminByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same error as a bad password; don't leak which usernames exist.
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up admin %s: %w", username, err)
	}

	if !utils.CheckPasswordHash(password, admin.PasswordHash) {
		s.LogWarn(ctx, "failed login attempt", "username", username)
		return nil, apperrors.ErrUnauthorized
	}

	return admin, nil
}

func (s *authServiceImpl) GenerateAccessToken(ctx context.Context, admin *domain.Admin) (string, time.Time, error) {
	token, err := utils.GenerateJWT(admin.AdminID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate access token: %w", err)
	}
	return token, s.Now().Add(s.cfg.JWTExpiryDuration), nil
}

// EnsureBootstrapAdmin creates the configured initial admin account on first
// start so the system is never locked out. A concurrent replica creating the
// same account is tolerated.
func (s *authServiceImpl) EnsureBootstrapAdmin(ctx context.Context) error {
	username := s.cfg.BootstrapAdminUsername
	if username == "" || s.cfg.BootstrapAdminPassword == "" {
		s.LogInfo(ctx, "no bootstrap admin configured, skipping")
		return nil
	}

	_, err := s.adminRepo.FindAdminByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to check for bootstrap admin: %w", err)
	}

	hash, err := utils.HashPassword(s.cfg.BootstrapAdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash bootstrap admin password: %w", err)
	}

	now := s.Now()
	admin := domain.Admin{
		AdminID:      uuid.NewString(),
		Username:     username,
		Name:         s.cfg.BootstrapAdminName,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "system",
			LastUpdatedAt: now,
			LastUpdatedBy: "system",
		},
	}
	if err := s.adminRepo.SaveAdmin(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil
		}
		return fmt.Errorf("failed to create bootstrap admin: %w", err)
	}

	s.LogInfo(ctx, "bootstrap admin created", "username", username)
	return nil
}
