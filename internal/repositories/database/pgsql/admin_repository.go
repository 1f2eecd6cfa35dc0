package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jairjanssen9-web/levant---clock-in/internal/apperrors"
	"github.com/jairjanssen9-web/levant---clock-in/internal/core/domain"
	portsrepo "github.com/jairjanssen9-web/levant---clock-in/internal/core/ports/repositories"
	"github.com/jairjanssen9-web/levant---clock-in/internal/models"
	"github.com/jairjanssen9-web/levant---clock-in/internal/utils/mapping"
	"github.com/jairjanssen9-web/levant---clock-in/pkg/database"
)

type PgxAdminRepository struct {
	BaseRepository
}

func newPgxAdminRepository(db database.Queryer) portsrepo.AdminRepositoryFacade {
	return &PgxAdminRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.AdminRepositoryFacade = (*PgxAdminRepository)(nil)

func (r *PgxAdminRepository) SaveAdmin(ctx context.Context, admin domain.Admin) error {
	modelAdmin := mapping.ToModelAdmin(admin)
	query := `
        INSERT INTO admin_accounts (admin_id, username, name, password_hash, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.DB.Exec(ctx, query,
		modelAdmin.AdminID,
		modelAdmin.Username,
		modelAdmin.Name,
		modelAdmin.PasswordHash,
		modelAdmin.CreatedAt,
		modelAdmin.CreatedBy,
		modelAdmin.LastUpdatedAt,
		modelAdmin.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("admin username already taken: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save admin account: %w", err)
	}
	return nil
}

func (r *PgxAdminRepository) FindAdminByID(ctx context.Context, adminID string) (*domain.Admin, error) {
	return r.findAdmin(ctx, "admin_id", adminID)
}

func (r *PgxAdminRepository) FindAdminByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	return r.findAdmin(ctx, "username", username)
}

func (r *PgxAdminRepository) findAdmin(ctx context.Context, column, value string) (*domain.Admin, error) {
	query := fmt.Sprintf(`
		SELECT admin_id, username, name, password_hash, created_at, created_by, last_updated_at, last_updated_by
		FROM admin_accounts
		WHERE %s = $1;
	`, column)

	var modelAdmin models.Admin
	err := r.DB.QueryRow(ctx, query, value).Scan(
		&modelAdmin.AdminID,
		&modelAdmin.Username,
		&modelAdmin.Name,
		&modelAdmin.PasswordHash,
		&modelAdmin.CreatedAt,
		&modelAdmin.CreatedBy,
		&modelAdmin.LastUpdatedAt,
		&modelAdmin.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find admin by %s: %w", column, err)
	}

	domainAdmin := mapping.ToDomainAdmin(modelAdmin)
	return &domainAdmin, nil
}
