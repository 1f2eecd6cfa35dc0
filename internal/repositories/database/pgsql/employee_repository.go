package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jairjanssen9-web/levant---clock-in/internal/apperrors"
	"github.com/jairjanssen9-web/levant---clock-in/internal/core/domain"
	portsrepo "github.com/jairjanssen9-web/levant---clock-in/internal/core/ports/repositories"
	"github.com/jairjanssen9-web/levant---clock-in/internal/models"
	"github.com/jairjanssen9-web/levant---clock-in/internal/utils/mapping"
	"github.com/jairjanssen9-web/levant---clock-in/pkg/database"
)

type PgxEmployeeRepository struct {
	BaseRepository
}

func newPgxEmployeeRepository(db database.Queryer) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{BaseRepository: BaseRepository{DB: db}}
}

// Ensure PgxEmployeeRepository implements portsrepo.EmployeeRepositoryFacade
var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	modelEmployee := mapping.ToModelEmployee(employee)
	query := `
        INSERT INTO employees (employee_id, name, role, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7);
    `
	_, err := r.DB.Exec(ctx, query,
		modelEmployee.EmployeeID,
		modelEmployee.Name,
		modelEmployee.Role,
		modelEmployee.CreatedAt,
		modelEmployee.CreatedBy,
		modelEmployee.LastUpdatedAt,
		modelEmployee.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save employee: %w", err)
	}
	return nil
}

// FindEmployeeByID retrieves an employee by id. Deactivated employees are
// returned too: historical logs must stay attributable.
func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	query := `
		SELECT employee_id, name, role, created_at, created_by, last_updated_at, last_updated_by, deactivated_at
		FROM employees
		WHERE employee_id = $1;
	`
	var modelEmployee models.Employee
	err := r.DB.QueryRow(ctx, query, employeeID).Scan(
		&modelEmployee.EmployeeID,
		&modelEmployee.Name,
		&modelEmployee.Role,
		&modelEmployee.CreatedAt,
		&modelEmployee.CreatedBy,
		&modelEmployee.LastUpdatedAt,
		&modelEmployee.LastUpdatedBy,
		&modelEmployee.DeactivatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee by ID %s: %w", employeeID, err)
	}

	domainEmployee := mapping.ToDomainEmployee(modelEmployee)
	return &domainEmployee, nil
}

func (r *PgxEmployeeRepository) FindEmployees(ctx context.Context, limit int, offset int, includeDeactivated bool) ([]domain.Employee, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `
        SELECT employee_id, name, role, created_at, created_by, last_updated_at, last_updated_by, deactivated_at
        FROM employees
        WHERE ($3 OR deactivated_at IS NULL)
        ORDER BY name, employee_id
        LIMIT $1 OFFSET $2;
    `
	rows, err := r.DB.Query(ctx, query, limit, offset, includeDeactivated)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	modelEmployees := []models.Employee{}
	for rows.Next() {
		var modelEmployee models.Employee
		err := rows.Scan(
			&modelEmployee.EmployeeID,
			&modelEmployee.Name,
			&modelEmployee.Role,
			&modelEmployee.CreatedAt,
			&modelEmployee.CreatedBy,
			&modelEmployee.LastUpdatedAt,
			&modelEmployee.LastUpdatedBy,
			&modelEmployee.DeactivatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		modelEmployees = append(modelEmployees, modelEmployee)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating employee rows: %w", rows.Err())
	}

	return mapping.ToDomainEmployeeSlice(modelEmployees), nil
}

func (r *PgxEmployeeRepository) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	modelEmployee := mapping.ToModelEmployee(employee)
	query := `
        UPDATE employees
        SET name = $1, role = $2, last_updated_at = $3, last_updated_by = $4
        WHERE employee_id = $5;
    `
	cmdTag, err := r.DB.Exec(ctx, query,
		modelEmployee.Name,
		modelEmployee.Role,
		modelEmployee.LastUpdatedAt,
		modelEmployee.LastUpdatedBy,
		modelEmployee.EmployeeID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update employee query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("employee not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxEmployeeRepository) MarkEmployeeDeactivated(ctx context.Context, employeeID string, deactivatedAt time.Time, deactivatedBy string) error {
	query := `
        UPDATE employees
        SET deactivated_at = $1, last_updated_at = $1, last_updated_by = $2
        WHERE employee_id = $3 AND deactivated_at IS NULL;
    `
	cmdTag, err := r.DB.Exec(ctx, query, deactivatedAt, deactivatedBy, employeeID)
	if err != nil {
		return fmt.Errorf("failed to mark employee as deactivated: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Distinguish an unknown employee from a repeat of an earlier
		// deactivation; the repeat is a no-op.
		var deactivated *time.Time
		err := r.DB.QueryRow(ctx, `SELECT deactivated_at FROM employees WHERE employee_id = $1;`, employeeID).Scan(&deactivated)
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("employee not found: %w", apperrors.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("failed to check employee deactivation state: %w", err)
		}
	}
	return nil
}
