package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jairjanssen9-web/levant---clock-in/internal/apperrors"
	"github.com/jairjanssen9-web/levant---clock-in/internal/core/domain"
	portsrepo "github.com/jairjanssen9-web/levant---clock-in/internal/core/ports/repositories"
	"github.com/jairjanssen9-web/levant---clock-in/internal/models"
	"github.com/jairjanssen9-web/levant---clock-in/internal/utils/mapping"
	"github.com/jairjanssen9-web/levant---clock-in/pkg/database"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"

	// Partial unique index backing the single-active-session invariant.
	activeSessionIndexName = "one_active_log_per_employee"
)

type PgxTimeLogRepository struct {
	BaseRepository
}

func newPgxTimeLogRepository(db database.Queryer) portsrepo.TimeLogRepositoryFacade {
	return &PgxTimeLogRepository{BaseRepository: BaseRepository{DB: db}}
}

// Ensure PgxTimeLogRepository implements portsrepo.TimeLogRepositoryFacade
var _ portsrepo.TimeLogRepositoryFacade = (*PgxTimeLogRepository)(nil)

// translateTimeLogPgError maps database constraint violations onto the
// domain error set. The active-session index violation is how a concurrent
// duplicate clock-in loses.
func translateTimeLogPgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case uniqueViolationCode:
		if pgErr.ConstraintName == activeSessionIndexName || pgErr.ConstraintName == "" {
			return apperrors.ErrActiveSessionExists
		}
		return apperrors.ErrDuplicate
	case foreignKeyViolationCode:
		return apperrors.ErrNotFound
	}
	return err
}

const timeLogColumns = `log_id, employee_id, log_date, clock_in, clock_out, status, flagged, created_at, created_by, last_updated_at, last_updated_by`

func scanTimeLog(row pgx.Row) (*models.TimeLog, error) {
	var m models.TimeLog
	err := row.Scan(
		&m.LogID,
		&m.EmployeeID,
		&m.LogDate,
		&m.ClockIn,
		&m.ClockOut,
		&m.Status,
		&m.Flagged,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxTimeLogRepository) SaveTimeLog(ctx context.Context, log domain.TimeLog) error {
	modelLog := mapping.ToModelTimeLog(log)
	query := `
        INSERT INTO time_logs (` + timeLogColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	// log_date goes over the wire as a date so the server never shifts the
	// clock-in calendar date into its own time zone.
	_, err := r.DB.Exec(ctx, query,
		modelLog.LogID,
		modelLog.EmployeeID,
		pgtype.Date{Time: modelLog.LogDate, Valid: true},
		modelLog.ClockIn,
		modelLog.ClockOut,
		modelLog.Status,
		modelLog.Flagged,
		modelLog.CreatedAt,
		modelLog.CreatedBy,
		modelLog.LastUpdatedAt,
		modelLog.LastUpdatedBy,
	)
	if err != nil {
		if translated := translateTimeLogPgError(err); translated != err {
			return translated
		}
		return fmt.Errorf("failed to save time log: %w", err)
	}
	return nil
}

func (r *PgxTimeLogRepository) CompleteTimeLog(ctx context.Context, logID string, clockOut time.Time, updatedAt time.Time, updatedBy string) error {
	query := `
        UPDATE time_logs
        SET clock_out = $1, status = $2, last_updated_at = $3, last_updated_by = $4
        WHERE log_id = $5 AND status = $6;
    `
	cmdTag, err := r.DB.Exec(ctx, query,
		clockOut,
		string(domain.TimeLogCompleted),
		updatedAt,
		updatedBy,
		logID,
		string(domain.TimeLogActive),
	)
	if err != nil {
		return fmt.Errorf("failed to complete time log %s: %w", logID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("time log not found or not active: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxTimeLogRepository) FindTimeLogByID(ctx context.Context, logID string) (*domain.TimeLog, error) {
	query := `SELECT ` + timeLogColumns + ` FROM time_logs WHERE log_id = $1;`
	modelLog, err := scanTimeLog(r.DB.QueryRow(ctx, query, logID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find time log by ID %s: %w", logID, err)
	}

	domainLog := mapping.ToDomainTimeLog(*modelLog)
	edits, err := r.findEdits(ctx, []string{logID})
	if err != nil {
		return nil, err
	}
	domainLog.Edits = edits[logID]
	if domainLog.Edits == nil {
		domainLog.Edits = []domain.EditRecord{}
	}
	return &domainLog, nil
}

func (r *PgxTimeLogRepository) FindActiveTimeLogByEmployee(ctx context.Context, employeeID string) (*domain.TimeLog, error) {
	query := `SELECT ` + timeLogColumns + ` FROM time_logs WHERE employee_id = $1 AND status = $2;`
	modelLog, err := scanTimeLog(r.DB.QueryRow(ctx, query, employeeID, string(domain.TimeLogActive)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find active time log for employee %s: %w", employeeID, err)
	}

	domainLog := mapping.ToDomainTimeLog(*modelLog)
	edits, err := r.findEdits(ctx, []string{domainLog.LogID})
	if err != nil {
		return nil, err
	}
	domainLog.Edits = edits[domainLog.LogID]
	if domainLog.Edits == nil {
		domainLog.Edits = []domain.EditRecord{}
	}
	return &domainLog, nil
}

func (r *PgxTimeLogRepository) FindActiveTimeLogs(ctx context.Context) ([]domain.TimeLog, error) {
	query := `SELECT ` + timeLogColumns + ` FROM time_logs WHERE status = $1 ORDER BY created_at;`
	rows, err := r.DB.Query(ctx, query, string(domain.TimeLogActive))
	if err != nil {
		return nil, fmt.Errorf("failed to query active time logs: %w", err)
	}
	defer rows.Close()

	return r.collectTimeLogs(rows)
}

func (r *PgxTimeLogRepository) FindTimeLogs(ctx context.Context, filter portsrepo.TimeLogFilter) ([]domain.TimeLog, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	// Optional filters collapse to always-true predicates when unset. The
	// window bounds go over the wire as dates so the comparison against the
	// log_date column never involves the server's time zone.
	query := `
        SELECT ` + timeLogColumns + `
        FROM time_logs
        WHERE ($1 = '' OR employee_id = $1)
          AND ($2::date IS NULL OR log_date >= $2)
          AND ($3::date IS NULL OR log_date <= $3)
        ORDER BY created_at
        LIMIT $4 OFFSET $5;
    `
	var from, to pgtype.Date
	if !filter.From.IsZero() {
		from = pgtype.Date{Time: filter.From, Valid: true}
	}
	if !filter.To.IsZero() {
		to = pgtype.Date{Time: filter.To, Valid: true}
	}

	rows, err := r.DB.Query(ctx, query, filter.EmployeeID, from, to, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query time logs: %w", err)
	}
	defer rows.Close()

	logs, err := r.collectTimeLogs(rows)
	if err != nil {
		return nil, err
	}
	if len(logs) == 0 {
		return logs, nil
	}

	logIDs := make([]string, len(logs))
	for i := range logs {
		logIDs[i] = logs[i].LogID
	}
	editsByLog, err := r.findEdits(ctx, logIDs)
	if err != nil {
		return nil, err
	}
	for i := range logs {
		if edits, ok := editsByLog[logs[i].LogID]; ok {
			logs[i].Edits = edits
		}
	}
	return logs, nil
}

// ApplyEdit overwrites the log row and appends the audit record in a single
// transaction. When the edited log ends up active, the transaction first
// locks and inspects any other active log of the same employee: finding one
// aborts with ErrActiveSessionExists, leaving both logs untouched. The
// partial unique index is the backstop for concurrent writers.
func (r *PgxTimeLogRepository) ApplyEdit(ctx context.Context, log domain.TimeLog, edit domain.EditRecord) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Ignored once the transaction is committed

	if log.Status == domain.TimeLogActive {
		conflictQuery := `
            SELECT log_id FROM time_logs
            WHERE employee_id = $1 AND status = $2 AND log_id <> $3
            FOR UPDATE;
        `
		var conflictingID string
		err := tx.QueryRow(ctx, conflictQuery, log.EmployeeID, string(domain.TimeLogActive), log.LogID).Scan(&conflictingID)
		if err == nil {
			return apperrors.ErrActiveSessionExists
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("failed to check for conflicting active log: %w", err)
		}
	}

	modelLog := mapping.ToModelTimeLog(log)
	updateQuery := `
        UPDATE time_logs
        SET clock_in = $1, clock_out = $2, status = $3, flagged = $4, last_updated_at = $5, last_updated_by = $6
        WHERE log_id = $7;
    `
	cmdTag, err := tx.Exec(ctx, updateQuery,
		modelLog.ClockIn,
		modelLog.ClockOut,
		modelLog.Status,
		modelLog.Flagged,
		modelLog.LastUpdatedAt,
		modelLog.LastUpdatedBy,
		modelLog.LogID,
	)
	if err != nil {
		if translated := translateTimeLogPgError(err); translated != err {
			return translated
		}
		return fmt.Errorf("failed to update time log %s: %w", log.LogID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("time log not found: %w", apperrors.ErrNotFound)
	}

	modelEdit := mapping.ToModelTimeLogEdit(edit)
	insertEditQuery := `
        INSERT INTO time_log_edits (edit_id, log_id, edited_at, previous_in, previous_out, reason, admin_id, admin_name)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err = tx.Exec(ctx, insertEditQuery,
		modelEdit.EditID,
		modelEdit.LogID,
		modelEdit.EditedAt,
		modelEdit.PreviousIn,
		modelEdit.PreviousOut,
		modelEdit.Reason,
		modelEdit.AdminID,
		modelEdit.AdminName,
	)
	if err != nil {
		return fmt.Errorf("failed to insert edit record for log %s: %w", log.LogID, err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxTimeLogRepository) collectTimeLogs(rows pgx.Rows) ([]domain.TimeLog, error) {
	logs := []domain.TimeLog{}
	for rows.Next() {
		modelLog, err := scanTimeLog(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time log row: %w", err)
		}
		logs = append(logs, mapping.ToDomainTimeLog(*modelLog))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating time log rows: %w", rows.Err())
	}
	return logs, nil
}

// findEdits loads the audit trails for the given logs, in insertion order.
func (r *PgxTimeLogRepository) findEdits(ctx context.Context, logIDs []string) (map[string][]domain.EditRecord, error) {
	query := `
        SELECT edit_id, log_id, seq, edited_at, previous_in, previous_out, reason, admin_id, admin_name
        FROM time_log_edits
        WHERE log_id = ANY($1)
        ORDER BY log_id, seq;
    `
	rows, err := r.DB.Query(ctx, query, logIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query time log edits: %w", err)
	}
	defer rows.Close()

	editsByLog := make(map[string][]domain.EditRecord)
	for rows.Next() {
		var m models.TimeLogEdit
		err := rows.Scan(
			&m.EditID,
			&m.LogID,
			&m.Seq,
			&m.EditedAt,
			&m.PreviousIn,
			&m.PreviousOut,
			&m.Reason,
			&m.AdminID,
			&m.AdminName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time log edit row: %w", err)
		}
		editsByLog[m.LogID] = append(editsByLog[m.LogID], mapping.ToDomainEditRecord(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating time log edit rows: %w", rows.Err())
	}
	return editsByLog, nil
}
