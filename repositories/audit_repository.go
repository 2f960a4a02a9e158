package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tamanh-his/hisadmin/models"
)

// AuditRepository appends immutable audit records. Records are never
// updated or deleted by this application.
type AuditRepository interface {
	// Append resolves the actor's login id to an employee id and writes one
	// record with a server-side timestamp. An unresolvable actor fails the
	// append; the caller decides whether that fails the mutation.
	Append(ctx context.Context, entry *models.AuditRecord) error
	// Latest returns the most recently appended record
	Latest(ctx context.Context) (*models.AuditRecord, error)
}

type auditRepository struct {
	db *sql.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *sql.DB) AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Append(ctx context.Context, entry *models.AuditRecord) error {
	var employeeID int
	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM dlogin WHERE userid = ?`, entry.LoginID,
	).Scan(&employeeID)
	if err == sql.ErrNoRows {
		return fmt.Errorf("audit actor %q not found", entry.LoginID)
	}
	if err != nil {
		return fmt.Errorf("failed to resolve audit actor %q: %w", entry.LoginID, err)
	}

	query := `
		INSERT INTO system_log (
			slog_manv, slog_userid, slog_computer, slog_hostip,
			slog_module, slog_event, slog_log_old, slog_log_new, slog_note
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		employeeID,
		entry.LoginID,
		entry.Computer,
		entry.HostIP,
		entry.Module,
		entry.Event,
		entry.OldValue,
		entry.NewValue,
		entry.Note,
	)
	if err != nil {
		return fmt.Errorf("failed to append audit record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get audit record id: %w", err)
	}

	entry.ID = id
	entry.EmployeeID = employeeID
	return nil
}

func (r *auditRepository) Latest(ctx context.Context) (*models.AuditRecord, error) {
	query := `
		SELECT slog_id, slog_manv, slog_userid, slog_time, slog_computer,
		       slog_hostip, slog_module, slog_event, slog_log_old,
		       slog_log_new, slog_note
		FROM system_log
		ORDER BY slog_id DESC
		LIMIT 1
	`

	var entry models.AuditRecord
	err := r.db.QueryRowContext(ctx, query).Scan(
		&entry.ID,
		&entry.EmployeeID,
		&entry.LoginID,
		&entry.Time,
		&entry.Computer,
		&entry.HostIP,
		&entry.Module,
		&entry.Event,
		&entry.OldValue,
		&entry.NewValue,
		&entry.Note,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("audit log is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest audit record: %w", err)
	}

	return &entry, nil
}
