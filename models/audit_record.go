package models

import "time"

// AuditRecord is one immutable system_log row. Every successful mutation
// appends exactly one; records are never updated or deleted.
type AuditRecord struct {
	ID         int64     `db:"slog_id"`
	EmployeeID int       `db:"slog_manv"`
	LoginID    string    `db:"slog_userid"`
	Time       time.Time `db:"slog_time"`
	Computer   string    `db:"slog_computer"`
	HostIP     string    `db:"slog_hostip"`
	Module     string    `db:"slog_module"`
	Event      string    `db:"slog_event"`
	OldValue   string    `db:"slog_log_old"`
	NewValue   string    `db:"slog_log_new"`
	Note       string    `db:"slog_note"`
}
