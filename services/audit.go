package services

import (
	"context"
	"database/sql"
	"log"
	"os"

	"github.com/tamanh-his/hisadmin/models"
	"github.com/tamanh-his/hisadmin/repositories"
	"github.com/tamanh-his/hisadmin/userctx"
)

// auditValue renders a field value for the audit log, substituting the
// literal NULL sentinel for absent or empty values
func auditValue(v sql.NullString) string {
	if v.Valid && v.String != "" {
		return v.String
	}
	return "NULL"
}

// logMutation appends one audit record for a mutation that has already been
// committed. A failed append is logged server-side and swallowed: the
// mutation stands, the audit record may be missing.
func logMutation(ctx context.Context, audits repositories.AuditRepository, actor userctx.Actor, module, event, oldValue, newValue, note string) {
	computer, _ := os.Hostname()

	entry := &models.AuditRecord{
		LoginID:  actor.LoginID,
		Computer: computer,
		HostIP:   actor.HostIP,
		Module:   module,
		Event:    event,
		OldValue: oldValue,
		NewValue: newValue,
		Note:     note,
	}

	if err := audits.Append(ctx, entry); err != nil {
		log.Printf("Failed to write audit record (%s/%s): %v", module, event, err)
	}
}
