package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/tamanh-his/hisadmin/models"
)

// Rooms kept off the management page (storage and technical rooms)
var hiddenRoomIDs = []string{"16", "46", "123", "124", "127", "128", "151"}

// RoomRepository handles supply room assignment persistence
type RoomRepository interface {
	ListAssignments(ctx context.Context) ([]models.RoomAssignment, error)
	ListDepartments(ctx context.Context) ([]models.Department, error)
	// GetDeptCode returns the current department code for a room. found is
	// false when the room row itself is missing; the update workflow treats
	// that as an absent old value rather than a hard error.
	GetDeptCode(ctx context.Context, roomID string) (code sql.NullString, found bool, err error)
	SetDeptCode(ctx context.Context, roomID string, code sql.NullString) error
}

type roomRepository struct {
	db *sql.DB
}

// NewRoomRepository creates a new room repository
func NewRoomRepository(db *sql.DB) RoomRepository {
	return &roomRepository{db: db}
}

// ListAssignments retrieves all visible supply rooms ordered by name
func (r *roomRepository) ListAssignments(ctx context.Context) ([]models.RoomAssignment, error) {
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(hiddenRoomIDs)), ",")
	query := fmt.Sprintf(`
		SELECT id, ma, ten, makp
		FROM d_duockp
		WHERE id NOT IN (%s)
		ORDER BY ten
	`, placeholders)

	args := make([]interface{}, len(hiddenRoomIDs))
	for i, id := range hiddenRoomIDs {
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query supply rooms: %w", err)
	}
	defer rows.Close()

	var rooms []models.RoomAssignment
	for rows.Next() {
		var room models.RoomAssignment
		if err := rows.Scan(&room.ID, &room.Code, &room.Name, &room.DeptCode); err != nil {
			return nil, fmt.Errorf("failed to scan supply room: %w", err)
		}
		rooms = append(rooms, room)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating supply rooms: %w", err)
	}

	return rooms, nil
}

// ListDepartments retrieves all departments ordered by name
func (r *roomRepository) ListDepartments(ctx context.Context) ([]models.Department, error) {
	query := `SELECT makp, tenkp FROM btdkp_bv ORDER BY tenkp`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query departments: %w", err)
	}
	defer rows.Close()

	var departments []models.Department
	for rows.Next() {
		var dept models.Department
		if err := rows.Scan(&dept.Code, &dept.Name); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, dept)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating departments: %w", err)
	}

	return departments, nil
}

func (r *roomRepository) GetDeptCode(ctx context.Context, roomID string) (sql.NullString, bool, error) {
	query := `SELECT makp FROM d_duockp WHERE id = ?`

	var code sql.NullString
	err := r.db.QueryRowContext(ctx, query, roomID).Scan(&code)
	if err == sql.ErrNoRows {
		return sql.NullString{}, false, nil
	}
	if err != nil {
		return sql.NullString{}, false, fmt.Errorf("failed to get department code for room %s: %w", roomID, err)
	}

	return code, true, nil
}

// SetDeptCode persists the new department code as a single-row update
func (r *roomRepository) SetDeptCode(ctx context.Context, roomID string, code sql.NullString) error {
	query := `UPDATE d_duockp SET makp = ? WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, code, roomID); err != nil {
		return fmt.Errorf("failed to update department code for room %s: %w", roomID, err)
	}

	return nil
}
