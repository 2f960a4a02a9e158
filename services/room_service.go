package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/tamanh-his/hisadmin/mapping"
	"github.com/tamanh-his/hisadmin/models"
	"github.com/tamanh-his/hisadmin/repositories"
	"github.com/tamanh-his/hisadmin/userctx"
)

// RoomService manages supply room department assignments
type RoomService interface {
	ListRooms(ctx context.Context) ([]models.RoomAssignment, error)
	ListDepartments(ctx context.Context) ([]models.Department, error)
	// UpdateAssignment runs the audit-logged update workflow for one room:
	// read the current code, derive the new one from the action, persist,
	// append an audit record
	UpdateAssignment(ctx context.Context, actor userctx.Actor, req *models.RoomUpdateRequest) error
}

type roomService struct {
	rooms  repositories.RoomRepository
	audits repositories.AuditRepository
	codes  *mapping.DeptCodes
}

// NewRoomService creates a new room service
func NewRoomService(rooms repositories.RoomRepository, audits repositories.AuditRepository, codes *mapping.DeptCodes) RoomService {
	return &roomService{
		rooms:  rooms,
		audits: audits,
		codes:  codes,
	}
}

func (s *roomService) ListRooms(ctx context.Context) ([]models.RoomAssignment, error) {
	return s.rooms.ListAssignments(ctx)
}

func (s *roomService) ListDepartments(ctx context.Context) ([]models.Department, error) {
	return s.rooms.ListDepartments(ctx)
}

func (s *roomService) UpdateAssignment(ctx context.Context, actor userctx.Actor, req *models.RoomUpdateRequest) error {
	if errs := req.Validate(); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", strings.Join(errs, ", "))
	}

	action, err := mapping.ParseAction(req.Action)
	if err != nil {
		return err
	}

	// A missing room row gives an absent old value; the update below then
	// affects no rows, which is not treated as a failure.
	oldCode, _, err := s.rooms.GetDeptCode(ctx, req.ID)
	if err != nil {
		return err
	}

	newCode, err := s.codes.Derive(action, req.ID, req.DeptCode)
	if err != nil {
		return err
	}

	if err := s.rooms.SetDeptCode(ctx, req.ID, newCode); err != nil {
		return err
	}

	oldValue := auditValue(oldCode)
	newValue := auditValue(newCode)
	note := fmt.Sprintf("Cập nhật: %s -> %s", oldValue, newValue)
	logMutation(ctx, s.audits, actor, "DM_VTYT", action.EventLabel(), oldValue, newValue, note)

	return nil
}
