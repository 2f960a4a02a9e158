package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tamanh-his/hisadmin/models"
	"github.com/tamanh-his/hisadmin/repositories"
	"github.com/tamanh-his/hisadmin/userctx"
)

// OrderService manages lab-order specimen type edits. Orders live in
// monthly partitions; every operation resolves the partition first.
type OrderService interface {
	// Search returns a patient's orders for one month together with the
	// patient name from the first row
	Search(ctx context.Context, pid string, month, year int) ([]models.LabOrder, string, error)
	SpecimenTypes(ctx context.Context) ([]models.SpecimenType, error)
	// UpdateSpecimen runs the audit-logged update workflow for one order's
	// specimen type within the resolved partition
	UpdateSpecimen(ctx context.Context, actor userctx.Actor, orderID, specimenID string, month, year int) error
}

type orderService struct {
	orders repositories.OrderRepository
	audits repositories.AuditRepository
}

// NewOrderService creates a new order service
func NewOrderService(orders repositories.OrderRepository, audits repositories.AuditRepository) OrderService {
	return &orderService{
		orders: orders,
		audits: audits,
	}
}

func (s *orderService) Search(ctx context.Context, pid string, month, year int) ([]models.LabOrder, string, error) {
	if pid == "" {
		return nil, "", fmt.Errorf("pid is required")
	}

	namespace, err := s.orders.ResolvePartition(ctx, year, month)
	if err != nil {
		return nil, "", err
	}

	orders, err := s.orders.Search(ctx, namespace, pid, month, year)
	if err != nil {
		return nil, "", err
	}

	var patientName string
	if len(orders) > 0 {
		patientName = orders[0].PatientName
	}

	return orders, patientName, nil
}

func (s *orderService) SpecimenTypes(ctx context.Context) ([]models.SpecimenType, error) {
	return s.orders.ListSpecimenTypes(ctx)
}

func (s *orderService) UpdateSpecimen(ctx context.Context, actor userctx.Actor, orderID, specimenID string, month, year int) error {
	if orderID == "" {
		return fmt.Errorf("chidinhId is required")
	}

	namespace, err := s.orders.ResolvePartition(ctx, year, month)
	if err != nil {
		return err
	}

	old, err := s.orders.GetSpecimen(ctx, namespace, orderID)
	if err != nil {
		return err
	}

	newSpecimen := sql.NullString{String: specimenID, Valid: specimenID != ""}

	if err := s.orders.SetSpecimen(ctx, namespace, orderID, newSpecimen); err != nil {
		return err
	}

	oldValue := auditValue(old)
	newValue := auditValue(newSpecimen)
	note := fmt.Sprintf("Sửa bệnh phẩm ID %s: %s -> %s", orderID, oldValue, newValue)
	logMutation(ctx, s.audits, actor, "DM_BP", "Sửa bệnh phẩm", oldValue, newValue, note)

	return nil
}
