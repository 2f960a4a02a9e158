package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tamanh-his/hisadmin/models"
)

// OrderRepository handles lab orders, which live in monthly partition
// tables addressed through ResolvePartition. Every method taking a
// namespace expects one returned by ResolvePartition; nothing else may be
// interpolated into the SQL.
type OrderRepository interface {
	// ResolvePartition validates (year, month) and returns the namespace of
	// that month's partition, failing if the partition does not exist.
	ResolvePartition(ctx context.Context, year, month int) (string, error)
	// CreatePartition creates the partition table for a month and returns
	// its namespace. Used by provisioning and tests.
	CreatePartition(ctx context.Context, year, month int) (string, error)
	Search(ctx context.Context, namespace, pid string, month, year int) ([]models.LabOrder, error)
	GetSpecimen(ctx context.Context, namespace, orderID string) (sql.NullString, error)
	SetSpecimen(ctx context.Context, namespace, orderID string, specimenID sql.NullString) error
	ListSpecimenTypes(ctx context.Context) ([]models.SpecimenType, error)
}

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new lab order repository
func NewOrderRepository(db *sql.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) ResolvePartition(ctx context.Context, year, month int) (string, error) {
	namespace, err := PartitionNamespace(year, month)
	if err != nil {
		return "", err
	}

	var one int
	err = r.db.QueryRowContext(ctx,
		`SELECT 1 FROM sqlite_master WHERE type = 'table' AND name = ?`,
		namespace+"_chidinh",
	).Scan(&one)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("partition %s does not exist", namespace)
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve partition %s: %w", namespace, err)
	}

	return namespace, nil
}

func (r *orderRepository) CreatePartition(ctx context.Context, year, month int) (string, error) {
	namespace, err := PartitionNamespace(year, month)
	if err != nil {
		return "", err
	}

	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s_chidinh (
			id TEXT PRIMARY KEY,
			mabn TEXT NOT NULL,
			mavp TEXT,
			benhpham TEXT,
			madoituong TEXT,
			paid TEXT,
			done TEXT,
			iddienbien TEXT,
			ngay DATETIME,
			ngaynhanmau DATETIME,
			ngaydockq DATETIME,
			mabs TEXT,
			makp TEXT,
			maphieu TEXT,
			maql TEXT
		)
	`, namespace)

	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return "", fmt.Errorf("failed to create partition %s: %w", namespace, err)
	}

	return namespace, nil
}

// Search retrieves a patient's lab orders within one monthly partition,
// joined with the price list and the patient record, ordered by order date
func (r *orderRepository) Search(ctx context.Context, namespace, pid string, month, year int) ([]models.LabOrder, error) {
	query := fmt.Sprintf(`
		SELECT
			a.id,
			b.ten,
			c.hoten,
			a.mavp,
			a.benhpham,
			a.madoituong,
			a.paid,
			a.done,
			a.iddienbien,
			strftime('%%d/%%m/%%Y %%H:%%M:%%S', a.ngay),
			strftime('%%d/%%m/%%Y %%H:%%M:%%S', a.ngaynhanmau),
			strftime('%%d/%%m/%%Y %%H:%%M:%%S', a.ngaydockq),
			a.mabs,
			a.makp,
			a.maphieu,
			a.maql
		FROM %s_chidinh a
		JOIN v_giavp b ON a.mavp = b.id
		JOIN btdbn c ON a.mabn = c.mabn
		WHERE a.mabn = ?
		  AND CAST(strftime('%%m', a.ngay) AS INTEGER) = ?
		  AND CAST(strftime('%%Y', a.ngay) AS INTEGER) = ?
		ORDER BY a.ngay
	`, namespace)

	rows, err := r.db.QueryContext(ctx, query, pid, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to search orders in %s: %w", namespace, err)
	}
	defer rows.Close()

	var orders []models.LabOrder
	for rows.Next() {
		var o models.LabOrder
		err := rows.Scan(
			&o.ID,
			&o.ServiceName,
			&o.PatientName,
			&o.ServiceCode,
			&o.Specimen,
			&o.PatientType,
			&o.Paid,
			&o.Done,
			&o.ProgressID,
			&o.OrderedAt,
			&o.SampleReceivedAt,
			&o.ResultReadAt,
			&o.DoctorCode,
			&o.DeptCode,
			&o.SlipCode,
			&o.ManagementCode,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	return orders, nil
}

// GetSpecimen returns the current specimen type of an order. A missing
// order yields a NULL old value, matching the audit sentinel behavior.
func (r *orderRepository) GetSpecimen(ctx context.Context, namespace, orderID string) (sql.NullString, error) {
	query := fmt.Sprintf(`SELECT benhpham FROM %s_chidinh WHERE id = ?`, namespace)

	var specimen sql.NullString
	err := r.db.QueryRowContext(ctx, query, orderID).Scan(&specimen)
	if err == sql.ErrNoRows {
		return sql.NullString{}, nil
	}
	if err != nil {
		return sql.NullString{}, fmt.Errorf("failed to get specimen for order %s: %w", orderID, err)
	}

	return specimen, nil
}

// SetSpecimen persists the new specimen type as a single-row update
func (r *orderRepository) SetSpecimen(ctx context.Context, namespace, orderID string, specimenID sql.NullString) error {
	query := fmt.Sprintf(`UPDATE %s_chidinh SET benhpham = ? WHERE id = ?`, namespace)

	if _, err := r.db.ExecContext(ctx, query, specimenID, orderID); err != nil {
		return fmt.Errorf("failed to update specimen for order %s: %w", orderID, err)
	}

	return nil
}

// ListSpecimenTypes retrieves all specimen types ordered by name
func (r *orderRepository) ListSpecimenTypes(ctx context.Context) ([]models.SpecimenType, error) {
	query := `SELECT id, ten FROM dmbenhpham ORDER BY ten`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query specimen types: %w", err)
	}
	defer rows.Close()

	var types []models.SpecimenType
	for rows.Next() {
		var t models.SpecimenType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("failed to scan specimen type: %w", err)
		}
		types = append(types, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating specimen types: %w", err)
	}

	return types, nil
}
