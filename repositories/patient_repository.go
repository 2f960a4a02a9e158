package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tamanh-his/hisadmin/models"
)

// PatientRepository handles patient record lookups and address updates
type PatientRepository interface {
	SearchByPID(ctx context.Context, pid string) ([]models.Patient, error)
	GetAddress(ctx context.Context, pid string) (*models.Address, error)
	UpdateAddress(ctx context.Context, form *models.AddressForm) error
}

type patientRepository struct {
	db *sql.DB
}

// NewPatientRepository creates a new patient repository
func NewPatientRepository(db *sql.DB) PatientRepository {
	return &patientRepository{db: db}
}

// SearchByPID retrieves the patient record joined with geographic names
func (r *patientRepository) SearchByPID(ctx context.Context, pid string) ([]models.Patient, error) {
	query := `
		SELECT
			a.mabn, a.hoten, a.namsinh, a.sonha,
			a.matt, b.tentt,
			a.maqu, c.tenquan,
			a.maphuongxa, d.tenpxa
		FROM btdbn a
		LEFT JOIN btdtt b ON (b.matt = a.matt)
		LEFT JOIN btdquan c ON (c.matt = a.matt AND c.maqu = a.maqu)
		LEFT JOIN btdpxa d ON (d.maqu = a.maqu AND d.maphuongxa = a.maphuongxa)
		WHERE a.mabn = ?
	`

	rows, err := r.db.QueryContext(ctx, query, pid)
	if err != nil {
		return nil, fmt.Errorf("failed to search patient %s: %w", pid, err)
	}
	defer rows.Close()

	var patients []models.Patient
	for rows.Next() {
		var p models.Patient
		err := rows.Scan(
			&p.PID,
			&p.FullName,
			&p.BirthYear,
			&p.HouseNumber,
			&p.ProvinceCode,
			&p.ProvinceName,
			&p.DistrictCode,
			&p.DistrictName,
			&p.WardCode,
			&p.WardName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan patient: %w", err)
		}
		patients = append(patients, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating patients: %w", err)
	}

	return patients, nil
}

// GetAddress retrieves the current geographic codes of a patient record
func (r *patientRepository) GetAddress(ctx context.Context, pid string) (*models.Address, error) {
	query := `SELECT matt, maqu, maphuongxa FROM btdbn WHERE mabn = ?`

	var addr models.Address
	err := r.db.QueryRowContext(ctx, query, pid).Scan(
		&addr.ProvinceCode,
		&addr.DistrictCode,
		&addr.WardCode,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("patient %s not found", pid)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get address for patient %s: %w", pid, err)
	}

	return &addr, nil
}

// UpdateAddress persists the new address as a single-row update
func (r *patientRepository) UpdateAddress(ctx context.Context, form *models.AddressForm) error {
	query := `
		UPDATE btdbn
		SET matt = ?, maqu = ?, maphuongxa = ?, sonha = ?
		WHERE mabn = ?
	`

	_, err := r.db.ExecContext(ctx, query,
		form.ProvinceCode,
		form.DistrictCode,
		form.WardCode,
		form.HouseNumber,
		form.PID,
	)
	if err != nil {
		return fmt.Errorf("failed to update address for patient %s: %w", form.PID, err)
	}

	return nil
}
