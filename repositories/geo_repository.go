package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tamanh-his/hisadmin/models"
)

// GeoRepository serves the cascading province/district/ward lookups.
// Rows flagged as hidden are filtered out; results are ordered by code.
type GeoRepository interface {
	ListProvinces(ctx context.Context) ([]models.Province, error)
	ListDistricts(ctx context.Context, provinceCode string) ([]models.District, error)
	ListWards(ctx context.Context, districtCode string) ([]models.Ward, error)
}

type geoRepository struct {
	db *sql.DB
}

// NewGeoRepository creates a new geographic lookup repository
func NewGeoRepository(db *sql.DB) GeoRepository {
	return &geoRepository{db: db}
}

func (r *geoRepository) ListProvinces(ctx context.Context) ([]models.Province, error) {
	query := `SELECT matt, tentt FROM btdtt WHERE hide = 0 ORDER BY matt`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query provinces: %w", err)
	}
	defer rows.Close()

	var provinces []models.Province
	for rows.Next() {
		var p models.Province
		if err := rows.Scan(&p.Code, &p.Name); err != nil {
			return nil, fmt.Errorf("failed to scan province: %w", err)
		}
		provinces = append(provinces, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating provinces: %w", err)
	}

	return provinces, nil
}

func (r *geoRepository) ListDistricts(ctx context.Context, provinceCode string) ([]models.District, error) {
	query := `
		SELECT maqu, matt, tenquan
		FROM btdquan
		WHERE hide = 0 AND matt = ?
		ORDER BY maqu
	`

	rows, err := r.db.QueryContext(ctx, query, provinceCode)
	if err != nil {
		return nil, fmt.Errorf("failed to query districts: %w", err)
	}
	defer rows.Close()

	var districts []models.District
	for rows.Next() {
		var d models.District
		if err := rows.Scan(&d.Code, &d.ProvinceCode, &d.Name); err != nil {
			return nil, fmt.Errorf("failed to scan district: %w", err)
		}
		districts = append(districts, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating districts: %w", err)
	}

	return districts, nil
}

func (r *geoRepository) ListWards(ctx context.Context, districtCode string) ([]models.Ward, error) {
	query := `
		SELECT maphuongxa, maqu, tenpxa
		FROM btdpxa
		WHERE hide = 0 AND maqu = ?
		ORDER BY maphuongxa
	`

	rows, err := r.db.QueryContext(ctx, query, districtCode)
	if err != nil {
		return nil, fmt.Errorf("failed to query wards: %w", err)
	}
	defer rows.Close()

	var wards []models.Ward
	for rows.Next() {
		var w models.Ward
		if err := rows.Scan(&w.Code, &w.DistrictCode, &w.Name); err != nil {
			return nil, fmt.Errorf("failed to scan ward: %w", err)
		}
		wards = append(wards, w)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating wards: %w", err)
	}

	return wards, nil
}
