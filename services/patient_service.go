package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/tamanh-his/hisadmin/models"
	"github.com/tamanh-his/hisadmin/repositories"
	"github.com/tamanh-his/hisadmin/userctx"
)

// PatientService manages patient address edits and the geographic lookups
// that feed the address form
type PatientService interface {
	Search(ctx context.Context, pid string) ([]models.Patient, error)
	Provinces(ctx context.Context) ([]models.Province, error)
	Districts(ctx context.Context, provinceCode string) ([]models.District, error)
	Wards(ctx context.Context, districtCode string) ([]models.Ward, error)
	// UpdateAddress runs the audit-logged update workflow for a patient
	// address. The new value comes directly from the client fields; old and
	// new are logged as composite province-district-ward strings.
	UpdateAddress(ctx context.Context, actor userctx.Actor, form *models.AddressForm) error
}

type patientService struct {
	patients repositories.PatientRepository
	geo      repositories.GeoRepository
	audits   repositories.AuditRepository
}

// NewPatientService creates a new patient service
func NewPatientService(patients repositories.PatientRepository, geo repositories.GeoRepository, audits repositories.AuditRepository) PatientService {
	return &patientService{
		patients: patients,
		geo:      geo,
		audits:   audits,
	}
}

func (s *patientService) Search(ctx context.Context, pid string) ([]models.Patient, error) {
	if pid == "" {
		return nil, fmt.Errorf("pid is required")
	}
	return s.patients.SearchByPID(ctx, pid)
}

func (s *patientService) Provinces(ctx context.Context) ([]models.Province, error) {
	return s.geo.ListProvinces(ctx)
}

func (s *patientService) Districts(ctx context.Context, provinceCode string) ([]models.District, error) {
	return s.geo.ListDistricts(ctx, provinceCode)
}

func (s *patientService) Wards(ctx context.Context, districtCode string) ([]models.Ward, error) {
	return s.geo.ListWards(ctx, districtCode)
}

func (s *patientService) UpdateAddress(ctx context.Context, actor userctx.Actor, form *models.AddressForm) error {
	if errs := form.Validate(); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", strings.Join(errs, ", "))
	}

	old, err := s.patients.GetAddress(ctx, form.PID)
	if err != nil {
		return err
	}

	oldValue := fmt.Sprintf("%s-%s-%s", old.ProvinceCode.String, old.DistrictCode.String, old.WardCode.String)
	newValue := fmt.Sprintf("%s-%s-%s", form.ProvinceCode, form.DistrictCode, form.WardCode)

	if err := s.patients.UpdateAddress(ctx, form); err != nil {
		return err
	}

	note := fmt.Sprintf("Sửa địa chỉ cũ: %s -> %s", oldValue, newValue)
	logMutation(ctx, s.audits, actor, "DM_DIACHI", "Sửa địa chỉ", oldValue, newValue, note)

	return nil
}
