package services

import (
	"context"
	"database/sql"

	"github.com/stretchr/testify/mock"

	"github.com/tamanh-his/hisadmin/models"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByLoginID(ctx context.Context, loginID string) (*models.User, error) {
	args := m.Called(ctx, loginID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) ListAssignments(ctx context.Context) ([]models.RoomAssignment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RoomAssignment), args.Error(1)
}

func (m *MockRoomRepository) ListDepartments(ctx context.Context) ([]models.Department, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Department), args.Error(1)
}

func (m *MockRoomRepository) GetDeptCode(ctx context.Context, roomID string) (sql.NullString, bool, error) {
	args := m.Called(ctx, roomID)
	return args.Get(0).(sql.NullString), args.Bool(1), args.Error(2)
}

func (m *MockRoomRepository) SetDeptCode(ctx context.Context, roomID string, code sql.NullString) error {
	args := m.Called(ctx, roomID, code)
	return args.Error(0)
}

type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) Append(ctx context.Context, entry *models.AuditRecord) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditRepository) Latest(ctx context.Context) (*models.AuditRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AuditRecord), args.Error(1)
}

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) SearchByPID(ctx context.Context, pid string) ([]models.Patient, error) {
	args := m.Called(ctx, pid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Patient), args.Error(1)
}

func (m *MockPatientRepository) GetAddress(ctx context.Context, pid string) (*models.Address, error) {
	args := m.Called(ctx, pid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Address), args.Error(1)
}

func (m *MockPatientRepository) UpdateAddress(ctx context.Context, form *models.AddressForm) error {
	args := m.Called(ctx, form)
	return args.Error(0)
}

type MockGeoRepository struct {
	mock.Mock
}

func (m *MockGeoRepository) ListProvinces(ctx context.Context) ([]models.Province, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Province), args.Error(1)
}

func (m *MockGeoRepository) ListDistricts(ctx context.Context, provinceCode string) ([]models.District, error) {
	args := m.Called(ctx, provinceCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.District), args.Error(1)
}

func (m *MockGeoRepository) ListWards(ctx context.Context, districtCode string) ([]models.Ward, error) {
	args := m.Called(ctx, districtCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Ward), args.Error(1)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) ResolvePartition(ctx context.Context, year, month int) (string, error) {
	args := m.Called(ctx, year, month)
	return args.String(0), args.Error(1)
}

func (m *MockOrderRepository) CreatePartition(ctx context.Context, year, month int) (string, error) {
	args := m.Called(ctx, year, month)
	return args.String(0), args.Error(1)
}

func (m *MockOrderRepository) Search(ctx context.Context, namespace, pid string, month, year int) ([]models.LabOrder, error) {
	args := m.Called(ctx, namespace, pid, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.LabOrder), args.Error(1)
}

func (m *MockOrderRepository) GetSpecimen(ctx context.Context, namespace, orderID string) (sql.NullString, error) {
	args := m.Called(ctx, namespace, orderID)
	return args.Get(0).(sql.NullString), args.Error(1)
}

func (m *MockOrderRepository) SetSpecimen(ctx context.Context, namespace, orderID string, specimenID sql.NullString) error {
	args := m.Called(ctx, namespace, orderID, specimenID)
	return args.Error(0)
}

func (m *MockOrderRepository) ListSpecimenTypes(ctx context.Context) ([]models.SpecimenType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SpecimenType), args.Error(1)
}
