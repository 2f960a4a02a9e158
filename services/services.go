package services

import (
	"github.com/tamanh-his/hisadmin/mapping"
	"github.com/tamanh-his/hisadmin/repositories"
)

// Services holds all service instances
type Services struct {
	Auth    AuthService
	Room    RoomService
	Patient PatientService
	Order   OrderService
}

// NewServices creates and initializes all service instances. The department
// code table is built once at startup and shared read-only.
func NewServices(repos *repositories.Repositories, codes *mapping.DeptCodes, verifyPassword bool) *Services {
	return &Services{
		Auth:    NewAuthService(repos.User, verifyPassword),
		Room:    NewRoomService(repos.Room, repos.Audit, codes),
		Patient: NewPatientService(repos.Patient, repos.Geo, repos.Audit),
		Order:   NewOrderService(repos.Order, repos.Audit),
	}
}
