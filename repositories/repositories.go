package repositories

import (
	"database/sql"
)

// Repositories struct holds all repository interfaces
type Repositories struct {
	User    UserRepository
	Room    RoomRepository
	Geo     GeoRepository
	Patient PatientRepository
	Order   OrderRepository
	Audit   AuditRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		User:    NewUserRepository(db),
		Room:    NewRoomRepository(db),
		Geo:     NewGeoRepository(db),
		Patient: NewPatientRepository(db),
		Order:   NewOrderRepository(db),
		Audit:   NewAuditRepository(db),
	}
}
