package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tamanh-his/hisadmin/models"
)

// UserRepository handles staff login lookups
type UserRepository interface {
	// GetByLoginID returns the user with the given login id, or nil when no
	// such login exists. Absence is not an error; the login flow turns it
	// into an invalid-credentials response.
	GetByLoginID(ctx context.Context, loginID string) (*models.User, error)
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByLoginID(ctx context.Context, loginID string) (*models.User, error) {
	query := `SELECT id, userid, hoten, matkhau FROM dlogin WHERE userid = ?`

	var user models.User
	var hash sql.NullString

	err := r.db.QueryRowContext(ctx, query, loginID).Scan(
		&user.ID,
		&user.LoginID,
		&user.FullName,
		&hash,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get login %q: %w", loginID, err)
	}

	user.PasswordHash = hash.String
	return &user, nil
}
