package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/tamanh-his/hisadmin/models"
	"github.com/tamanh-his/hisadmin/repositories"
)

// ErrInvalidCredentials is returned when a login attempt fails
var ErrInvalidCredentials = errors.New("invalid login id or password")

// AuthService authenticates staff members against the login table
type AuthService interface {
	// Login authenticates a login id and password. The password is only
	// compared against the stored bcrypt hash when verification is enabled;
	// the legacy contract accepts any password for a known login id.
	Login(ctx context.Context, loginID, password string) (*models.User, error)
	// ResolveLogin maps an externally authenticated identity (SSO) to a
	// staff login record
	ResolveLogin(ctx context.Context, loginID string) (*models.User, error)
}

type authService struct {
	users          repositories.UserRepository
	verifyPassword bool
}

// NewAuthService creates a new auth service
func NewAuthService(users repositories.UserRepository, verifyPassword bool) AuthService {
	return &authService{
		users:          users,
		verifyPassword: verifyPassword,
	}
}

func (s *authService) Login(ctx context.Context, loginID, password string) (*models.User, error) {
	user, err := s.users.GetByLoginID(ctx, loginID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if s.verifyPassword {
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
			return nil, ErrInvalidCredentials
		}
	}

	return user, nil
}

func (s *authService) ResolveLogin(ctx context.Context, loginID string) (*models.User, error) {
	user, err := s.users.GetByLoginID(ctx, loginID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("no staff login for %q", loginID)
	}
	return user, nil
}
