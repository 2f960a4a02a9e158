package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/tamanh-his/hisadmin/models"
)

func TestLogin_UnknownUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("GetByLoginID", context.Background(), "nobody").Return(nil, nil)

	service := NewAuthService(mockRepo, false)

	user, err := service.Login(context.Background(), "nobody", "whatever")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_WithoutVerification(t *testing.T) {
	// The legacy contract: a known login id is accepted with any password
	mockRepo := new(MockUserRepository)
	mockRepo.On("GetByLoginID", context.Background(), "admin01").
		Return(&models.User{ID: 1, LoginID: "admin01", FullName: "Nguyễn Văn A"}, nil)

	service := NewAuthService(mockRepo, false)

	user, err := service.Login(context.Background(), "admin01", "anything at all")

	assert.NoError(t, err)
	assert.Equal(t, "Nguyễn Văn A", user.FullName)
}

func TestLogin_WithVerification(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	assert.NoError(t, err)

	mockRepo := new(MockUserRepository)
	mockRepo.On("GetByLoginID", context.Background(), "admin01").
		Return(&models.User{ID: 1, LoginID: "admin01", PasswordHash: string(hash)}, nil)

	service := NewAuthService(mockRepo, true)

	user, err := service.Login(context.Background(), "admin01", "secret")
	assert.NoError(t, err)
	assert.NotNil(t, user)

	user, err = service.Login(context.Background(), "admin01", "wrong")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_RepositoryError(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("GetByLoginID", context.Background(), "admin01").
		Return(nil, errors.New("database is locked"))

	service := NewAuthService(mockRepo, false)

	_, err := service.Login(context.Background(), "admin01", "secret")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestResolveLogin(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("GetByLoginID", context.Background(), "admin01").
		Return(&models.User{ID: 1, LoginID: "admin01", FullName: "Nguyễn Văn A"}, nil)
	mockRepo.On("GetByLoginID", context.Background(), "stranger").Return(nil, nil)

	service := NewAuthService(mockRepo, false)

	user, err := service.ResolveLogin(context.Background(), "admin01")
	assert.NoError(t, err)
	assert.Equal(t, "admin01", user.LoginID)

	// An SSO identity without a staff record is rejected
	_, err = service.ResolveLogin(context.Background(), "stranger")
	assert.Error(t, err)
}
