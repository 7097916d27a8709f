package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devrim/examforge/internal/app/models"
	"github.com/devrim/examforge/internal/app/models/dto"
	"github.com/devrim/examforge/internal/pkg/apperrors"
	"github.com/devrim/examforge/internal/pkg/auth"
)

func setupAuthService(t *testing.T) (*AuthService, *fakeAdminRepo) {
	t.Helper()

	adminRepo := newFakeAdminRepo()
	hash, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)
	require.NoError(t, adminRepo.Create(context.Background(), &models.Admin{
		Username:     "admin",
		PasswordHash: hash,
	}))

	sessions := auth.NewSessionService(auth.SessionConfig{
		SecretKey: "test-secret",
		TokenExp:  time.Hour,
		Issuer:    "examforge-test",
	})
	return NewAuthService(adminRepo, sessions), adminRepo
}

func TestLogin(t *testing.T) {
	svc, _ := setupAuthService(t)

	admin, token, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "admin",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "admin", admin.Username)

	// The issued token round-trips through a session check.
	checked, err := svc.CheckSession(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, checked.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := setupAuthService(t)

	_, _, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "admin",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, _ := setupAuthService(t)

	// Indistinguishable from a wrong password.
	_, _, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "nobody",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestCheckSession_GarbageToken(t *testing.T) {
	svc, _ := setupAuthService(t)

	_, err := svc.CheckSession(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, apperrors.ErrSessionInvalid)
}

func TestCheckSession_DeletedAdmin(t *testing.T) {
	svc, adminRepo := setupAuthService(t)

	_, token, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "admin",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	delete(adminRepo.admins, 1)

	_, err = svc.CheckSession(context.Background(), token)
	assert.ErrorIs(t, err, apperrors.ErrSessionInvalid)
}
