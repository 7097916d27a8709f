package services

import (
	"context"
	"errors"

	"github.com/devrim/examforge/internal/app/models/dto"
	"github.com/devrim/examforge/internal/app/repositories"
	"github.com/devrim/examforge/internal/pkg/apperrors"
	"github.com/devrim/examforge/internal/pkg/auth"
	"github.com/devrim/examforge/internal/pkg/logger"
)

// AuthService authenticates admins and manages their session tokens.
type AuthService struct {
	adminRepo repositories.AdminRepository
	sessions  *auth.SessionService
}

// NewAuthService creates a new auth service instance.
func NewAuthService(adminRepo repositories.AdminRepository, sessions *auth.SessionService) *AuthService {
	return &AuthService{
		adminRepo: adminRepo,
		sessions:  sessions,
	}
}

// Login verifies credentials and issues a session token. A missing admin
// and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AdminInfo, string, error) {
	admin, err := s.adminRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrAdminNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !auth.CheckPassword(admin.PasswordHash, req.Password) {
		logger.Warn().Str("username", req.Username).Msg("Failed login attempt")
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.sessions.IssueToken(admin.ID, admin.Username)
	if err != nil {
		return nil, "", err
	}

	logger.Info().Str("username", admin.Username).Msg("Admin logged in")
	return &dto.AdminInfo{ID: admin.ID, Username: admin.Username}, token, nil
}

// CheckSession validates a session token and resolves the admin it names.
func (s *AuthService) CheckSession(ctx context.Context, token string) (*dto.AdminInfo, error) {
	claims, err := s.sessions.ValidateToken(token)
	if err != nil {
		if errors.Is(err, auth.ErrExpiredToken) {
			return nil, apperrors.ErrSessionExpired
		}
		return nil, apperrors.ErrSessionInvalid
	}

	admin, err := s.adminRepo.GetByID(ctx, claims.AdminID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAdminNotFound) {
			return nil, apperrors.ErrSessionInvalid
		}
		return nil, err
	}

	return &dto.AdminInfo{ID: admin.ID, Username: admin.Username}, nil
}

// SessionTTL exposes the configured session lifetime for cookie max-age.
func (s *AuthService) SessionTTL() int {
	return int(s.sessions.TokenTTL().Seconds())
}
