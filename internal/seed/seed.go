package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/devrim/examforge/internal/app/models"
	"github.com/devrim/examforge/internal/app/repositories"
	"github.com/devrim/examforge/internal/pkg/apperrors"
	"github.com/devrim/examforge/internal/pkg/auth"
)

// Default admin credentials created on first boot. The password must be
// changed before the instance faces anything but localhost.
const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

// CreateDefaultData ensures a default admin account exists so a fresh
// install is immediately usable.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	adminRepo := repositories.NewAdminRepository(dbPool)

	hash, err := auth.HashPassword(defaultAdminPassword)
	if err != nil {
		return err
	}

	admin := &models.Admin{
		Username:     defaultAdminUsername,
		PasswordHash: hash,
	}
	if err := adminRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrAdminAlreadyExists) {
			lgr.Debug().Str("username", defaultAdminUsername).Msg("Default admin already exists")
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating default admin")
		return err
	}

	lgr.Info().Str("username", defaultAdminUsername).Msg("Default admin created, change the password")
	return nil
}
