package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devrim/examforge/internal/app/models"
	"github.com/devrim/examforge/internal/pkg/apperrors"
	"github.com/devrim/examforge/internal/pkg/dberrors"
)

// adminRepository is the PostgreSQL implementation of AdminRepository.
type adminRepository struct {
	db *pgxpool.Pool
}

// NewAdminRepository creates a new admin repository.
func NewAdminRepository(db *pgxpool.Pool) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.QueryRow(ctx,
		`SELECT id, username, password_hash FROM admins WHERE username = $1`,
		username,
	).Scan(&admin.ID, &admin.Username, &admin.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, fmt.Errorf("error retrieving admin: %w", err)
	}
	return &admin, nil
}

func (r *adminRepository) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.QueryRow(ctx,
		`SELECT id, username, password_hash FROM admins WHERE id = $1`,
		id,
	).Scan(&admin.ID, &admin.Username, &admin.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, fmt.Errorf("error retrieving admin: %w", err)
	}
	return &admin, nil
}

func (r *adminRepository) Create(ctx context.Context, admin *models.Admin) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO admins (username, password_hash) VALUES ($1, $2) RETURNING id`,
		admin.Username, admin.PasswordHash,
	).Scan(&admin.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAdminAlreadyExists
		}
		return fmt.Errorf("error creating admin: %w", err)
	}
	return nil
}
