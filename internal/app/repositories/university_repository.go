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

// universityRepository is the PostgreSQL implementation of UniversityRepository.
type universityRepository struct {
	db *pgxpool.Pool
}

// NewUniversityRepository creates a new university repository.
func NewUniversityRepository(db *pgxpool.Pool) UniversityRepository {
	return &universityRepository{db: db}
}

// GetAll retrieves all universities with their department counts, ordered by name.
func (r *universityRepository) GetAll(ctx context.Context) ([]*models.University, error) {
	query := `
		SELECT u.id, u.name, u.description, COUNT(d.id) AS department_count
		FROM universities u
		LEFT JOIN departments d ON d.university_id = u.id
		GROUP BY u.id
		ORDER BY u.name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving universities: %w", err)
	}
	defer rows.Close()

	var universities []*models.University
	for rows.Next() {
		var university models.University
		var description *string
		if err := rows.Scan(
			&university.ID,
			&university.Name,
			&description,
			&university.DepartmentCount,
		); err != nil {
			return nil, fmt.Errorf("error scanning university: %w", err)
		}
		university.Description = description
		universities = append(universities, &university)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return universities, nil
}

// GetByID retrieves a university by ID.
func (r *universityRepository) GetByID(ctx context.Context, id int64) (*models.University, error) {
	query := `
		SELECT id, name, description
		FROM universities
		WHERE id = $1
	`

	var university models.University
	err := r.db.QueryRow(ctx, query, id).Scan(
		&university.ID,
		&university.Name,
		&university.Description,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUniversityNotFound
		}
		return nil, fmt.Errorf("error retrieving university: %w", err)
	}

	return &university, nil
}

// Create creates a new university.
func (r *universityRepository) Create(ctx context.Context, university *models.University) error {
	query := `
		INSERT INTO universities (name, description)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		university.Name,
		university.Description,
	).Scan(&university.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrUniversityAlreadyExists
		}
		return fmt.Errorf("error creating university: %w", err)
	}

	return nil
}

// Update updates an existing university.
func (r *universityRepository) Update(ctx context.Context, university *models.University) error {
	query := `
		UPDATE universities
		SET name = $1, description = $2
		WHERE id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query,
		university.Name,
		university.Description,
		university.ID,
	)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrUniversityAlreadyExists
		}
		return fmt.Errorf("error updating university: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUniversityNotFound
	}

	return nil
}

// Delete deletes a university by ID. Descendant departments, courses, papers
// and questions are removed by the storage layer's cascade constraints.
func (r *universityRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM universities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting university: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUniversityNotFound
	}

	return nil
}
