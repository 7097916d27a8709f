package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devrim/examforge/internal/app/models"
	"github.com/devrim/examforge/internal/pkg/apperrors"
	"github.com/devrim/examforge/internal/pkg/dberrors"
)

// departmentRepository is the PostgreSQL implementation of DepartmentRepository.
type departmentRepository struct {
	db *pgxpool.Pool
}

// NewDepartmentRepository creates a new department repository.
func NewDepartmentRepository(db *pgxpool.Pool) DepartmentRepository {
	return &departmentRepository{db: db}
}

// GetAll retrieves departments with their university and course counts,
// optionally filtered by university, ordered by name.
func (r *departmentRepository) GetAll(ctx context.Context, universityID *int64) ([]*models.Department, error) {
	builder := squirrel.Select(
		"d.id", "d.university_id", "d.name",
		"u.name AS university_name", "u.description",
		"COUNT(c.id) AS course_count",
	).
		From("departments d").
		Join("universities u ON u.id = d.university_id").
		LeftJoin("courses c ON c.department_id = d.id").
		GroupBy("d.id", "u.id").
		OrderBy("d.name").
		PlaceholderFormat(squirrel.Dollar)

	if universityID != nil {
		builder = builder.Where("d.university_id = ?", *universityID)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving departments: %w", err)
	}
	defer rows.Close()

	var departments []*models.Department
	for rows.Next() {
		var department models.Department
		var university models.University
		if err := rows.Scan(
			&department.ID,
			&department.UniversityID,
			&department.Name,
			&university.Name,
			&university.Description,
			&department.CourseCount,
		); err != nil {
			return nil, fmt.Errorf("error scanning department: %w", err)
		}
		university.ID = department.UniversityID
		department.University = &university
		departments = append(departments, &department)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}

// GetByID retrieves a department by ID.
func (r *departmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	query := `
		SELECT d.id, d.university_id, d.name, u.name
		FROM departments d
		JOIN universities u ON u.id = d.university_id
		WHERE d.id = $1
	`

	var department models.Department
	var university models.University
	err := r.db.QueryRow(ctx, query, id).Scan(
		&department.ID,
		&department.UniversityID,
		&department.Name,
		&university.Name,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}

	university.ID = department.UniversityID
	department.University = &university
	return &department, nil
}

// Create creates a new department.
func (r *departmentRepository) Create(ctx context.Context, department *models.Department) error {
	query := `
		INSERT INTO departments (university_id, name)
		VALUES ($1, $2)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, department.UniversityID, department.Name).Scan(&department.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrDepartmentAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrUniversityNotFound
		}
		return fmt.Errorf("error creating department: %w", err)
	}

	return nil
}

// Update renames an existing department.
func (r *departmentRepository) Update(ctx context.Context, department *models.Department) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE departments SET name = $1 WHERE id = $2`,
		department.Name, department.ID,
	)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrDepartmentAlreadyExists
		}
		return fmt.Errorf("error updating department: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}

	return nil
}

// Delete deletes a department by ID; courses and papers cascade.
func (r *departmentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting department: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}

	return nil
}
