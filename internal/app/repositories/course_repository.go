package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devrim/examforge/internal/app/models"
	"github.com/devrim/examforge/internal/app/models/dto"
	"github.com/devrim/examforge/internal/pkg/apperrors"
	"github.com/devrim/examforge/internal/pkg/dberrors"
)

// courseRepository is the PostgreSQL implementation of CourseRepository.
type courseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository.
func NewCourseRepository(db *pgxpool.Pool) CourseRepository {
	return &courseRepository{db: db}
}

// GetAll retrieves courses with department/university identity and paper
// counts, optionally filtered by department, ordered by code.
func (r *courseRepository) GetAll(ctx context.Context, departmentID *int64) ([]*models.Course, error) {
	builder := squirrel.Select(
		"c.id", "c.department_id", "c.code", "c.name", "c.semester", "c.credits",
		"d.university_id", "d.name AS department_name", "u.name AS university_name",
		"COUNT(qp.id) AS paper_count",
	).
		From("courses c").
		Join("departments d ON d.id = c.department_id").
		Join("universities u ON u.id = d.university_id").
		LeftJoin("question_papers qp ON qp.course_id = c.id").
		GroupBy("c.id", "d.id", "u.id").
		OrderBy("c.code").
		PlaceholderFormat(squirrel.Dollar)

	if departmentID != nil {
		builder = builder.Where("c.department_id = ?", *departmentID)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		var department models.Department
		var university models.University
		if err := rows.Scan(
			&course.ID,
			&course.DepartmentID,
			&course.Code,
			&course.Name,
			&course.Semester,
			&course.Credits,
			&department.UniversityID,
			&department.Name,
			&university.Name,
			&course.PaperCount,
		); err != nil {
			return nil, fmt.Errorf("error scanning course: %w", err)
		}
		department.ID = course.DepartmentID
		university.ID = department.UniversityID
		department.University = &university
		course.Department = &department
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// GetByID retrieves a course with its department and university identity.
func (r *courseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT c.id, c.department_id, c.code, c.name, c.semester, c.credits,
		       d.university_id, d.name, u.name
		FROM courses c
		JOIN departments d ON d.id = c.department_id
		JOIN universities u ON u.id = d.university_id
		WHERE c.id = $1
	`

	var course models.Course
	var department models.Department
	var university models.University
	err := r.db.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.DepartmentID,
		&course.Code,
		&course.Name,
		&course.Semester,
		&course.Credits,
		&department.UniversityID,
		&department.Name,
		&university.Name,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	department.ID = course.DepartmentID
	university.ID = department.UniversityID
	department.University = &university
	course.Department = &department
	return &course, nil
}

// Create creates a new course.
func (r *courseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (department_id, code, name, semester, credits)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		course.DepartmentID,
		course.Code,
		course.Name,
		course.Semester,
		course.Credits,
	).Scan(&course.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCourseAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrDepartmentNotFound
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// Update updates an existing course.
func (r *courseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET code = $1, name = $2, semester = $3, credits = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		course.Code,
		course.Name,
		course.Semester,
		course.Credits,
		course.ID,
	)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCourseAlreadyExists
		}
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete deletes a course by ID; papers and questions cascade.
func (r *courseRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Search performs a case-insensitive substring match on course code or name,
// annotating each hit with the distinct years it has papers for (descending).
func (r *courseRepository) Search(ctx context.Context, query string, limit int) ([]dto.CourseSearchResult, error) {
	pattern := "%" + query + "%"

	builder := squirrel.Select(
		"c.id", "c.department_id", "c.code", "c.name", "c.semester", "c.credits",
		"d.university_id", "d.name", "u.name",
		"COALESCE(ARRAY(SELECT DISTINCT qp.year FROM question_papers qp WHERE qp.course_id = c.id ORDER BY qp.year DESC), '{}') AS years",
	).
		From("courses c").
		Join("departments d ON d.id = c.department_id").
		Join("universities u ON u.id = d.university_id").
		Where("c.code ILIKE ? OR c.name ILIKE ?", pattern, pattern).
		OrderBy("c.code").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error searching courses: %w", err)
	}
	defer rows.Close()

	results := []dto.CourseSearchResult{}
	for rows.Next() {
		var result dto.CourseSearchResult
		var department models.Department
		var university models.University
		if err := rows.Scan(
			&result.ID,
			&result.DepartmentID,
			&result.Code,
			&result.Name,
			&result.Semester,
			&result.Credits,
			&department.UniversityID,
			&department.Name,
			&university.Name,
			&result.Years,
		); err != nil {
			return nil, fmt.Errorf("error scanning search result: %w", err)
		}
		department.ID = result.DepartmentID
		university.ID = department.UniversityID
		department.University = &university
		result.Department = &department
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
