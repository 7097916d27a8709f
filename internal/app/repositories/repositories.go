package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devrim/examforge/internal/app/models"
	"github.com/devrim/examforge/internal/app/models/dto"
)

// UniversityRepository handles storage operations for universities.
type UniversityRepository interface {
	GetAll(ctx context.Context) ([]*models.University, error)
	GetByID(ctx context.Context, id int64) (*models.University, error)
	Create(ctx context.Context, university *models.University) error
	Update(ctx context.Context, university *models.University) error
	Delete(ctx context.Context, id int64) error
}

// DepartmentRepository handles storage operations for departments.
type DepartmentRepository interface {
	GetAll(ctx context.Context, universityID *int64) ([]*models.Department, error)
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	Create(ctx context.Context, department *models.Department) error
	Update(ctx context.Context, department *models.Department) error
	Delete(ctx context.Context, id int64) error
}

// CourseRepository handles storage operations for courses, including the
// public substring search.
type CourseRepository interface {
	GetAll(ctx context.Context, departmentID *int64) ([]*models.Course, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	Create(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, query string, limit int) ([]dto.CourseSearchResult, error)
}

// PaperRepository handles storage operations for question papers and their
// questions.
type PaperRepository interface {
	// GetByCourse retrieves a course's papers with their questions, restricted
	// to the given years when the slice is non-empty.
	GetByCourse(ctx context.Context, courseID int64, years []int) ([]models.QuestionPaper, error)

	// Replace upserts the paper identified by (courseID, year, examType),
	// deletes all its existing questions and inserts the submitted set, all
	// within one transaction.
	Replace(ctx context.Context, courseID int64, paper dto.PaperPayload) (paperID int64, questionsCreated int, err error)

	// ListQuestions lists questions filtered by paper or by course, ordered
	// by source year descending then slot ascending.
	ListQuestions(ctx context.Context, courseID, paperID *int64) ([]models.Question, error)

	DeleteQuestion(ctx context.Context, id int64) error
	DeletePaper(ctx context.Context, id int64) error
}

// AdminRepository handles storage operations for admin accounts.
type AdminRepository interface {
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
	GetByID(ctx context.Context, id int64) (*models.Admin, error)
	Create(ctx context.Context, admin *models.Admin) error
}

// Repositories aggregates the storage layer for the composition root.
type Repositories struct {
	Universities UniversityRepository
	Departments  DepartmentRepository
	Courses      CourseRepository
	Papers       PaperRepository
	Admins       AdminRepository
}

// NewRepositories wires the PostgreSQL implementations.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Universities: NewUniversityRepository(db),
		Departments:  NewDepartmentRepository(db),
		Courses:      NewCourseRepository(db),
		Papers:       NewPaperRepository(db),
		Admins:       NewAdminRepository(db),
	}
}
