package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/devrim/examforge/internal/app/models"
	"github.com/devrim/examforge/internal/app/models/dto"
	"github.com/devrim/examforge/internal/app/repositories"
	"github.com/devrim/examforge/internal/pkg/apperrors"
	"github.com/devrim/examforge/internal/pkg/logger"
)

// CourseService handles course-related operations, including the line-based
// bulk submission.
type CourseService struct {
	courseRepo     repositories.CourseRepository
	departmentRepo repositories.DepartmentRepository
}

// NewCourseService creates a new course service instance.
func NewCourseService(courseRepo repositories.CourseRepository, departmentRepo repositories.DepartmentRepository) *CourseService {
	return &CourseService{
		courseRepo:     courseRepo,
		departmentRepo: departmentRepo,
	}
}

// GetAllCourses lists courses, optionally restricted to one department.
func (s *CourseService) GetAllCourses(ctx context.Context, departmentID *int64) ([]*models.Course, error) {
	return s.courseRepo.GetAll(ctx, departmentID)
}

// GetCourseByID retrieves a single course.
func (s *CourseService) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// parseCourseLine parses one "code, name, semester, credits" line. Lines
// with fewer than four fields, or non-numeric semester/credits, are dropped
// silently by the caller.
func parseCourseLine(line string, departmentID int64) (*models.Course, bool) {
	fields := strings.Split(line, ",")
	if len(fields) < 4 {
		return nil, false
	}

	code := strings.TrimSpace(fields[0])
	name := strings.TrimSpace(fields[1])
	semester, errSem := strconv.Atoi(strings.TrimSpace(fields[2]))
	credits, errCred := strconv.Atoi(strings.TrimSpace(fields[3]))
	if code == "" || name == "" || errSem != nil || errCred != nil {
		return nil, false
	}

	return &models.Course{
		DepartmentID: departmentID,
		Code:         code,
		Name:         name,
		Semester:     semester,
		Credits:      credits,
	}, true
}

// BulkCreateCourses parses free text with one course per line and creates
// each parsed course independently. Malformed lines never become
// submissions; duplicate codes fail per row without blocking the rest.
func (s *CourseService) BulkCreateCourses(ctx context.Context, req dto.BulkCreateCoursesRequest) (*dto.BulkCreateResult, error) {
	if _, err := s.departmentRepo.GetByID(ctx, req.DepartmentID); err != nil {
		return nil, err
	}

	var courses []*models.Course
	for _, line := range strings.Split(req.Courses, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		course, ok := parseCourseLine(line, req.DepartmentID)
		if !ok {
			continue
		}
		courses = append(courses, course)
	}
	if len(courses) == 0 {
		return nil, apperrors.NewValidationError("no valid course lines provided")
	}

	// Rows are submitted concurrently and independently; failures land in
	// per-row slots so the reported errors keep input order.
	failures := make([]string, len(courses))
	var wg sync.WaitGroup
	for i, course := range courses {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.courseRepo.Create(ctx, course)
			switch {
			case err == nil:
			case errors.Is(err, apperrors.ErrCourseAlreadyExists):
				failures[i] = fmt.Sprintf("course %s already exists", course.Code)
			default:
				failures[i] = fmt.Sprintf("course %s: %v", course.Code, err)
			}
		}()
	}
	wg.Wait()

	result := &dto.BulkCreateResult{Errors: []string{}}
	for _, msg := range failures {
		if msg == "" {
			result.Successful++
			continue
		}
		result.Failed++
		result.Errors = append(result.Errors, msg)
	}

	result.Message = fmt.Sprintf("%d courses created, %d failed", result.Successful, result.Failed)
	logger.Info().
		Int64("departmentId", req.DepartmentID).
		Int("successful", result.Successful).
		Int("failed", result.Failed).
		Msg("Bulk course submission processed")
	return result, nil
}

// UpdateCourse updates an existing course.
func (s *CourseService) UpdateCourse(ctx context.Context, id int64, req dto.UpdateCourseRequest) (*models.Course, error) {
	course := &models.Course{
		ID:       id,
		Code:     strings.TrimSpace(req.Code),
		Name:     strings.TrimSpace(req.Name),
		Semester: req.Semester,
		Credits:  req.Credits,
	}
	if course.Code == "" || course.Name == "" {
		return nil, apperrors.NewValidationError("course code and name cannot be empty")
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// DeleteCourse deletes a course and its papers.
func (s *CourseService) DeleteCourse(ctx context.Context, id int64) error {
	if err := s.courseRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info().Int64("courseId", id).Msg("Course deleted")
	return nil
}
