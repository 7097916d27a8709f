package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/devrim/examforge/internal/app/models"
	"github.com/devrim/examforge/internal/app/models/dto"
	"github.com/devrim/examforge/internal/app/repositories"
	"github.com/devrim/examforge/internal/pkg/apperrors"
	"github.com/devrim/examforge/internal/pkg/logger"
)

// DepartmentService handles department-related operations, including the
// comma-separated bulk submission.
type DepartmentService struct {
	departmentRepo repositories.DepartmentRepository
	universityRepo repositories.UniversityRepository
}

// NewDepartmentService creates a new department service instance.
func NewDepartmentService(departmentRepo repositories.DepartmentRepository, universityRepo repositories.UniversityRepository) *DepartmentService {
	return &DepartmentService{
		departmentRepo: departmentRepo,
		universityRepo: universityRepo,
	}
}

// GetAllDepartments lists departments, optionally restricted to one
// university.
func (s *DepartmentService) GetAllDepartments(ctx context.Context, universityID *int64) ([]*models.Department, error) {
	return s.departmentRepo.GetAll(ctx, universityID)
}

// GetDepartmentByID retrieves a single department.
func (s *DepartmentService) GetDepartmentByID(ctx context.Context, id int64) (*models.Department, error) {
	return s.departmentRepo.GetByID(ctx, id)
}

// BulkCreateDepartments parses a comma-separated list of names and creates
// one department per name under the given university. Empty items are
// dropped during parsing; each surviving name is attempted independently so
// one duplicate never blocks the rest.
func (s *DepartmentService) BulkCreateDepartments(ctx context.Context, req dto.BulkCreateDepartmentsRequest) (*dto.BulkCreateResult, error) {
	if _, err := s.universityRepo.GetByID(ctx, req.UniversityID); err != nil {
		return nil, err
	}

	names := []string{}
	for _, part := range strings.Split(req.Departments, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil, apperrors.NewValidationError("no department names provided")
	}

	// Rows are submitted concurrently and independently; failures land in
	// per-row slots so the reported errors keep input order.
	failures := make([]string, len(names))
	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func() {
			defer wg.Done()
			department := &models.Department{
				UniversityID: req.UniversityID,
				Name:         name,
			}
			err := s.departmentRepo.Create(ctx, department)
			switch {
			case err == nil:
			case errors.Is(err, apperrors.ErrDepartmentAlreadyExists):
				failures[i] = fmt.Sprintf("department %q already exists", name)
			default:
				failures[i] = fmt.Sprintf("department %q: %v", name, err)
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

	result.Message = fmt.Sprintf("%d departments created, %d failed", result.Successful, result.Failed)
	logger.Info().
		Int64("universityId", req.UniversityID).
		Int("successful", result.Successful).
		Int("failed", result.Failed).
		Msg("Bulk department submission processed")
	return result, nil
}

// UpdateDepartment renames a department.
func (s *DepartmentService) UpdateDepartment(ctx context.Context, id int64, name string) (*models.Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("department name cannot be empty")
	}

	department := &models.Department{ID: id, Name: name}
	if err := s.departmentRepo.Update(ctx, department); err != nil {
		return nil, err
	}
	return department, nil
}

// DeleteDepartment deletes a department and its courses.
func (s *DepartmentService) DeleteDepartment(ctx context.Context, id int64) error {
	if err := s.departmentRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info().Int64("departmentId", id).Msg("Department deleted")
	return nil
}
