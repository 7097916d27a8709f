package services

import (
	"context"
	"strings"

	"github.com/devrim/examforge/internal/app/models"
	"github.com/devrim/examforge/internal/app/repositories"
	"github.com/devrim/examforge/internal/pkg/apperrors"
	"github.com/devrim/examforge/internal/pkg/logger"
)

// UniversityService handles university-related operations.
type UniversityService struct {
	universityRepo repositories.UniversityRepository
}

// NewUniversityService creates a new university service instance.
func NewUniversityService(universityRepo repositories.UniversityRepository) *UniversityService {
	return &UniversityService{universityRepo: universityRepo}
}

// GetAllUniversities lists all universities with their department counts.
func (s *UniversityService) GetAllUniversities(ctx context.Context) ([]*models.University, error) {
	return s.universityRepo.GetAll(ctx)
}

// GetUniversityByID retrieves a single university.
func (s *UniversityService) GetUniversityByID(ctx context.Context, id int64) (*models.University, error) {
	return s.universityRepo.GetByID(ctx, id)
}

// CreateUniversity creates a new university.
func (s *UniversityService) CreateUniversity(ctx context.Context, name string, description *string) (*models.University, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("university name cannot be empty")
	}

	university := &models.University{
		Name:        name,
		Description: description,
	}
	if err := s.universityRepo.Create(ctx, university); err != nil {
		return nil, err
	}

	logger.Info().Int64("universityId", university.ID).Str("name", university.Name).Msg("University created")
	return university, nil
}

// UpdateUniversity updates an existing university.
func (s *UniversityService) UpdateUniversity(ctx context.Context, id int64, name string, description *string) (*models.University, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("university name cannot be empty")
	}

	university := &models.University{
		ID:          id,
		Name:        name,
		Description: description,
	}
	if err := s.universityRepo.Update(ctx, university); err != nil {
		return nil, err
	}

	return university, nil
}

// DeleteUniversity deletes a university and, through cascade, everything
// under it.
func (s *UniversityService) DeleteUniversity(ctx context.Context, id int64) error {
	if err := s.universityRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info().Int64("universityId", id).Msg("University deleted")
	return nil
}
