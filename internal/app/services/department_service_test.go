package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devrim/examforge/internal/app/models"
	"github.com/devrim/examforge/internal/app/models/dto"
	"github.com/devrim/examforge/internal/pkg/apperrors"
)

func setupDepartmentService(t *testing.T) (*DepartmentService, *fakeDepartmentRepo, int64) {
	t.Helper()

	universityRepo := newFakeUniversityRepo()
	university := &models.University{Name: "Institute of Science and Technology"}
	require.NoError(t, universityRepo.Create(context.Background(), university))

	departmentRepo := newFakeDepartmentRepo()
	return NewDepartmentService(departmentRepo, universityRepo), departmentRepo, university.ID
}

func TestBulkCreateDepartments(t *testing.T) {
	svc, departmentRepo, universityID := setupDepartmentService(t)

	result, err := svc.BulkCreateDepartments(context.Background(), dto.BulkCreateDepartmentsRequest{
		UniversityID: universityID,
		Departments:  "Computer Science, Mathematics, , Physics",
	})
	require.NoError(t, err)

	// The empty item between commas is dropped during parsing.
	assert.Equal(t, 3, result.Successful)
	assert.Equal(t, 0, result.Failed)

	departments, err := departmentRepo.GetAll(context.Background(), &universityID)
	require.NoError(t, err)
	assert.Len(t, departments, 3)
}

func TestBulkCreateDepartments_DuplicateFailsPerRow(t *testing.T) {
	svc, _, universityID := setupDepartmentService(t)

	_, err := svc.BulkCreateDepartments(context.Background(), dto.BulkCreateDepartmentsRequest{
		UniversityID: universityID,
		Departments:  "Computer Science",
	})
	require.NoError(t, err)

	result, err := svc.BulkCreateDepartments(context.Background(), dto.BulkCreateDepartmentsRequest{
		UniversityID: universityID,
		Departments:  "Computer Science, Chemistry",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Successful)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Computer Science")
}

func TestBulkCreateDepartments_OnlyEmptyItems(t *testing.T) {
	svc, _, universityID := setupDepartmentService(t)

	_, err := svc.BulkCreateDepartments(context.Background(), dto.BulkCreateDepartmentsRequest{
		UniversityID: universityID,
		Departments:  " , ,, ",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestBulkCreateDepartments_UnknownUniversity(t *testing.T) {
	svc, _, _ := setupDepartmentService(t)

	_, err := svc.BulkCreateDepartments(context.Background(), dto.BulkCreateDepartmentsRequest{
		UniversityID: 999,
		Departments:  "Computer Science",
	})
	assert.ErrorIs(t, err, apperrors.ErrUniversityNotFound)
}
