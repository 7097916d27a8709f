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

func setupCourseService(t *testing.T) (*CourseService, *fakeCourseRepo, int64) {
	t.Helper()

	departmentRepo := newFakeDepartmentRepo()
	department := &models.Department{UniversityID: 1, Name: "Computer Science"}
	require.NoError(t, departmentRepo.Create(context.Background(), department))

	courseRepo := newFakeCourseRepo()
	return NewCourseService(courseRepo, departmentRepo), courseRepo, department.ID
}

func TestBulkCreateCourses_SkipsMalformedLines(t *testing.T) {
	svc, courseRepo, departmentID := setupCourseService(t)

	input := "CSE2113, Data Structures, 3, 4\n" +
		"CSE2114, Algorithms, 4, 4\n" +
		"THIS LINE IS BROKEN\n" +
		"  \n" +
		"CSE2115, Databases, 5, 3\n"

	result, err := svc.BulkCreateCourses(context.Background(), dto.BulkCreateCoursesRequest{
		DepartmentID: departmentID,
		Courses:      input,
	})
	require.NoError(t, err)

	// The broken and blank lines never become submissions.
	assert.Equal(t, 3, result.Successful)
	assert.Equal(t, 0, result.Failed)
	assert.Empty(t, result.Errors)

	courses, err := courseRepo.GetAll(context.Background(), &departmentID)
	require.NoError(t, err)
	assert.Len(t, courses, 3)
}

func TestBulkCreateCourses_DuplicatesFailPerRow(t *testing.T) {
	svc, _, departmentID := setupCourseService(t)

	_, err := svc.BulkCreateCourses(context.Background(), dto.BulkCreateCoursesRequest{
		DepartmentID: departmentID,
		Courses:      "CSE2113, Data Structures, 3, 4\nCSE2114, Algorithms, 4, 4",
	})
	require.NoError(t, err)

	result, err := svc.BulkCreateCourses(context.Background(), dto.BulkCreateCoursesRequest{
		DepartmentID: departmentID,
		Courses:      "CSE2113, Data Structures, 3, 4\nCSE2114, Algorithms, 4, 4",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Successful)
	assert.Equal(t, 2, result.Failed)
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], "CSE2113")
	assert.Contains(t, result.Errors[1], "CSE2114")
}

func TestBulkCreateCourses_MixedOutcome(t *testing.T) {
	svc, _, departmentID := setupCourseService(t)

	_, err := svc.BulkCreateCourses(context.Background(), dto.BulkCreateCoursesRequest{
		DepartmentID: departmentID,
		Courses:      "CSE2113, Data Structures, 3, 4",
	})
	require.NoError(t, err)

	result, err := svc.BulkCreateCourses(context.Background(), dto.BulkCreateCoursesRequest{
		DepartmentID: departmentID,
		Courses:      "CSE2113, Data Structures, 3, 4\nCSE2116, Operating Systems, 5, 4",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Successful)
	assert.Equal(t, 1, result.Failed)
}

func TestBulkCreateCourses_LargeBatchKeepsErrorOrder(t *testing.T) {
	svc, _, departmentID := setupCourseService(t)

	_, err := svc.BulkCreateCourses(context.Background(), dto.BulkCreateCoursesRequest{
		DepartmentID: departmentID,
		Courses:      "CSE2105, Discrete Mathematics, 2, 3\nCSE2110, Digital Logic, 2, 3\n",
	})
	require.NoError(t, err)

	// Rows submit concurrently; reported errors still follow input order.
	input := "CSE2101, Programming I, 1, 4\n" +
		"CSE2105, Discrete Mathematics, 2, 3\n" +
		"CSE2102, Programming II, 2, 4\n" +
		"CSE2110, Digital Logic, 2, 3\n" +
		"CSE2103, Data Structures Lab, 3, 1\n"
	result, err := svc.BulkCreateCourses(context.Background(), dto.BulkCreateCoursesRequest{
		DepartmentID: departmentID,
		Courses:      input,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Successful)
	assert.Equal(t, 2, result.Failed)
	assert.Equal(t, []string{
		"course CSE2105 already exists",
		"course CSE2110 already exists",
	}, result.Errors)
}

func TestBulkCreateCourses_NoValidLines(t *testing.T) {
	svc, _, departmentID := setupCourseService(t)

	_, err := svc.BulkCreateCourses(context.Background(), dto.BulkCreateCoursesRequest{
		DepartmentID: departmentID,
		Courses:      "just some text\nanother line without commas",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestBulkCreateCourses_UnknownDepartment(t *testing.T) {
	svc, _, _ := setupCourseService(t)

	_, err := svc.BulkCreateCourses(context.Background(), dto.BulkCreateCoursesRequest{
		DepartmentID: 999,
		Courses:      "CSE2113, Data Structures, 3, 4",
	})
	assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
}

func TestParseCourseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		ok   bool
		code string
	}{
		{name: "well formed", line: "CSE2113, Data Structures, 3, 4", ok: true, code: "CSE2113"},
		{name: "extra whitespace", line: "  CSE2113 ,  Data Structures ,3,4  ", ok: true, code: "CSE2113"},
		{name: "too few fields", line: "CSE2113, Data Structures, 3", ok: false},
		{name: "non numeric semester", line: "CSE2113, Data Structures, three, 4", ok: false},
		{name: "empty code", line: ", Data Structures, 3, 4", ok: false},
		{name: "name containing digits", line: "CSE2113, Intro to C++ 2, 3, 4", ok: true, code: "CSE2113"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			course, ok := parseCourseLine(tt.line, 1)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.code, course.Code)
			}
		})
	}
}
