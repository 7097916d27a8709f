package dto

import "github.com/devrim/examforge/internal/app/models"

// CourseSearchResult is one search hit: a course with its department and
// university identity plus the distinct years it has papers for.
type CourseSearchResult struct {
	ID           int64              `json:"id"`
	DepartmentID int64              `json:"departmentId"`
	Code         string             `json:"code"`
	Name         string             `json:"name"`
	Semester     int                `json:"semester"`
	Credits      int                `json:"credits"`
	Department   *models.Department `json:"department,omitempty"`
	Years        []int              `json:"years"`
}
