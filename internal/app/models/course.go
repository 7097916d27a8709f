package models

// Course represents a course offered by a department. Its code is unique
// within the owning department.
type Course struct {
	ID           int64  `json:"id"`
	DepartmentID int64  `json:"departmentId"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	Semester     int    `json:"semester"`
	Credits      int    `json:"credits"`

	// Relations (populated when needed)
	Department *Department `json:"department,omitempty"`

	// PaperCount is computed on list queries, not stored.
	PaperCount int `json:"paperCount"`
}
