package models

// University represents a university owning a collection of departments.
// Deleting a university cascades to all descendant departments, courses,
// question papers and questions.
type University struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`

	// DepartmentCount is computed on list queries, not stored.
	DepartmentCount int `json:"departmentCount"`
}
