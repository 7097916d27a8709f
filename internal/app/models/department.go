package models

// Department represents a department within a university. Its name is unique
// within the owning university.
type Department struct {
	ID           int64  `json:"id"`
	UniversityID int64  `json:"universityId"`
	Name         string `json:"name"`

	// Relations (populated when needed)
	University *University `json:"university,omitempty"`

	// CourseCount is computed on list queries, not stored.
	CourseCount int `json:"courseCount"`
}
