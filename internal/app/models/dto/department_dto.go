package dto

// BulkCreateDepartmentsRequest carries a single comma-separated line of
// department names for one university.
type BulkCreateDepartmentsRequest struct {
	UniversityID int64  `json:"universityId" binding:"required" example:"1"`
	Departments  string `json:"departments" binding:"required" example:"Computer Science, Mathematics, Physics"`
}

// UpdateDepartmentRequest is the payload for renaming a department.
type UpdateDepartmentRequest struct {
	Name string `json:"name" binding:"required"`
}
