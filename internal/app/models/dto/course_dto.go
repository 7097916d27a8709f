package dto

// BulkCreateCoursesRequest carries free text with one course per line in the
// form "code, name, semester, credits".
type BulkCreateCoursesRequest struct {
	DepartmentID int64  `json:"departmentId" binding:"required" example:"1"`
	Courses      string `json:"courses" binding:"required" example:"CSE2113, Data Structures, 3, 4"`
}

// UpdateCourseRequest is the payload for updating a course.
type UpdateCourseRequest struct {
	Code     string `json:"code" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Semester int    `json:"semester" binding:"required,gt=0"`
	Credits  int    `json:"credits" binding:"required,gt=0"`
}

// BulkCreateResult reports the outcome of an independent-row bulk submission.
// Rows dropped during parsing never become submissions and are not counted.
type BulkCreateResult struct {
	Message    string   `json:"message"`
	Successful int      `json:"successful"`
	Failed     int      `json:"failed"`
	Errors     []string `json:"errors"`
}
