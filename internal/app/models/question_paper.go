package models

// ExamType discriminates which sitting a question paper represents.
type ExamType string

const (
	ExamTypeRegular ExamType = "regular"
	ExamTypeBacklog ExamType = "backlog"
)

// Valid reports whether the exam type is one of the known sittings.
func (t ExamType) Valid() bool {
	return t == ExamTypeRegular || t == ExamTypeBacklog
}

// QuestionPaper represents one historical exam paper for a course. At most
// one paper exists per (course, year, examType); re-uploading the same key
// replaces the paper's questions wholesale.
type QuestionPaper struct {
	ID       int64    `json:"id"`
	CourseID int64    `json:"courseId"`
	Year     int      `json:"year"`
	Semester int      `json:"semester"`
	ExamType ExamType `json:"examType"`

	// Snapshot of the course identity at upload time.
	CourseCode  string `json:"courseCode"`
	CourseTitle string `json:"courseTitle"`

	// Relations (populated when needed)
	Course    *Course    `json:"course,omitempty"`
	Questions []Question `json:"questions,omitempty"`
}
