package dto

import "github.com/devrim/examforge/internal/app/models"

// QuestionPayload is one question inside a paper upload.
type QuestionPayload struct {
	QuestionNumber string   `json:"questionNumber" binding:"required" example:"1(a)"`
	QuestionText   string   `json:"questionText" binding:"required"`
	Marks          *float64 `json:"marks" binding:"omitempty,gt=0"`
	Tag            string   `json:"tag" example:"definition"`
	Topic          *string  `json:"topic"`
}

// PaperPayload is the question-paper document of an upload.
type PaperPayload struct {
	Year        int               `json:"year" binding:"required"`
	Semester    int               `json:"semester" binding:"required"`
	CourseCode  string            `json:"courseCode" binding:"required"`
	CourseTitle string            `json:"courseTitle" binding:"required"`
	ExamType    models.ExamType   `json:"examType" binding:"required"`
	Questions   []QuestionPayload `json:"questions" binding:"required,dive"`
}

// PaperUploadRequest uploads a question paper for a course. If a paper
// already exists for the (course, year, examType) key its metadata is
// updated and its questions are replaced wholesale by the submitted set.
type PaperUploadRequest struct {
	CourseID          int64        `json:"courseId" binding:"required"`
	QuestionPaperData PaperPayload `json:"questionPaperData" binding:"required"`
}

// PaperUploadResult reports a successful upload.
type PaperUploadResult struct {
	Message          string `json:"message"`
	PaperID          int64  `json:"paperId"`
	QuestionsCreated int    `json:"questionsCreated"`
}
