package dto

import "github.com/devrim/examforge/internal/app/models"

// ShuffleRequest asks for a synthetic paper assembled for a course,
// optionally restricted to a set of source years.
type ShuffleRequest struct {
	CourseID int64 `json:"courseId" binding:"required"`
	Years    []int `json:"years"`
}

// ShuffledQuestion is one selected question of an assembled paper, annotated
// with the year and sitting of its source paper.
type ShuffledQuestion struct {
	QuestionNumber string          `json:"questionNumber"`
	QuestionText   string          `json:"questionText"`
	Marks          *float64        `json:"marks,omitempty"`
	Tag            string          `json:"tag"`
	Topic          *string         `json:"topic,omitempty"`
	Year           int             `json:"year"`
	ExamType       models.ExamType `json:"examType"`
}

// ShuffledPaper is a synthetic question paper holding exactly one question
// per distinct slot, ordered by ascending main number then slot.
type ShuffledPaper struct {
	CourseCode  string         `json:"courseCode"`
	CourseTitle string         `json:"courseTitle"`
	Semester    int            `json:"semester"`
	Course      *models.Course `json:"course,omitempty"`

	// GeneratedFrom lists the distinct contributing years, descending.
	GeneratedFrom []int `json:"generatedFrom"`

	Questions []ShuffledQuestion `json:"questions"`
}
