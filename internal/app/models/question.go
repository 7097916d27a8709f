package models

// Question represents one sub-question of a historical paper. QuestionNumber
// is the slot identifier (e.g. "1(a)"); its leading integer prefix is the
// main number used to group related slots for assembly and display.
type Question struct {
	ID              int64    `json:"id"`
	QuestionPaperID int64    `json:"questionPaperId"`
	QuestionNumber  string   `json:"questionNumber"`
	QuestionText    string   `json:"questionText"`
	Marks           *float64 `json:"marks,omitempty"`
	Tag             string   `json:"tag"`
	Topic           *string  `json:"topic,omitempty"`

	// Relation (populated when needed)
	QuestionPaper *QuestionPaper `json:"questionPaper,omitempty"`
}
