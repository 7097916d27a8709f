package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/devrim/examforge/internal/app/models"
	"github.com/devrim/examforge/internal/app/models/dto"
	"github.com/devrim/examforge/internal/app/repositories"
	"github.com/devrim/examforge/internal/pkg/apperrors"
	"github.com/devrim/examforge/internal/pkg/logger"
)

// PaperService handles question-paper uploads and question management.
type PaperService struct {
	paperRepo  repositories.PaperRepository
	courseRepo repositories.CourseRepository
}

// NewPaperService creates a new paper service instance.
func NewPaperService(paperRepo repositories.PaperRepository, courseRepo repositories.CourseRepository) *PaperService {
	return &PaperService{
		paperRepo:  paperRepo,
		courseRepo: courseRepo,
	}
}

// validatePaperPayload checks the upload document before anything is
// written, so a bad paper never reaches the transaction.
func validatePaperPayload(paper dto.PaperPayload) error {
	if !paper.ExamType.Valid() {
		return apperrors.NewValidationError(fmt.Sprintf("unknown exam type %q", paper.ExamType))
	}
	if paper.Year < 1900 || paper.Year > 2100 {
		return apperrors.NewValidationError(fmt.Sprintf("implausible year %d", paper.Year))
	}
	if len(paper.Questions) == 0 {
		return apperrors.NewValidationError("paper must contain at least one question")
	}

	seen := map[string]struct{}{}
	for i, q := range paper.Questions {
		number := strings.TrimSpace(q.QuestionNumber)
		if number == "" {
			return apperrors.NewValidationError(fmt.Sprintf("question %d has an empty question number", i+1))
		}
		if strings.TrimSpace(q.QuestionText) == "" {
			return apperrors.NewValidationError(fmt.Sprintf("question %s has empty text", number))
		}
		if _, dup := seen[number]; dup {
			return apperrors.NewValidationError(fmt.Sprintf("question number %s appears more than once", number))
		}
		seen[number] = struct{}{}
	}
	return nil
}

// UploadPaper upserts the paper for (courseID, year, examType) and replaces
// its question set wholesale.
func (s *PaperService) UploadPaper(ctx context.Context, req dto.PaperUploadRequest) (*dto.PaperUploadResult, error) {
	if _, err := s.courseRepo.GetByID(ctx, req.CourseID); err != nil {
		return nil, err
	}
	if err := validatePaperPayload(req.QuestionPaperData); err != nil {
		return nil, err
	}

	paperID, created, err := s.paperRepo.Replace(ctx, req.CourseID, req.QuestionPaperData)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int64("courseId", req.CourseID).
		Int64("paperId", paperID).
		Int("year", req.QuestionPaperData.Year).
		Str("examType", string(req.QuestionPaperData.ExamType)).
		Int("questions", created).
		Msg("Question paper stored")

	return &dto.PaperUploadResult{
		Message:          "question paper stored",
		PaperID:          paperID,
		QuestionsCreated: created,
	}, nil
}

// ListQuestions lists stored questions filtered by paper or by course.
func (s *PaperService) ListQuestions(ctx context.Context, courseID, paperID *int64) ([]models.Question, error) {
	return s.paperRepo.ListQuestions(ctx, courseID, paperID)
}

// DeleteQuestion removes a single question.
func (s *PaperService) DeleteQuestion(ctx context.Context, id int64) error {
	return s.paperRepo.DeleteQuestion(ctx, id)
}

// DeletePaper removes a paper and all its questions.
func (s *PaperService) DeletePaper(ctx context.Context, id int64) error {
	if err := s.paperRepo.DeletePaper(ctx, id); err != nil {
		return err
	}

	logger.Info().Int64("paperId", id).Msg("Question paper deleted")
	return nil
}
