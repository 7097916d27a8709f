package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devrim/examforge/internal/app/models"
	"github.com/devrim/examforge/internal/app/models/dto"
	pgdb "github.com/devrim/examforge/internal/db"
	"github.com/devrim/examforge/internal/pkg/apperrors"
	"github.com/devrim/examforge/internal/pkg/dberrors"
)

// paperRepository is the PostgreSQL implementation of PaperRepository.
type paperRepository struct {
	db *pgxpool.Pool
	pg *pgdb.PostgresDB
}

// NewPaperRepository creates a new paper repository.
func NewPaperRepository(db *pgxpool.Pool) PaperRepository {
	return &paperRepository{db: db, pg: &pgdb.PostgresDB{Pool: db}}
}

// GetByCourse retrieves a course's papers with their questions, newest year
// first. A non-empty years slice restricts the result to those years.
func (r *paperRepository) GetByCourse(ctx context.Context, courseID int64, years []int) ([]models.QuestionPaper, error) {
	builder := squirrel.Select(
		"id", "course_id", "year", "semester", "exam_type", "course_code", "course_title",
	).
		From("question_papers").
		Where("course_id = ?", courseID).
		OrderBy("year DESC", "exam_type").
		PlaceholderFormat(squirrel.Dollar)

	if len(years) > 0 {
		builder = builder.Where("year = ANY(?)", years)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving papers: %w", err)
	}
	defer rows.Close()

	var papers []models.QuestionPaper
	paperIDs := []int64{}
	index := map[int64]int{}
	for rows.Next() {
		var paper models.QuestionPaper
		if err := rows.Scan(
			&paper.ID,
			&paper.CourseID,
			&paper.Year,
			&paper.Semester,
			&paper.ExamType,
			&paper.CourseCode,
			&paper.CourseTitle,
		); err != nil {
			return nil, fmt.Errorf("error scanning paper: %w", err)
		}
		index[paper.ID] = len(papers)
		paperIDs = append(paperIDs, paper.ID)
		papers = append(papers, paper)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(papers) == 0 {
		return papers, nil
	}

	questionQuery := `
		SELECT id, question_paper_id, question_number, question_text, marks, tag, topic
		FROM questions
		WHERE question_paper_id = ANY($1)
		ORDER BY question_paper_id, question_number
	`
	qRows, err := r.db.Query(ctx, questionQuery, paperIDs)
	if err != nil {
		return nil, fmt.Errorf("error retrieving questions: %w", err)
	}
	defer qRows.Close()

	for qRows.Next() {
		var question models.Question
		if err := qRows.Scan(
			&question.ID,
			&question.QuestionPaperID,
			&question.QuestionNumber,
			&question.QuestionText,
			&question.Marks,
			&question.Tag,
			&question.Topic,
		); err != nil {
			return nil, fmt.Errorf("error scanning question: %w", err)
		}
		i := index[question.QuestionPaperID]
		papers[i].Questions = append(papers[i].Questions, question)
	}
	if err := qRows.Err(); err != nil {
		return nil, err
	}

	return papers, nil
}

// Replace upserts the paper identified by (courseID, year, examType) and
// swaps its question set for the submitted one. The whole operation runs in
// a single transaction so a failed upload never leaves a half-filled paper.
func (r *paperRepository) Replace(ctx context.Context, courseID int64, paper dto.PaperPayload) (int64, int, error) {
	var paperID int64

	txErr := r.pg.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`SELECT id FROM question_papers WHERE course_id = $1 AND year = $2 AND exam_type = $3`,
			courseID, paper.Year, paper.ExamType,
		).Scan(&paperID)

		switch {
		case err == nil:
			_, err = tx.Exec(ctx,
				`UPDATE question_papers SET semester = $1, course_code = $2, course_title = $3 WHERE id = $4`,
				paper.Semester, paper.CourseCode, paper.CourseTitle, paperID,
			)
			if err != nil {
				return fmt.Errorf("error updating paper: %w", err)
			}
			_, err = tx.Exec(ctx, `DELETE FROM questions WHERE question_paper_id = $1`, paperID)
			if err != nil {
				return fmt.Errorf("error clearing questions: %w", err)
			}
		case errors.Is(err, pgx.ErrNoRows):
			err = tx.QueryRow(ctx,
				`INSERT INTO question_papers (course_id, year, semester, exam_type, course_code, course_title)
				 VALUES ($1, $2, $3, $4, $5, $6)
				 RETURNING id`,
				courseID, paper.Year, paper.Semester, paper.ExamType, paper.CourseCode, paper.CourseTitle,
			).Scan(&paperID)
			if err != nil {
				if dberrors.IsForeignKeyViolation(err) {
					return apperrors.ErrCourseNotFound
				}
				// A concurrent upload for the same key can win the insert race.
				if dberrors.IsDuplicateConstraintError(err, "question_papers_course_year_type_key") {
					return apperrors.NewConflictError("paper was uploaded concurrently, retry")
				}
				return fmt.Errorf("error creating paper: %w", err)
			}
		default:
			return fmt.Errorf("error looking up paper: %w", err)
		}

		batch := &pgx.Batch{}
		for _, q := range paper.Questions {
			batch.Queue(
				`INSERT INTO questions (question_paper_id, question_number, question_text, marks, tag, topic)
				 VALUES ($1, $2, $3, $4, $5, $6)`,
				paperID, q.QuestionNumber, q.QuestionText, q.Marks, q.Tag, q.Topic,
			)
		}
		results := tx.SendBatch(ctx, batch)
		for range paper.Questions {
			if _, err := results.Exec(); err != nil {
				results.Close()
				return fmt.Errorf("error inserting question: %w", err)
			}
		}
		if err := results.Close(); err != nil {
			return fmt.Errorf("error closing batch: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return 0, 0, txErr
	}

	return paperID, len(paper.Questions), nil
}

// ListQuestions lists questions with their paper context, filtered by paper
// or by course, newest year first then by slot.
func (r *paperRepository) ListQuestions(ctx context.Context, courseID, paperID *int64) ([]models.Question, error) {
	builder := squirrel.Select(
		"q.id", "q.question_paper_id", "q.question_number", "q.question_text", "q.marks", "q.tag", "q.topic",
		"qp.course_id", "qp.year", "qp.semester", "qp.exam_type", "qp.course_code", "qp.course_title",
	).
		From("questions q").
		Join("question_papers qp ON qp.id = q.question_paper_id").
		OrderBy("qp.year DESC", "q.question_number").
		PlaceholderFormat(squirrel.Dollar)

	if paperID != nil {
		builder = builder.Where("q.question_paper_id = ?", *paperID)
	} else if courseID != nil {
		builder = builder.Where("qp.course_id = ?", *courseID)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving questions: %w", err)
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var question models.Question
		var paper models.QuestionPaper
		if err := rows.Scan(
			&question.ID,
			&question.QuestionPaperID,
			&question.QuestionNumber,
			&question.QuestionText,
			&question.Marks,
			&question.Tag,
			&question.Topic,
			&paper.CourseID,
			&paper.Year,
			&paper.Semester,
			&paper.ExamType,
			&paper.CourseCode,
			&paper.CourseTitle,
		); err != nil {
			return nil, fmt.Errorf("error scanning question: %w", err)
		}
		paper.ID = question.QuestionPaperID
		question.QuestionPaper = &paper
		questions = append(questions, question)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return questions, nil
}

// DeleteQuestion deletes a single question by ID.
func (r *paperRepository) DeleteQuestion(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting question: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrQuestionNotFound
	}

	return nil
}

// DeletePaper deletes a paper by ID; its questions cascade.
func (r *paperRepository) DeletePaper(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM question_papers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting paper: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrPaperNotFound
	}

	return nil
}
