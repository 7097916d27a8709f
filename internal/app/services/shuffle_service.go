package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"regexp"
	"sort"
	"strconv"

	"github.com/devrim/examforge/internal/app/models/dto"
	"github.com/devrim/examforge/internal/app/repositories"
	"github.com/devrim/examforge/internal/pkg/apperrors"
	"github.com/devrim/examforge/internal/pkg/logger"
)

// mainNumberRe extracts the leading integer of a slot identifier, e.g. "1"
// from "1(a)".
var mainNumberRe = regexp.MustCompile(`^(\d+)`)

// Rand supplies the random picks of paper assembly. Production uses
// math/rand/v2; tests inject a deterministic sequence.
type Rand interface {
	IntN(n int) int
}

type stdRand struct{}

func (stdRand) IntN(n int) int { return rand.IntN(n) }

// ShuffleService assembles synthetic question papers from a course's stored
// papers: exactly one randomly chosen variant per distinct slot.
type ShuffleService struct {
	paperRepo  repositories.PaperRepository
	courseRepo repositories.CourseRepository
	rng        Rand
}

// NewShuffleService creates a new shuffle service instance using the
// default random source.
func NewShuffleService(paperRepo repositories.PaperRepository, courseRepo repositories.CourseRepository) *ShuffleService {
	return NewShuffleServiceWithRand(paperRepo, courseRepo, stdRand{})
}

// NewShuffleServiceWithRand creates a shuffle service with an explicit
// random source.
func NewShuffleServiceWithRand(paperRepo repositories.PaperRepository, courseRepo repositories.CourseRepository, rng Rand) *ShuffleService {
	return &ShuffleService{
		paperRepo:  paperRepo,
		courseRepo: courseRepo,
		rng:        rng,
	}
}

// AssemblePaper builds a shuffled paper for the course, drawing only from
// papers of the requested years when any are given.
func (s *ShuffleService) AssemblePaper(ctx context.Context, req dto.ShuffleRequest) (*dto.ShuffledPaper, error) {
	course, err := s.courseRepo.GetByID(ctx, req.CourseID)
	if err != nil {
		return nil, err
	}

	papers, err := s.paperRepo.GetByCourse(ctx, req.CourseID, req.Years)
	if err != nil {
		return nil, err
	}
	if len(papers) == 0 {
		return nil, apperrors.ErrNoPapersForCriteria
	}

	// Group candidates two levels deep: main number, then exact slot.
	slots := map[int]map[string][]dto.ShuffledQuestion{}
	for _, paper := range papers {
		for _, question := range paper.Questions {
			match := mainNumberRe.FindStringSubmatch(question.QuestionNumber)
			if match == nil {
				return nil, apperrors.NewValidationError(
					fmt.Sprintf("question number %q has no leading main number", question.QuestionNumber))
			}
			mainNumber, _ := strconv.Atoi(match[1])
			if slots[mainNumber] == nil {
				slots[mainNumber] = map[string][]dto.ShuffledQuestion{}
			}
			slots[mainNumber][question.QuestionNumber] = append(slots[mainNumber][question.QuestionNumber], dto.ShuffledQuestion{
				QuestionNumber: question.QuestionNumber,
				QuestionText:   question.QuestionText,
				Marks:          question.Marks,
				Tag:            question.Tag,
				Topic:          question.Topic,
				Year:           paper.Year,
				ExamType:       paper.ExamType,
			})
		}
	}

	mainNumbers := make([]int, 0, len(slots))
	for mainNumber := range slots {
		mainNumbers = append(mainNumbers, mainNumber)
	}
	sort.Ints(mainNumbers)

	var selected []dto.ShuffledQuestion
	for _, mainNumber := range mainNumbers {
		group := slots[mainNumber]
		numbers := make([]string, 0, len(group))
		for number := range group {
			numbers = append(numbers, number)
		}
		sort.Strings(numbers)
		for _, number := range numbers {
			candidates := group[number]
			selected = append(selected, candidates[s.rng.IntN(len(candidates))])
		}
	}

	// Distinct contributing years, newest first. Papers arrive ordered by
	// year descending, so the first paper carries the freshest identity
	// snapshot.
	var years []int
	seen := map[int]struct{}{}
	for _, paper := range papers {
		if _, ok := seen[paper.Year]; ok {
			continue
		}
		seen[paper.Year] = struct{}{}
		years = append(years, paper.Year)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	logger.Debug().
		Int64("courseId", req.CourseID).
		Int("papers", len(papers)).
		Int("questions", len(selected)).
		Msg("Shuffled paper assembled")

	return &dto.ShuffledPaper{
		CourseCode:    papers[0].CourseCode,
		CourseTitle:   papers[0].CourseTitle,
		Semester:      papers[0].Semester,
		Course:        course,
		GeneratedFrom: years,
		Questions:     selected,
	}, nil
}
