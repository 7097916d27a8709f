package services

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/devrim/examforge/internal/app/models"
	"github.com/devrim/examforge/internal/app/models/dto"
	"github.com/devrim/examforge/internal/pkg/apperrors"
)

// fakeUniversityRepo is an in-memory UniversityRepository.
type fakeUniversityRepo struct {
	universities map[int64]*models.University
	nextID       int64
}

func newFakeUniversityRepo() *fakeUniversityRepo {
	return &fakeUniversityRepo{universities: map[int64]*models.University{}, nextID: 1}
}

func (f *fakeUniversityRepo) GetAll(ctx context.Context) ([]*models.University, error) {
	var out []*models.University
	for _, u := range f.universities {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUniversityRepo) GetByID(ctx context.Context, id int64) (*models.University, error) {
	u, ok := f.universities[id]
	if !ok {
		return nil, apperrors.ErrUniversityNotFound
	}
	return u, nil
}

func (f *fakeUniversityRepo) Create(ctx context.Context, university *models.University) error {
	for _, u := range f.universities {
		if u.Name == university.Name {
			return apperrors.ErrUniversityAlreadyExists
		}
	}
	university.ID = f.nextID
	f.nextID++
	f.universities[university.ID] = university
	return nil
}

func (f *fakeUniversityRepo) Update(ctx context.Context, university *models.University) error {
	if _, ok := f.universities[university.ID]; !ok {
		return apperrors.ErrUniversityNotFound
	}
	f.universities[university.ID] = university
	return nil
}

func (f *fakeUniversityRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.universities[id]; !ok {
		return apperrors.ErrUniversityNotFound
	}
	delete(f.universities, id)
	return nil
}

// fakeDepartmentRepo is an in-memory DepartmentRepository. Create is
// guarded because bulk submissions fan rows out concurrently.
type fakeDepartmentRepo struct {
	mu          sync.Mutex
	departments map[int64]*models.Department
	nextID      int64
}

func newFakeDepartmentRepo() *fakeDepartmentRepo {
	return &fakeDepartmentRepo{departments: map[int64]*models.Department{}, nextID: 1}
}

func (f *fakeDepartmentRepo) GetAll(ctx context.Context, universityID *int64) ([]*models.Department, error) {
	var out []*models.Department
	for _, d := range f.departments {
		if universityID != nil && d.UniversityID != *universityID {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeDepartmentRepo) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	d, ok := f.departments[id]
	if !ok {
		return nil, apperrors.ErrDepartmentNotFound
	}
	return d, nil
}

func (f *fakeDepartmentRepo) Create(ctx context.Context, department *models.Department) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, d := range f.departments {
		if d.UniversityID == department.UniversityID && d.Name == department.Name {
			return apperrors.ErrDepartmentAlreadyExists
		}
	}
	department.ID = f.nextID
	f.nextID++
	f.departments[department.ID] = department
	return nil
}

func (f *fakeDepartmentRepo) Update(ctx context.Context, department *models.Department) error {
	if _, ok := f.departments[department.ID]; !ok {
		return apperrors.ErrDepartmentNotFound
	}
	f.departments[department.ID] = department
	return nil
}

func (f *fakeDepartmentRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.departments[id]; !ok {
		return apperrors.ErrDepartmentNotFound
	}
	delete(f.departments, id)
	return nil
}

// fakeCourseRepo is an in-memory CourseRepository. Create is guarded
// because bulk submissions fan rows out concurrently.
type fakeCourseRepo struct {
	mu      sync.Mutex
	courses map[int64]*models.Course
	nextID  int64
	years   map[int64][]int // course ID -> paper years for search results
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{
		courses: map[int64]*models.Course{},
		nextID:  1,
		years:   map[int64][]int{},
	}
}

func (f *fakeCourseRepo) GetAll(ctx context.Context, departmentID *int64) ([]*models.Course, error) {
	var out []*models.Course
	for _, c := range f.courses {
		if departmentID != nil && c.DepartmentID != *departmentID {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCourseRepo) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	c, ok := f.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return c, nil
}

func (f *fakeCourseRepo) Create(ctx context.Context, course *models.Course) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.courses {
		if c.DepartmentID == course.DepartmentID && c.Code == course.Code {
			return apperrors.ErrCourseAlreadyExists
		}
	}
	course.ID = f.nextID
	f.nextID++
	f.courses[course.ID] = course
	return nil
}

func (f *fakeCourseRepo) Update(ctx context.Context, course *models.Course) error {
	if _, ok := f.courses[course.ID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	f.courses[course.ID] = course
	return nil
}

func (f *fakeCourseRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(f.courses, id)
	return nil
}

func (f *fakeCourseRepo) Search(ctx context.Context, query string, limit int) ([]dto.CourseSearchResult, error) {
	results := []dto.CourseSearchResult{}
	lower := strings.ToLower(query)
	for _, c := range f.courses {
		if len(results) == limit {
			break
		}
		if !strings.Contains(strings.ToLower(c.Code), lower) && !strings.Contains(strings.ToLower(c.Name), lower) {
			continue
		}
		years := f.years[c.ID]
		if years == nil {
			years = []int{}
		}
		results = append(results, dto.CourseSearchResult{
			ID:           c.ID,
			DepartmentID: c.DepartmentID,
			Code:         c.Code,
			Name:         c.Name,
			Semester:     c.Semester,
			Credits:      c.Credits,
			Years:        years,
		})
	}
	return results, nil
}

// fakePaperRepo is an in-memory PaperRepository.
type fakePaperRepo struct {
	papers      map[int64]*models.QuestionPaper
	nextPaperID int64
	nextQID     int64
}

func newFakePaperRepo() *fakePaperRepo {
	return &fakePaperRepo{papers: map[int64]*models.QuestionPaper{}, nextPaperID: 1, nextQID: 1}
}

func (f *fakePaperRepo) addPaper(courseID int64, year int, examType models.ExamType, code, title string, semester int, questions ...models.Question) *models.QuestionPaper {
	paper := &models.QuestionPaper{
		ID:          f.nextPaperID,
		CourseID:    courseID,
		Year:        year,
		Semester:    semester,
		ExamType:    examType,
		CourseCode:  code,
		CourseTitle: title,
	}
	f.nextPaperID++
	for i := range questions {
		questions[i].ID = f.nextQID
		f.nextQID++
		questions[i].QuestionPaperID = paper.ID
	}
	paper.Questions = questions
	f.papers[paper.ID] = paper
	return paper
}

func (f *fakePaperRepo) GetByCourse(ctx context.Context, courseID int64, years []int) ([]models.QuestionPaper, error) {
	yearSet := map[int]struct{}{}
	for _, y := range years {
		yearSet[y] = struct{}{}
	}

	var out []models.QuestionPaper
	for _, p := range f.papers {
		if p.CourseID != courseID {
			continue
		}
		if len(years) > 0 {
			if _, ok := yearSet[p.Year]; !ok {
				continue
			}
		}
		out = append(out, *p)
	}
	// Newest year first, like the real repository.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year > out[j].Year
		}
		return out[i].ExamType < out[j].ExamType
	})
	return out, nil
}

func (f *fakePaperRepo) Replace(ctx context.Context, courseID int64, paper dto.PaperPayload) (int64, int, error) {
	for _, existing := range f.papers {
		if existing.CourseID == courseID && existing.Year == paper.Year && existing.ExamType == paper.ExamType {
			existing.Semester = paper.Semester
			existing.CourseCode = paper.CourseCode
			existing.CourseTitle = paper.CourseTitle
			existing.Questions = nil
			for _, q := range paper.Questions {
				existing.Questions = append(existing.Questions, models.Question{
					ID:              f.nextQID,
					QuestionPaperID: existing.ID,
					QuestionNumber:  q.QuestionNumber,
					QuestionText:    q.QuestionText,
					Marks:           q.Marks,
					Tag:             q.Tag,
					Topic:           q.Topic,
				})
				f.nextQID++
			}
			return existing.ID, len(paper.Questions), nil
		}
	}

	created := f.addPaper(courseID, paper.Year, paper.ExamType, paper.CourseCode, paper.CourseTitle, paper.Semester)
	for _, q := range paper.Questions {
		created.Questions = append(created.Questions, models.Question{
			ID:              f.nextQID,
			QuestionPaperID: created.ID,
			QuestionNumber:  q.QuestionNumber,
			QuestionText:    q.QuestionText,
			Marks:           q.Marks,
			Tag:             q.Tag,
			Topic:           q.Topic,
		})
		f.nextQID++
	}
	return created.ID, len(paper.Questions), nil
}

func (f *fakePaperRepo) ListQuestions(ctx context.Context, courseID, paperID *int64) ([]models.Question, error) {
	var out []models.Question
	for _, p := range f.papers {
		if paperID != nil && p.ID != *paperID {
			continue
		}
		if paperID == nil && courseID != nil && p.CourseID != *courseID {
			continue
		}
		out = append(out, p.Questions...)
	}
	return out, nil
}

func (f *fakePaperRepo) DeleteQuestion(ctx context.Context, id int64) error {
	for _, p := range f.papers {
		for i, q := range p.Questions {
			if q.ID == id {
				p.Questions = append(p.Questions[:i], p.Questions[i+1:]...)
				return nil
			}
		}
	}
	return apperrors.ErrQuestionNotFound
}

func (f *fakePaperRepo) DeletePaper(ctx context.Context, id int64) error {
	if _, ok := f.papers[id]; !ok {
		return apperrors.ErrPaperNotFound
	}
	delete(f.papers, id)
	return nil
}

// fakeAdminRepo is an in-memory AdminRepository.
type fakeAdminRepo struct {
	admins map[int64]*models.Admin
	nextID int64
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: map[int64]*models.Admin{}, nextID: 1}
}

func (f *fakeAdminRepo) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	for _, a := range f.admins {
		if a.Username == username {
			return a, nil
		}
	}
	return nil, apperrors.ErrAdminNotFound
}

func (f *fakeAdminRepo) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	a, ok := f.admins[id]
	if !ok {
		return nil, apperrors.ErrAdminNotFound
	}
	return a, nil
}

func (f *fakeAdminRepo) Create(ctx context.Context, admin *models.Admin) error {
	for _, a := range f.admins {
		if a.Username == admin.Username {
			return apperrors.ErrAdminAlreadyExists
		}
	}
	admin.ID = f.nextID
	f.nextID++
	f.admins[admin.ID] = admin
	return nil
}

// fixedRand replays a fixed sequence of picks, then sticks at zero.
type fixedRand struct {
	picks []int
	pos   int
}

func (r *fixedRand) IntN(n int) int {
	if r.pos >= len(r.picks) {
		return 0
	}
	pick := r.picks[r.pos]
	r.pos++
	if pick >= n {
		return n - 1
	}
	return pick
}
