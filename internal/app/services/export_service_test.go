package services

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/devrim/examforge/internal/app/models"
	"github.com/devrim/examforge/internal/app/models/dto"
)

func samplePaper() *dto.ShuffledPaper {
	return &dto.ShuffledPaper{
		CourseCode:    "CSE2113",
		CourseTitle:   "Data Structures",
		Semester:      3,
		GeneratedFrom: []int{2023, 2022},
		Questions: []dto.ShuffledQuestion{
			{QuestionNumber: "1(a)", QuestionText: "Define a stack.", Marks: floatPtr(5), Tag: "definition", Year: 2023, ExamType: models.ExamTypeRegular},
			{QuestionNumber: "1(b)", QuestionText: "Explain push and pop.", Marks: floatPtr(5), Tag: "explanation", Topic: strPtr("stacks"), Year: 2022, ExamType: models.ExamTypeRegular},
			{QuestionNumber: "2(a)", QuestionText: "Write an algorithm for BFS.", Marks: floatPtr(10), Tag: "algorithm", Topic: strPtr("graphs"), Year: 2023, ExamType: models.ExamTypeBacklog},
		},
	}
}

func TestRenderText(t *testing.T) {
	svc := NewExportService()
	content := svc.RenderText(samplePaper())

	expected := "CSE2113 - Data Structures\n" +
		"Semester: 3\n" +
		"Generated from years: 2023, 2022\n" +
		strings.Repeat("=", 60) + "\n\n" +
		"1(a). Define a stack. [5 marks]\n" +
		"   Tag: definition | From: 2023 (regular)\n\n" +
		"1(b). Explain push and pop. [5 marks]\n" +
		"   Tag: explanation | Topic: stacks | From: 2022 (regular)\n\n" +
		"\n" +
		"2(a). Write an algorithm for BFS. [10 marks]\n" +
		"   Tag: algorithm | Topic: graphs | From: 2023 (backlog)\n\n" +
		"\n"

	assert.Equal(t, expected, content)
}

func TestRenderText_StripsMathMarkup(t *testing.T) {
	svc := NewExportService()
	paper := &dto.ShuffledPaper{
		CourseCode:    "MAT1101",
		CourseTitle:   "Calculus",
		Semester:      1,
		GeneratedFrom: []int{2023},
		Questions: []dto.ShuffledQuestion{
			{QuestionNumber: "1(a)", QuestionText: `Evaluate $\frac{1}{2} \times 4$.`, Tag: "computation", Year: 2023, ExamType: models.ExamTypeRegular},
		},
	}

	content := svc.RenderText(paper)
	assert.Contains(t, content, "(1)/(2) x 4")
	assert.NotContains(t, content, "$")
	assert.NotContains(t, content, `\frac`)
}

func TestExportFilenames(t *testing.T) {
	svc := NewExportService()
	paper := samplePaper()

	assert.Equal(t, "CSE2113_shuffled_question_paper.txt", svc.TextFilename(paper))
	assert.Equal(t, "CSE2113_shuffled_question_paper.xlsx", svc.XLSXFilename(paper))
}

func TestRenderXLSX(t *testing.T) {
	svc := NewExportService()
	content, err := svc.RenderXLSX(samplePaper())
	require.NoError(t, err)
	require.NotEmpty(t, content)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	const sheet = "Question Paper"

	title, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "CSE2113 - Data Structures", title)

	slot, err := f.GetCellValue(sheet, "A6")
	require.NoError(t, err)
	assert.Equal(t, "1(a)", slot)

	text, err := f.GetCellValue(sheet, "B6")
	require.NoError(t, err)
	assert.Equal(t, "Define a stack.", text)

	year, err := f.GetCellValue(sheet, "F8")
	require.NoError(t, err)
	assert.Equal(t, "2023", year)
}
