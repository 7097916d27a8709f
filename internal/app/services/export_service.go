package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/devrim/examforge/internal/app/models/dto"
	"github.com/devrim/examforge/internal/pkg/mathtext"
)

// ExportService renders assembled papers into downloadable documents.
type ExportService struct{}

// NewExportService creates a new export service instance.
func NewExportService() *ExportService {
	return &ExportService{}
}

// TextFilename names the plain-text download for a paper.
func (s *ExportService) TextFilename(paper *dto.ShuffledPaper) string {
	return paper.CourseCode + "_shuffled_question_paper.txt"
}

// XLSXFilename names the spreadsheet download for a paper.
func (s *ExportService) XLSXFilename(paper *dto.ShuffledPaper) string {
	return paper.CourseCode + "_shuffled_question_paper.xlsx"
}

func formatMarks(marks *float64) string {
	if marks == nil {
		return ""
	}
	return strconv.FormatFloat(*marks, 'f', -1, 64)
}

func mainNumberOf(questionNumber string) string {
	return mainNumberRe.FindString(questionNumber)
}

// RenderText renders a paper as plain text. Math markup in question bodies
// is reduced to a readable ASCII form.
func (s *ExportService) RenderText(paper *dto.ShuffledPaper) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s - %s\n", paper.CourseCode, paper.CourseTitle)
	fmt.Fprintf(&b, "Semester: %d\n", paper.Semester)
	years := make([]string, len(paper.GeneratedFrom))
	for i, year := range paper.GeneratedFrom {
		years[i] = strconv.Itoa(year)
	}
	fmt.Fprintf(&b, "Generated from years: %s\n", strings.Join(years, ", "))
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	// Questions arrive grouped by main number already; a blank line
	// separates one group from the next.
	previousMain := ""
	for i, q := range paper.Questions {
		main := mainNumberOf(q.QuestionNumber)
		if i > 0 && main != previousMain {
			b.WriteString("\n")
		}
		previousMain = main

		fmt.Fprintf(&b, "%s. %s", q.QuestionNumber, mathtext.PlainText(q.QuestionText))
		if q.Marks != nil {
			fmt.Fprintf(&b, " [%s marks]", formatMarks(q.Marks))
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, "   Tag: %s", q.Tag)
		if q.Topic != nil {
			fmt.Fprintf(&b, " | Topic: %s", *q.Topic)
		}
		fmt.Fprintf(&b, " | From: %d (%s)", q.Year, q.ExamType)
		b.WriteString("\n\n")
	}
	b.WriteString("\n")

	return b.String()
}

// RenderXLSX renders a paper as a spreadsheet with one row per question.
func (s *ExportService) RenderXLSX(paper *dto.ShuffledPaper) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Question Paper"
	f.SetSheetName("Sheet1", sheet)

	f.SetCellValue(sheet, "A1", fmt.Sprintf("%s - %s", paper.CourseCode, paper.CourseTitle))
	f.SetCellValue(sheet, "A2", fmt.Sprintf("Semester: %d", paper.Semester))
	years := make([]string, len(paper.GeneratedFrom))
	for i, year := range paper.GeneratedFrom {
		years[i] = strconv.Itoa(year)
	}
	f.SetCellValue(sheet, "A3", "Generated from years: "+strings.Join(years, ", "))

	header := []string{"No.", "Question", "Marks", "Tag", "Topic", "Year", "Exam Type"}
	for i, title := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 5)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheet, cell, title)
	}

	for i, q := range paper.Questions {
		row := 6 + i
		topic := ""
		if q.Topic != nil {
			topic = *q.Topic
		}
		values := []interface{}{
			q.QuestionNumber,
			mathtext.PlainText(q.QuestionText),
			formatMarks(q.Marks),
			q.Tag,
			topic,
			q.Year,
			string(q.ExamType),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			f.SetCellValue(sheet, cell, value)
		}
	}

	if err := f.SetColWidth(sheet, "B", "B", 80); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("error writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}
