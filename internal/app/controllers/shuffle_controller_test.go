package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devrim/examforge/internal/app/models/dto"
	"github.com/devrim/examforge/internal/app/services"
)

func newExportRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewShuffleController(nil, services.NewExportService())

	router := gin.New()
	router.POST("/shuffle/export", controller.ExportText)
	router.POST("/shuffle/export/xlsx", controller.ExportXLSX)
	return router
}

func exportPaperDoc() dto.ShuffledPaper {
	return dto.ShuffledPaper{
		CourseCode:    "CSE2113",
		CourseTitle:   "Data Structures",
		Semester:      3,
		GeneratedFrom: []int{2023, 2021},
		Questions: []dto.ShuffledQuestion{
			{QuestionNumber: "1(a)", QuestionText: "Define a stack.", Tag: "memory", Year: 2023, ExamType: "regular"},
			{QuestionNumber: "1(b)", QuestionText: "Define a queue.", Tag: "memory", Year: 2021, ExamType: "regular"},
		},
	}
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestExportText_SerializesPostedPaper(t *testing.T) {
	router := newExportRouter()
	paper := exportPaperDoc()

	w := postJSON(t, router, "/shuffle/export", paper)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="CSE2113_shuffled_question_paper.txt"`,
		w.Header().Get("Content-Disposition"))

	// The download is the posted document, not a fresh draw.
	content := w.Body.String()
	assert.True(t, strings.HasPrefix(content, "CSE2113 - Data Structures\n"))
	assert.Contains(t, content, "Generated from years: 2023, 2021")
	assert.Contains(t, content, "1(a). Define a stack.")
	assert.Contains(t, content, "1(b). Define a queue.")
	assert.Equal(t, services.NewExportService().RenderText(&paper), content)
}

func TestExportXLSX_SerializesPostedPaper(t *testing.T) {
	router := newExportRouter()

	w := postJSON(t, router, "/shuffle/export/xlsx", exportPaperDoc())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="CSE2113_shuffled_question_paper.xlsx"`,
		w.Header().Get("Content-Disposition"))
	assert.NotEmpty(t, w.Body.Bytes())
}

func TestExportText_RejectsEmptyPaper(t *testing.T) {
	router := newExportRouter()

	w := postJSON(t, router, "/shuffle/export", dto.ShuffledPaper{CourseCode: "CSE2113"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
