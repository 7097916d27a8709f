package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devrim/examforge/internal/app/models/dto"
	"github.com/devrim/examforge/internal/app/services"
	"github.com/devrim/examforge/internal/middleware"
)

// ShuffleController assembles shuffled papers and serves their exports.
type ShuffleController struct {
	shuffleService *services.ShuffleService
	exportService  *services.ExportService
}

// NewShuffleController creates a new ShuffleController.
func NewShuffleController(shuffleService *services.ShuffleService, exportService *services.ExportService) *ShuffleController {
	return &ShuffleController{
		shuffleService: shuffleService,
		exportService:  exportService,
	}
}

// bindPaper reads an already assembled paper from the request body. Exports
// serialize the paper the caller was shown, they never redraw it.
func (c *ShuffleController) bindPaper(ctx *gin.Context) (*dto.ShuffledPaper, bool) {
	var paper dto.ShuffledPaper
	if err := ctx.ShouldBindJSON(&paper); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid paper document")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithDetails(err.Error())))
		return nil, false
	}
	if paper.CourseCode == "" || len(paper.Questions) == 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Paper document must carry a course code and at least one question")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return nil, false
	}
	return &paper, true
}

// AssemblePaper builds a shuffled paper
// @Summary Assemble a shuffled paper
// @Description Builds a synthetic paper with one randomly chosen question per slot, drawn from the course's stored papers
// @Tags shuffle
// @Accept json
// @Produce json
// @Param request body dto.ShuffleRequest true "Course and optional year filter"
// @Success 200 {object} dto.APIResponse{data=dto.ShuffledPaper}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /shuffle [post]
func (c *ShuffleController) AssemblePaper(ctx *gin.Context) {
	var req dto.ShuffleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid shuffle request")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithDetails(err.Error())))
		return
	}

	paper, err := c.shuffleService.AssemblePaper(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      paper,
		Timestamp: time.Now(),
	})
}

// ExportText downloads a shuffled paper as plain text
// @Summary Export a shuffled paper as text
// @Tags shuffle
// @Accept json
// @Produce plain
// @Param request body dto.ShuffledPaper true "Assembled paper document"
// @Success 200 {string} string "Plain-text paper"
// @Failure 400 {object} dto.ErrorResponse
// @Router /shuffle/export [post]
func (c *ShuffleController) ExportText(ctx *gin.Context) {
	paper, ok := c.bindPaper(ctx)
	if !ok {
		return
	}

	content := c.exportService.RenderText(paper)
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", c.exportService.TextFilename(paper)))
	ctx.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(content))
}

// ExportXLSX downloads a shuffled paper as a spreadsheet
// @Summary Export a shuffled paper as a spreadsheet
// @Tags shuffle
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param request body dto.ShuffledPaper true "Assembled paper document"
// @Success 200 {string} string "Workbook bytes"
// @Failure 400 {object} dto.ErrorResponse
// @Router /shuffle/export/xlsx [post]
func (c *ShuffleController) ExportXLSX(ctx *gin.Context) {
	paper, ok := c.bindPaper(ctx)
	if !ok {
		return
	}

	content, err := c.exportService.RenderXLSX(paper)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", c.exportService.XLSXFilename(paper)))
	ctx.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", content)
}
