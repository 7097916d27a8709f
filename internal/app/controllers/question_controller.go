package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devrim/examforge/internal/app/models/dto"
	"github.com/devrim/examforge/internal/app/services"
	"github.com/devrim/examforge/internal/middleware"
)

// QuestionController handles question-paper uploads and question listing.
type QuestionController struct {
	paperService  *services.PaperService
	searchService *services.SearchService
}

// NewQuestionController creates a new QuestionController.
func NewQuestionController(paperService *services.PaperService, searchService *services.SearchService) *QuestionController {
	return &QuestionController{
		paperService:  paperService,
		searchService: searchService,
	}
}

// UploadPaper stores a question paper
// @Summary Upload a question paper
// @Description Upserts the paper for (course, year, exam type) and replaces its questions wholesale
// @Tags questions
// @Accept json
// @Produce json
// @Param request body dto.PaperUploadRequest true "Paper document"
// @Success 201 {object} dto.APIResponse{data=dto.PaperUploadResult}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions [post]
func (c *QuestionController) UploadPaper(ctx *gin.Context) {
	var req dto.PaperUploadRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid paper data")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithDetails(err.Error())))
		return
	}

	result, err := c.paperService.UploadPaper(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	// A new paper changes the year annotations search returns.
	c.searchService.InvalidateCache(ctx)

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// ListQuestions lists stored questions
// @Summary List questions
// @Description Lists stored questions with paper context, filtered by course or paper
// @Tags questions
// @Produce json
// @Param courseId query int false "Filter by course ID"
// @Param paperId query int false "Filter by paper ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Question}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /questions [get]
func (c *QuestionController) ListQuestions(ctx *gin.Context) {
	var courseID, paperID *int64
	if raw := ctx.Query("courseId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course ID")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithField("courseId")))
			return
		}
		courseID = &id
	}
	if raw := ctx.Query("paperId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid paper ID")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithField("paperId")))
			return
		}
		paperID = &id
	}

	questions, err := c.paperService.ListQuestions(ctx, courseID, paperID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      questions,
		Timestamp: time.Now(),
	})
}

// DeleteQuestion deletes a single question
// @Summary Delete a question
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/{id} [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid question ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithField("id")))
		return
	}

	if err := c.paperService.DeleteQuestion(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "question deleted"},
		Timestamp: time.Now(),
	})
}

// DeletePaper deletes a paper with its questions
// @Summary Delete a question paper
// @Tags questions
// @Produce json
// @Param id path int true "Paper ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /questions/papers/{id} [delete]
func (c *QuestionController) DeletePaper(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid paper ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithField("id")))
		return
	}

	if err := c.paperService.DeletePaper(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.searchService.InvalidateCache(ctx)

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "question paper deleted"},
		Timestamp: time.Now(),
	})
}
