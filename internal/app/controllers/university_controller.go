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

// UniversityController handles university-related endpoints.
type UniversityController struct {
	universityService *services.UniversityService
}

// NewUniversityController creates a new UniversityController.
func NewUniversityController(universityService *services.UniversityService) *UniversityController {
	return &UniversityController{universityService: universityService}
}

// GetAllUniversities retrieves all universities
// @Summary List universities
// @Description Retrieves all universities with their department counts
// @Tags universities
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.University}
// @Failure 500 {object} dto.ErrorResponse
// @Router /universities [get]
func (c *UniversityController) GetAllUniversities(ctx *gin.Context) {
	universities, err := c.universityService.GetAllUniversities(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      universities,
		Timestamp: time.Now(),
	})
}

// CreateUniversity creates a university
// @Summary Create a university
// @Tags universities
// @Accept json
// @Produce json
// @Param request body dto.CreateUniversityRequest true "University information"
// @Success 201 {object} dto.APIResponse{data=models.University}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /universities [post]
func (c *UniversityController) CreateUniversity(ctx *gin.Context) {
	var req dto.CreateUniversityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid university data")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithDetails(err.Error())))
		return
	}

	university, err := c.universityService.CreateUniversity(ctx, req.Name, req.Description)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      university,
		Timestamp: time.Now(),
	})
}

// UpdateUniversity updates a university
// @Summary Update a university
// @Tags universities
// @Accept json
// @Produce json
// @Param id path int true "University ID"
// @Param request body dto.UpdateUniversityRequest true "University information"
// @Success 200 {object} dto.APIResponse{data=models.University}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /universities/{id} [put]
func (c *UniversityController) UpdateUniversity(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid university ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithField("id")))
		return
	}

	var req dto.UpdateUniversityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid university data")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithDetails(err.Error())))
		return
	}

	university, err := c.universityService.UpdateUniversity(ctx, id, req.Name, req.Description)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      university,
		Timestamp: time.Now(),
	})
}

// DeleteUniversity deletes a university
// @Summary Delete a university
// @Description Deletes a university together with its departments, courses and papers
// @Tags universities
// @Produce json
// @Param id path int true "University ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /universities/{id} [delete]
func (c *UniversityController) DeleteUniversity(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid university ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithField("id")))
		return
	}

	if err := c.universityService.DeleteUniversity(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "university deleted"},
		Timestamp: time.Now(),
	})
}
