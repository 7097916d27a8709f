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

// DepartmentController handles department-related endpoints.
type DepartmentController struct {
	departmentService *services.DepartmentService
}

// NewDepartmentController creates a new DepartmentController.
func NewDepartmentController(departmentService *services.DepartmentService) *DepartmentController {
	return &DepartmentController{departmentService: departmentService}
}

// GetAllDepartments lists departments
// @Summary List departments
// @Description Retrieves departments with course counts, optionally filtered by university
// @Tags departments
// @Produce json
// @Param universityId query int false "Filter by university ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Department}
// @Failure 400 {object} dto.ErrorResponse
// @Router /departments [get]
func (c *DepartmentController) GetAllDepartments(ctx *gin.Context) {
	var universityID *int64
	if raw := ctx.Query("universityId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid university ID")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithField("universityId")))
			return
		}
		universityID = &id
	}

	departments, err := c.departmentService.GetAllDepartments(ctx, universityID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      departments,
		Timestamp: time.Now(),
	})
}

// BulkCreateDepartments creates departments from a comma-separated list
// @Summary Bulk create departments
// @Description Creates one department per comma-separated name; each row succeeds or fails independently
// @Tags departments
// @Accept json
// @Produce json
// @Param request body dto.BulkCreateDepartmentsRequest true "University ID and comma-separated names"
// @Success 201 {object} dto.APIResponse{data=dto.BulkCreateResult}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /departments [post]
func (c *DepartmentController) BulkCreateDepartments(ctx *gin.Context) {
	var req dto.BulkCreateDepartmentsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid department data")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithDetails(err.Error())))
		return
	}

	result, err := c.departmentService.BulkCreateDepartments(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      result,
		Timestamp: time.Now(),
	})
}

// UpdateDepartment renames a department
// @Summary Rename a department
// @Tags departments
// @Accept json
// @Produce json
// @Param id path int true "Department ID"
// @Param request body dto.UpdateDepartmentRequest true "New name"
// @Success 200 {object} dto.APIResponse{data=models.Department}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /departments/{id} [put]
func (c *DepartmentController) UpdateDepartment(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid department ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithField("id")))
		return
	}

	var req dto.UpdateDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid department data")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithDetails(err.Error())))
		return
	}

	department, err := c.departmentService.UpdateDepartment(ctx, id, req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      department,
		Timestamp: time.Now(),
	})
}

// DeleteDepartment deletes a department
// @Summary Delete a department
// @Tags departments
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /departments/{id} [delete]
func (c *DepartmentController) DeleteDepartment(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid department ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithField("id")))
		return
	}

	if err := c.departmentService.DeleteDepartment(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "department deleted"},
		Timestamp: time.Now(),
	})
}
