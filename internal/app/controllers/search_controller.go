package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devrim/examforge/internal/app/models/dto"
	"github.com/devrim/examforge/internal/app/services"
	"github.com/devrim/examforge/internal/middleware"
)

// SearchController answers the public course search.
type SearchController struct {
	searchService *services.SearchService
}

// NewSearchController creates a new SearchController.
func NewSearchController(searchService *services.SearchService) *SearchController {
	return &SearchController{searchService: searchService}
}

// SearchCourses searches courses by code or name
// @Summary Search courses
// @Description Case-insensitive substring match on course code or name, capped at ten hits, each annotated with the years papers exist for
// @Tags search
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseSearchResult}
// @Failure 500 {object} dto.ErrorResponse
// @Router /search [get]
func (c *SearchController) SearchCourses(ctx *gin.Context) {
	results, err := c.searchService.SearchCourses(ctx, ctx.Query("q"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      results,
		Timestamp: time.Now(),
	})
}
