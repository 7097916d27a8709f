package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devrim/examforge/internal/app/controllers"
	"github.com/devrim/examforge/internal/app/models/dto"
	"github.com/devrim/examforge/internal/middleware"
)

// SetupRouter configures all application routes. The public surface is the
// course search, paper assembly with its exports, auth and health; every
// management route sits behind the session middleware.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	universityController *controllers.UniversityController,
	departmentController *controllers.DepartmentController,
	courseController *controllers.CourseController,
	questionController *controllers.QuestionController,
	searchController *controllers.SearchController,
	shuffleController *controllers.ShuffleController,
	sessionMiddleware *middleware.SessionMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
		auth.GET("/check", authController.CheckSession)
	}

	v1.GET("/search", searchController.SearchCourses)

	shuffle := v1.Group("/shuffle")
	{
		shuffle.POST("", shuffleController.AssemblePaper)
		shuffle.POST("/export", shuffleController.ExportText)
		shuffle.POST("/export/xlsx", shuffleController.ExportXLSX)
	}

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.APIResponse{
			Data:      dto.SuccessResponse{Message: "ok"},
			Timestamp: time.Now(),
		})
	})

	// --- Protected management routes ---
	protected := v1.Group("")
	protected.Use(sessionMiddleware.RequireSession())
	{
		universities := protected.Group("/universities")
		{
			universities.GET("", universityController.GetAllUniversities)
			universities.POST("", universityController.CreateUniversity)
			universities.PUT("/:id", universityController.UpdateUniversity)
			universities.DELETE("/:id", universityController.DeleteUniversity)
		}

		departments := protected.Group("/departments")
		{
			departments.GET("", departmentController.GetAllDepartments)
			departments.POST("", departmentController.BulkCreateDepartments)
			departments.PUT("/:id", departmentController.UpdateDepartment)
			departments.DELETE("/:id", departmentController.DeleteDepartment)
		}

		courses := protected.Group("/courses")
		{
			courses.GET("", courseController.GetAllCourses)
			courses.POST("", courseController.BulkCreateCourses)
			courses.PUT("/:id", courseController.UpdateCourse)
			courses.DELETE("/:id", courseController.DeleteCourse)
		}

		questions := protected.Group("/questions")
		{
			questions.GET("", questionController.ListQuestions)
			questions.POST("", questionController.UploadPaper)
			questions.DELETE("/:id", questionController.DeleteQuestion)
			questions.DELETE("/papers/:id", questionController.DeletePaper)
		}
	}
}
