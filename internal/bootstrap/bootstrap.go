package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/devrim/examforge/docs"
	appControllers "github.com/devrim/examforge/internal/app/controllers"
	appMigrations "github.com/devrim/examforge/internal/app/migrations"
	appRepos "github.com/devrim/examforge/internal/app/repositories"
	appRoutes "github.com/devrim/examforge/internal/app/routes"
	appServices "github.com/devrim/examforge/internal/app/services"
	"github.com/devrim/examforge/internal/cache"
	"github.com/devrim/examforge/internal/config"
	"github.com/devrim/examforge/internal/db"
	appMiddleware "github.com/devrim/examforge/internal/middleware"
	pkgAuth "github.com/devrim/examforge/internal/pkg/auth"
	"github.com/devrim/examforge/internal/pkg/helpers"
	"github.com/devrim/examforge/internal/pkg/logger"
	"github.com/devrim/examforge/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	UniversityService *appServices.UniversityService
	DepartmentService *appServices.DepartmentService
	CourseService     *appServices.CourseService
	PaperService      *appServices.PaperService
	ShuffleService    *appServices.ShuffleService
	SearchService     *appServices.SearchService
	ExportService     *appServices.ExportService
	AuthService       *appServices.AuthService

	AuthController       *appControllers.AuthController
	UniversityController *appControllers.UniversityController
	DepartmentController *appControllers.DepartmentController
	CourseController     *appControllers.CourseController
	QuestionController   *appControllers.QuestionController
	SearchController     *appControllers.SearchController
	ShuffleController    *appControllers.ShuffleController

	SessionMiddleware *appMiddleware.SessionMiddleware
	SessionService    *pkgAuth.SessionService
	Repos             *appRepos.Repositories
	Redis             *redis.Client
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default admin.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// A missing default admin is recoverable; log and continue.
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)
	deps.Redis = db.NewRedisClient(cfg)
	searchCache := cache.New(deps.Redis, "examforge:search:")

	sessionExp := helpers.ParseDuration(cfg.Session.Expiration, 168*time.Hour)
	deps.SessionService = pkgAuth.NewSessionService(pkgAuth.SessionConfig{
		SecretKey: cfg.Session.Secret,
		TokenExp:  sessionExp,
		Issuer:    cfg.Session.Issuer,
	})

	deps.UniversityService = appServices.NewUniversityService(deps.Repos.Universities)
	deps.DepartmentService = appServices.NewDepartmentService(deps.Repos.Departments, deps.Repos.Universities)
	deps.CourseService = appServices.NewCourseService(deps.Repos.Courses, deps.Repos.Departments)
	deps.PaperService = appServices.NewPaperService(deps.Repos.Papers, deps.Repos.Courses)
	deps.ShuffleService = appServices.NewShuffleService(deps.Repos.Papers, deps.Repos.Courses)
	deps.SearchService = appServices.NewSearchService(deps.Repos.Courses, searchCache)
	deps.ExportService = appServices.NewExportService()
	deps.AuthService = appServices.NewAuthService(deps.Repos.Admins, deps.SessionService)

	deps.SessionMiddleware = appMiddleware.NewSessionMiddleware(deps.SessionService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, cfg.IsProduction())
	deps.UniversityController = appControllers.NewUniversityController(deps.UniversityService)
	deps.DepartmentController = appControllers.NewDepartmentController(deps.DepartmentService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService, deps.SearchService)
	deps.QuestionController = appControllers.NewQuestionController(deps.PaperService, deps.SearchService)
	deps.SearchController = appControllers.NewSearchController(deps.SearchService)
	deps.ShuffleController = appControllers.NewShuffleController(deps.ShuffleService, deps.ExportService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UniversityController,
		deps.DepartmentController,
		deps.CourseController,
		deps.QuestionController,
		deps.SearchController,
		deps.ShuffleController,
		deps.SessionMiddleware,
	)

	return router
}
