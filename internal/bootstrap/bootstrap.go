package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/esathi/engineersathi/internal/app/controllers"
	appMigrations "github.com/esathi/engineersathi/internal/app/migrations"
	appRepos "github.com/esathi/engineersathi/internal/app/repositories"
	appRoutes "github.com/esathi/engineersathi/internal/app/routes"
	appServices "github.com/esathi/engineersathi/internal/app/services"
	"github.com/esathi/engineersathi/internal/config"
	"github.com/esathi/engineersathi/internal/db"
	appMiddleware "github.com/esathi/engineersathi/internal/middleware"
	pkgAuth "github.com/esathi/engineersathi/internal/pkg/auth"
	"github.com/esathi/engineersathi/internal/pkg/filestorage"
	"github.com/esathi/engineersathi/internal/pkg/logger"
	"github.com/esathi/engineersathi/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService       appServices.AuthService
	SemesterService   appServices.SemesterService
	SubjectService    appServices.SubjectService
	NoteService       appServices.NoteService
	FeedbackService   appServices.FeedbackService
	StatsService      appServices.StatsService
	ModerationService appServices.ModerationService

	AuthController       *appControllers.AuthController
	SemesterController   *appControllers.SemesterController
	SubjectController    *appControllers.SubjectController
	NoteController       *appControllers.NoteController
	FileController       *appControllers.FileController
	FeedbackController   *appControllers.FeedbackController
	StatsController      *appControllers.StatsController
	ModerationController *appControllers.ModerationController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	FileStorage    *filestorage.LocalStorage
	Logger         zerolog.Logger
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
// seeds the default catalog.
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
	lgr.Info().Msg("Database connection successfully established.")

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
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, cfg.Admin.Username, cfg.Admin.Password, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.AccessTokenExp(),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.AdminUserRepository, deps.JWTService)
	deps.SemesterService = appServices.NewSemesterService(deps.Repos.SemesterRepository, deps.Repos.SubjectRepository)
	deps.SubjectService = appServices.NewSubjectService(
		deps.Repos.SubjectRepository,
		deps.Repos.SemesterRepository,
		deps.Repos.NoteRepository,
		deps.FileStorage,
	)
	deps.NoteService = appServices.NewNoteService(
		deps.Repos.NoteRepository,
		deps.Repos.CommentRepository,
		deps.Repos.RatingRepository,
		deps.Repos.SubjectRepository,
		deps.FileStorage,
	)
	deps.FeedbackService = appServices.NewFeedbackService(deps.Repos.FeedbackRepository)
	deps.StatsService = appServices.NewStatsService(deps.Repos.StatsRepository)
	deps.ModerationService = appServices.NewModerationService(
		deps.Repos.CommentRepository,
		deps.Repos.RatingRepository,
		deps.Repos.FeedbackRepository,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.SemesterController = appControllers.NewSemesterController(deps.SemesterService)
	deps.SubjectController = appControllers.NewSubjectController(deps.SubjectService)
	deps.NoteController = appControllers.NewNoteController(deps.NoteService)
	deps.FileController = appControllers.NewFileController(deps.NoteService)
	deps.FeedbackController = appControllers.NewFeedbackController(deps.FeedbackService)
	deps.StatsController = appControllers.NewStatsController(deps.StatsService)
	deps.ModerationController = appControllers.NewModerationController(deps.ModerationService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(), gin.Recovery())

	// The API is consumed by a separately hosted frontend; CORS is wide
	// open to match the source deployment.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.SemesterController,
		deps.SubjectController,
		deps.NoteController,
		deps.FileController,
		deps.FeedbackController,
		deps.StatsController,
		deps.ModerationController,
		deps.AuthMiddleware,
	)

	return router
}
