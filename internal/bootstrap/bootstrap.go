package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAuth "github.com/kerem/campusdesk/internal/app/auth"
	appControllers "github.com/kerem/campusdesk/internal/app/controllers"
	appMigrations "github.com/kerem/campusdesk/internal/app/migrations"
	appRepos "github.com/kerem/campusdesk/internal/app/repositories"
	appRoutes "github.com/kerem/campusdesk/internal/app/routes"
	appServices "github.com/kerem/campusdesk/internal/app/services"
	"github.com/kerem/campusdesk/internal/config"
	"github.com/kerem/campusdesk/internal/db"
	appMiddleware "github.com/kerem/campusdesk/internal/middleware"
	pkgAuth "github.com/kerem/campusdesk/internal/pkg/auth"
	"github.com/kerem/campusdesk/internal/pkg/filestorage"
	"github.com/kerem/campusdesk/internal/pkg/helpers"
	"github.com/kerem/campusdesk/internal/pkg/logger"
	"github.com/kerem/campusdesk/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos                      *appRepos.Repositories
	Services                   *appServices.Services
	AuthController             *appControllers.AuthController
	TimetableController        *appControllers.TimetableController
	StudentTimetableController *appControllers.StudentTimetableController
	TicketController           *appControllers.TicketController
	VenueController            *appControllers.VenueController
	BatchController            *appControllers.BatchController
	AuthMiddleware             *appMiddleware.AuthMiddleware
	JWTService                 *pkgAuth.JWTService
	AuthzService               *appAuth.Service
	FileStorage                *filestorage.LocalStorage
	Logger                     zerolog.Logger
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
// seeds the default admin account.
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

	if err := seed.CreateDefaultAdmin(context.Background(), dbPool, lgr); err != nil {
		// Startup continues; an existing deployment already has its admin
		lgr.Error().Err(err).Msg("Failed to seed default admin account, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// The storage base URL must match the static file serving path
	baseURL := cfg.Server.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:" + cfg.Server.Port
	}
	fileStorageBaseURL := strings.TrimRight(baseURL, "/") + "/uploads"

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, fileStorageBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthzService = appAuth.NewService(deps.Repos.UserRepository)

	deps.Services = appServices.NewServices(deps.Repos, deps.AuthzService, deps.JWTService, deps.FileStorage)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.Services.AuthService)
	deps.TimetableController = appControllers.NewTimetableController(deps.Services.TimetableService)
	deps.StudentTimetableController = appControllers.NewStudentTimetableController(deps.Services.StudentTimetableService)
	deps.TicketController = appControllers.NewTicketController(deps.Services.TicketService)
	deps.VenueController = appControllers.NewVenueController(deps.Services.VenueService)
	deps.BatchController = appControllers.NewBatchController(deps.Services.BatchService)

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
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.TimetableController,
		deps.StudentTimetableController,
		deps.TicketController,
		deps.VenueController,
		deps.BatchController,
		deps.AuthMiddleware,
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}
