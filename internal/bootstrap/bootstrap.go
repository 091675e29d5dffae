package bootstrap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/stapro/nfc-attendance/internal/app/controllers"
	appMigrations "github.com/stapro/nfc-attendance/internal/app/migrations"
	appRepos "github.com/stapro/nfc-attendance/internal/app/repositories"
	appRoutes "github.com/stapro/nfc-attendance/internal/app/routes"
	appServices "github.com/stapro/nfc-attendance/internal/app/services"
	"github.com/stapro/nfc-attendance/internal/config"
	"github.com/stapro/nfc-attendance/internal/db"
	appMiddleware "github.com/stapro/nfc-attendance/internal/middleware"
	"github.com/stapro/nfc-attendance/internal/pkg/helpers"
	"github.com/stapro/nfc-attendance/internal/pkg/logger"
	"github.com/stapro/nfc-attendance/internal/pkg/staffing"
	"github.com/stapro/nfc-attendance/internal/pkg/validation"
	"github.com/stapro/nfc-attendance/internal/seed"
)

// DefaultConfigPath is used when no --config flag is given.
const DefaultConfigPath = "configs/config.yaml"

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos       *appRepos.Repositories
	Services    *appServices.Services
	Controllers appRoutes.Controllers
	Staffing    staffing.Client
	Logger      zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: logger.ParseFormat(cfg.Logging.Format),
	})
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// ConnectDatabase opens the connection pool.
func ConnectDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Str("host", cfg.Database.Host).Str("database", cfg.Database.DBName).Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")
	return database, nil
}

// RunMigrations applies pending schema migrations.
func RunMigrations(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool, lgr.With().Str("component", "migrator").Logger())
	if err := migrator.Up(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")
	return nil
}

// SetupDatabase connects, migrates and optionally seeds the database.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	database, err := ConnectDatabase(ctx, cfg, lgr)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, database, lgr); err != nil {
		database.Close()
		return nil, err
	}

	if cfg.Database.SeedOnStart {
		if err := seed.CreateDefaultData(ctx, database, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return database, nil
}

// NewStaffingClient builds the staffing system client from configuration.
func NewStaffingClient(cfg *config.Config, lgr zerolog.Logger) staffing.Client {
	if cfg.External.APIToken == "" {
		lgr.Warn().Msg("API_TOKEN is not set, staffing requests will be unauthenticated")
	}
	return staffing.NewHTTPClient(staffing.Config{
		BaseURL:  cfg.External.BaseURL,
		APIToken: cfg.External.APIToken,
		Timeout:  helpers.ParseDuration(cfg.External.Timeout, 10*time.Second),
	}, lgr.With().Str("component", "staffing").Logger())
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, staff staffing.Client, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr, Staffing: staff}

	deps.Repos = appRepos.NewRepositories(database.Pool)
	deps.Services = appServices.NewServices(deps.Repos, staff, helpers.LoadLocation(cfg.Attendance.Timezone), lgr)

	deps.Controllers = appRoutes.Controllers{
		Attendance:      appControllers.NewAttendanceController(deps.Services.Attendance),
		Employee:        appControllers.NewEmployeeController(deps.Services.Employee),
		Card:            appControllers.NewCardController(deps.Services.Card),
		CommuteTemplate: appControllers.NewCommuteTemplateController(deps.Services.CommuteTemplate),
		School:          appControllers.NewSchoolController(deps.Services.School),
		Health:          appControllers.NewHealthController(database.Pool),
	}

	return deps
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

	if err := validation.RegisterWithGin(); err != nil {
		lgr.Fatal().Err(err).Msg("Failed to register validation rules")
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		appMiddleware.RequestLogging(lgr),
		appMiddleware.CORS(cfg.Server.CORSOrigins),
	)

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers)

	return router
}
