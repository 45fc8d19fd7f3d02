package main

import (
	"log"

	"github.com/fieldserve/restoration-api/internal/application/service"
	"github.com/fieldserve/restoration-api/internal/config"
	"github.com/fieldserve/restoration-api/internal/infrastructure/database"
	"github.com/fieldserve/restoration-api/internal/infrastructure/repository"
	"github.com/fieldserve/restoration-api/internal/presentation/http/handler"
	"github.com/fieldserve/restoration-api/internal/presentation/http/routes"
	"github.com/fieldserve/restoration-api/pkg/logger"
	"github.com/fieldserve/restoration-api/pkg/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zapLogger, err := logger.New(cfg.App.Env)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		zapLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Probe the jobs table once so composition knows which optional
	// columns this deployment carries
	caps := database.DetectCapabilities(db)
	if missing := caps.MissingColumns(); len(missing) > 0 {
		zapLogger.Warn("Jobs table is missing optional columns, intake will degrade gracefully",
			zap.Strings("columns", missing))
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	jobRepo := repository.NewJobRepository(db)
	stormRepo := repository.NewStormEventRepository(db)
	sequenceRepo := repository.NewSequenceRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	numberService := service.NewJobNumberService(sequenceRepo, zapLogger)
	composer := service.NewJobComposer(caps, zapLogger)
	intakeService := service.NewIntakeService(customerRepo, propertyRepo, jobRepo, numberService, composer, zapLogger)
	customerService := service.NewCustomerService(customerRepo, propertyRepo)
	jobService := service.NewJobService(jobRepo)
	stormService := service.NewStormService(stormRepo, jobRepo)
	dashboardService := service.NewDashboardService(analyticsRepo, jobRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Intake:    handler.NewIntakeHandler(intakeService),
		Customer:  handler.NewCustomerHandler(customerService),
		Property:  handler.NewPropertyHandler(customerService),
		Job:       handler.NewJobHandler(jobService),
		Storm:     handler.NewStormHandler(stormService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		Logger:          zapLogger,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	zapLogger.Info("Starting server",
		zap.String("service", cfg.App.Name),
		zap.String("port", port),
		zap.String("env", cfg.App.Env),
	)

	if err := router.Run(":" + port); err != nil {
		zapLogger.Fatal("Failed to start server", zap.Error(err))
	}
}
