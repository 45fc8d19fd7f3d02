package routes

import (
	"time"

	"github.com/fieldserve/restoration-api/internal/config"
	domainRepo "github.com/fieldserve/restoration-api/internal/domain/repository"
	"github.com/fieldserve/restoration-api/internal/presentation/http/handler"
	"github.com/fieldserve/restoration-api/internal/presentation/http/middleware"
	"github.com/fieldserve/restoration-api/pkg/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Intake    *handler.IntakeHandler
	Customer  *handler.CustomerHandler
	Property  *handler.PropertyHandler
	Job       *handler.JobHandler
	Storm     *handler.StormHandler
	Dashboard *handler.DashboardHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	Logger          *zap.Logger
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-operator rate limiter
		rateLimiter := middleware.NewOperatorRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Profile
	protected.GET("/profile", h.Auth.Profile)
	protected.PUT("/profile", h.Auth.UpdateProfile)

	// Intake submission uses required idempotency so an operator
	// double-click cannot create two jobs
	protected.POST("/intakes", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
		Repo: deps.IdempotencyRepo,
	}), h.Intake.Submit)

	// Dashboard
	protected.GET("/dashboard", h.Dashboard.Stats)
	protected.GET("/dashboard/recent-jobs", h.Dashboard.RecentJobs)

	registerCustomerRoutes(protected, h)
	registerPropertyRoutes(protected, h)
	registerJobRoutes(protected, h)
	registerStormRoutes(protected, h)
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", middleware.RequireRole("admin"), h.Customer.Delete)
		customers.GET("/:id/properties", h.Customer.ListProperties)
	}
}

func registerPropertyRoutes(protected *gin.RouterGroup, h *Handlers) {
	properties := protected.Group("/properties")
	{
		properties.GET("/:id", h.Property.Get)
		properties.PUT("/:id", h.Property.Update)
	}
}

func registerJobRoutes(protected *gin.RouterGroup, h *Handlers) {
	jobs := protected.Group("/jobs")
	{
		jobs.GET("", h.Job.List)
		jobs.GET("/number/:number", h.Job.GetByNumber)
		jobs.GET("/:id", h.Job.Get)
		jobs.PUT("/:id", h.Job.Update)
		jobs.PUT("/:id/status", h.Job.UpdateStatus)
		jobs.DELETE("/:id", middleware.RequireRole("admin"), h.Job.Delete)
	}
}

func registerStormRoutes(protected *gin.RouterGroup, h *Handlers) {
	storms := protected.Group("/storm-events")
	{
		storms.GET("", h.Storm.List)
		storms.POST("", h.Storm.Create)
		storms.GET("/:id", h.Storm.Get)
		storms.PUT("/:id", h.Storm.Update)
		storms.GET("/:id/jobs", h.Storm.ListJobs)
	}
}
