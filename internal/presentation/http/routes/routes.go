package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/grifosur/grifo-api/internal/config"
	domainRepo "github.com/grifosur/grifo-api/internal/domain/repository"
	"github.com/grifosur/grifo-api/internal/presentation/http/handler"
	"github.com/grifosur/grifo-api/internal/presentation/http/middleware"
	"github.com/grifosur/grifo-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Fuel     *handler.FuelHandler
	Customer *handler.CustomerHandler
	Sale     *handler.SaleHandler
	Report   *handler.ReportHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
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

		// Per-employee rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
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
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Profile
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Fuels and the pump calculator
	registerFuelRoutes(protected, h)

	// Customers
	registerCustomerRoutes(protected, h)

	// Sales
	registerSaleRoutes(protected, h, deps)

	// Reports and dashboard
	registerReportRoutes(protected, h)
}

func registerFuelRoutes(protected *gin.RouterGroup, h *Handlers) {
	fuels := protected.Group("/fuels")
	{
		fuels.GET("", h.Fuel.List)
		fuels.GET("/:id", h.Fuel.Get)
		fuels.GET("/:id/calculate", h.Fuel.Calculate)

		// Catalog management is admin-only
		admin := fuels.Group("")
		admin.Use(middleware.RequireAdmin())
		{
			admin.POST("", h.Fuel.Create)
			admin.PUT("/:id", h.Fuel.Update)
			admin.DELETE("/:id", h.Fuel.Delete)
		}
	}

	conversions := protected.Group("/conversions")
	{
		conversions.GET("/gallons-to-liters", h.Fuel.ConvertGallonsToLiters)
		conversions.GET("/liters-to-gallons", h.Fuel.ConvertLitersToGallons)
	}
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/dni/:dni", h.Customer.GetByDNI)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", middleware.RequireAdmin(), h.Customer.Delete)
	}
}

func registerSaleRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	sales := protected.Group("/sales")
	{
		sales.GET("", h.Sale.List)
		// Sale registration uses idempotency middleware to prevent duplicates
		sales.POST("", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Sale.Create)
		sales.GET("/:id", h.Sale.Get)
		sales.POST("/:id/cancel", h.Sale.Cancel)
	}
}

func registerReportRoutes(protected *gin.RouterGroup, h *Handlers) {
	reports := protected.Group("/reports")
	{
		reports.GET("/daily", h.Report.GetDailyReport)
		reports.GET("/recent-sales", h.Report.GetRecentSales)
	}

	protected.GET("/dashboard", h.Report.GetDashboard)
}
