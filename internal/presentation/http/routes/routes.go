package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/parthsh/billify-api/internal/config"
	"github.com/parthsh/billify-api/internal/presentation/http/handler"
	"github.com/parthsh/billify-api/internal/presentation/http/middleware"
	"github.com/parthsh/billify-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Invoice   *handler.InvoiceHandler
	Analytics *handler.AnalyticsHandler
	Inventory *handler.InventoryHandler
	Settings  *handler.SettingsHandler
	Printer   *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTValidator *utils.JWTValidator
	Cfg          *config.Config
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
		// All API routes require a token from the identity provider
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTValidator))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Invoices
	invoices := protected.Group("/invoices")
	{
		invoices.POST("/preview", h.Invoice.Preview)
		invoices.POST("/finalize", h.Invoice.Finalize)
	}

	// Analytics
	protected.GET("/analytics/summary", h.Analytics.GetSummary)

	// Inventory
	inventory := protected.Group("/inventory")
	{
		inventory.GET("", h.Inventory.List)
		inventory.POST("/import", h.Inventory.Import)
		inventory.DELETE("", h.Inventory.Clear)
	}

	// Settings
	protected.GET("/settings", h.Settings.GetSettings)
	protected.PUT("/settings", h.Settings.UpdateSettings)

	// Printer
	printerGroup := protected.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.GetStatus)
		printerGroup.POST("/test", h.Printer.TestPrint)
	}
}
