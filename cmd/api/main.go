package main

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/parthsh/billify-api/internal/application/service"
	"github.com/parthsh/billify-api/internal/config"
	"github.com/parthsh/billify-api/internal/infrastructure/database"
	"github.com/parthsh/billify-api/internal/infrastructure/repository"
	"github.com/parthsh/billify-api/internal/presentation/http/handler"
	"github.com/parthsh/billify-api/internal/presentation/http/routes"
	"github.com/parthsh/billify-api/pkg/logger"
	"github.com/parthsh/billify-api/pkg/printer"
	"github.com/parthsh/billify-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize structured logging
	logger.Setup(cfg.Log.Level, cfg.Log.Format)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// Token validation only; tokens are issued by the identity provider
	jwtValidator := utils.NewJWTValidator(cfg.JWT.Secret, cfg.JWT.Leeway)

	// Initialize repositories
	profitRepo := repository.NewProfitRecordRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Initialize services
	invoiceService := service.NewInvoiceService(profitRepo)
	analyticsService := service.NewAnalyticsService(profitRepo)
	inventoryService := service.NewInventoryService(inventoryRepo)
	settingsService := service.NewSettingsService(settingsRepo)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to initialize printer, falling back to null printer")
		thermalPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(thermalPrinter, cfg.Printer.Type)

	// Initialize handlers
	handlers := &routes.Handlers{
		Invoice:   handler.NewInvoiceHandler(invoiceService, settingsService, printerService),
		Analytics: handler.NewAnalyticsHandler(analyticsService),
		Inventory: handler.NewInventoryHandler(inventoryService, cfg.Upload.MaxSize),
		Settings:  handler.NewSettingsHandler(settingsService),
		Printer:   handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTValidator: jwtValidator,
		Cfg:          cfg,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Info().
		Str("service", cfg.App.Name).
		Str("env", cfg.App.Env).
		Str("port", port).
		Msg("Starting server")

	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
