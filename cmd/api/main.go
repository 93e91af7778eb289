package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/andresproyectosx24/chayotex/internal/application/service"
	"github.com/andresproyectosx24/chayotex/internal/config"
	"github.com/andresproyectosx24/chayotex/internal/infrastructure/database"
	"github.com/andresproyectosx24/chayotex/internal/infrastructure/repository"
	"github.com/andresproyectosx24/chayotex/internal/presentation/http/handler"
	"github.com/andresproyectosx24/chayotex/internal/presentation/http/routes"
	"github.com/andresproyectosx24/chayotex/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	if cfg.App.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		logrus.WithError(err).Fatal("Failed to run migrations")
	}

	// Seed the admin account
	if err := database.SeedAdminUser(db); err != nil {
		logrus.WithError(err).Warn("Failed to seed admin user")
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
	supplierRepo := repository.NewSupplierRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	settlementRepo := repository.NewSettlementRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	contactService := service.NewContactService(customerRepo, supplierRepo)
	inventoryService := service.NewInventoryService(inventoryRepo)
	saleService := service.NewSaleService(ledgerRepo, saleRepo, customerRepo)
	settlementService := service.NewSettlementService(ledgerRepo, settlementRepo, supplierRepo)
	dashboardService := service.NewDashboardService(analyticsRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Customer:   handler.NewCustomerHandler(contactService),
		Supplier:   handler.NewSupplierHandler(contactService),
		Inventory:  handler.NewInventoryHandler(inventoryService),
		Sale:       handler.NewSaleHandler(saleService),
		Settlement: handler.NewSettlementHandler(settlementService),
		Dashboard:  handler.NewDashboardHandler(dashboardService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	logrus.WithFields(logrus.Fields{
		"service": cfg.App.Name,
		"env":     cfg.App.Env,
		"port":    port,
	}).Info("Starting server")

	if err := router.Run(":" + port); err != nil {
		logrus.WithError(err).Fatal("Failed to start server")
	}
}
