package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/minhtran-dev/pos-ledger-api/internal/application/service"
	"github.com/minhtran-dev/pos-ledger-api/internal/config"
	"github.com/minhtran-dev/pos-ledger-api/internal/infrastructure/database"
	"github.com/minhtran-dev/pos-ledger-api/internal/infrastructure/repository"
	"github.com/minhtran-dev/pos-ledger-api/internal/presentation/http/handler"
	"github.com/minhtran-dev/pos-ledger-api/internal/presentation/http/routes"
	"github.com/minhtran-dev/pos-ledger-api/pkg/money"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Open the file-backed database
	db, err := database.NewSQLiteDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	// Bring the schema up to the current version
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run schema migrations: %v", err)
	}

	// Seed reference data on a fresh database
	if err := database.Seed(db, database.DefaultSeed()); err != nil {
		log.Fatalf("Failed to seed default data: %v", err)
	}

	// Initialize repositories
	paymentRepo := repository.NewPaymentRepository(db)
	productRepo := repository.NewProductRepository(db)
	cashierRepo := repository.NewCashierRepository(db)

	// Initialize services
	normalizer := money.NewNormalizer(money.ParsePolicy(cfg.Money.Rounding))
	paymentService := service.NewPaymentService(paymentRepo, normalizer)
	productService := service.NewProductService(productRepo)
	cashierService := service.NewCashierService(cashierRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Payment: handler.NewPaymentHandler(paymentService),
		Product: handler.NewProductHandler(productService),
		Cashier: handler.NewCashierHandler(cashierService),
	}

	// Setup routes
	router := routes.Setup(handlers, cfg)

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s | rounding policy: %s", cfg.App.Env, normalizer.Policy())

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
