package main

import (
	"os"
	"shop_service/config"
	"shop_service/internal/delivery"
	"shop_service/internal/repository"
	"shop_service/internal/usecase"
	"shop_service/pkg/db"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.LoadConfig(logger)
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
		logger.Warnf("Invalid LOG_LEVEL '%s', using default: %s", cfg.LogLevel, logLevel.String())
	}
	logger.SetLevel(logLevel)
	logger.Info("Starting Shop Service...")

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	logger.Info("Database connection established.")

	if err := db.RunMigrations(database, cfg.MigrationsDir); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Database migrations completed.")

	// --- Dependency Injection ---
	orderRepo := repository.NewGormOrderRepository(database, logger)
	productRepo := repository.NewGormProductRepository(database, logger)
	paymentRepo := repository.NewGormPaymentMethodRepository(database, logger)
	categoryRepo := repository.NewGormCategoryRepository(database, logger)
	logger.Info("Repositories initialized.")

	deliveryPricer := usecase.FlatRateDelivery{Rate: cfg.DeliveryFee}
	orderUseCase := usecase.NewOrderUseCase(orderRepo, productRepo, paymentRepo, deliveryPricer, cfg.DBTimeout, logger)
	productUseCase := usecase.NewProductUseCase(productRepo, categoryRepo, logger)
	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo, logger)
	logger.Info("Use cases initialized.")

	orderHandler := delivery.NewOrderHandler(orderUseCase, logger)
	productHandler := delivery.NewProductHandler(productUseCase, logger)
	categoryHandler := delivery.NewCategoryHandler(categoryUseCase, logger)
	logger.Info("Handlers initialized.")

	router := gin.Default()
	router.RedirectTrailingSlash = false
	router.Use(delivery.RequestLogger(logger))

	router.GET("/healthcheck", func(c *gin.Context) {
		c.String(200, "OK")
	})

	api := router.Group("/api/v1")
	orderHandler.RegisterRoutes(api)
	productHandler.RegisterRoutes(api)
	categoryHandler.RegisterRoutes(api)
	logger.Info("Routes registered.")

	// --- Start Server ---
	logger.Infof("Starting server on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		logger.Errorf("Failed to start server on port %s: %v", cfg.Port, err)
		os.Exit(1)
	}
}
