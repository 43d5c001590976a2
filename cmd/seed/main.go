package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"shop_service/config"
	"shop_service/internal/seed"
	"shop_service/pkg/db"

	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.LoadConfig(logger)

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.RunMigrations(database, cfg.MigrationsDir); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Database migrations completed.")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	start := time.Now()
	stats, err := seed.Run(ctx, database)
	if err != nil {
		logger.Fatalf("Failed to seed demo catalog: %v", err)
	}
	logger.Infof("Demo catalog ready in %s", time.Since(start))

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Table", "Rows")
	table.Append([]string{"product_categories", fmt.Sprintf("%d", stats.Categories)})
	table.Append([]string{"products", fmt.Sprintf("%d", stats.Products)})
	table.Append([]string{"product_variants", fmt.Sprintf("%d", stats.Variants)})
	if err := table.Render(); err != nil {
		logger.Errorf("Failed to render seed summary: %v", err)
	}
}
