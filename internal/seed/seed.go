package seed

import (
	"context"
	"fmt"

	"shop_service/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const batchSize = 100

// Stats reports how many rows each table holds after seeding.
type Stats struct {
	Categories int64
	Products   int64
	Variants   int64
}

// Run populates the catalog with a deterministic demo dataset. Seeding is
// idempotent: if products already exist nothing is inserted.
func Run(ctx context.Context, db *gorm.DB) (Stats, error) {
	var existing int64
	if err := db.WithContext(ctx).Model(&domain.Product{}).Count(&existing).Error; err != nil {
		return Stats{}, fmt.Errorf("could not count products: %w", err)
	}
	if existing == 0 {
		if err := insertDemoCatalog(ctx, db); err != nil {
			return Stats{}, err
		}
	}
	return collectStats(ctx, db)
}

func insertDemoCatalog(ctx context.Context, db *gorm.DB) error {
	categories := []domain.ProductCategory{
		{Name: "tops", Description: "Shirts and tees"},
		{Name: "bottoms", Description: "Trousers and skirts"},
		{Name: "accessories", Description: "Bags and extras"},
	}
	if err := db.WithContext(ctx).CreateInBatches(&categories, batchSize).Error; err != nil {
		return fmt.Errorf("could not seed categories: %w", err)
	}

	type spec struct {
		name        string
		description string
		originPrice int
		price       int
		category    int
		isHot       bool
	}
	specs := []spec{
		{"Classic tee", "Plain cotton tee", 500, 450, 0, true},
		{"Linen shirt", "Breathable summer shirt", 1280, 990, 0, false},
		{"Denim jeans", "Straight-cut denim", 1680, 1480, 1, true},
		{"Pleated skirt", "Mid-length pleated skirt", 1180, 980, 1, false},
		{"Canvas tote", "Everyday carry tote", 680, 680, 2, false},
		{"Wool beanie", "Ribbed knit beanie", 480, 380, 2, true},
	}

	products := make([]domain.Product, 0, len(specs))
	variants := make([]domain.ProductVariant, 0, len(specs)*2)
	for _, s := range specs {
		id := uuid.NewString()
		products = append(products, domain.Product{
			ID:                  id,
			Name:                s.name,
			Description:         s.description,
			OriginPrice:         s.originPrice,
			Price:               s.price,
			ProductCategoriesID: categories[s.category].ID,
			ImageURL:            fmt.Sprintf("https://example.com/images/%s.jpg", id),
			Enable:              true,
			IsHot:               s.isHot,
		})
		variants = append(variants,
			domain.ProductVariant{ProductsID: id, Colors: "black", Size: "M", Spec: "standard", Quantity: 20},
			domain.ProductVariant{ProductsID: id, Colors: "white", Size: "L", Spec: "standard", Quantity: 12},
		)
	}

	if err := db.WithContext(ctx).CreateInBatches(&products, batchSize).Error; err != nil {
		return fmt.Errorf("could not seed products: %w", err)
	}
	if err := db.WithContext(ctx).CreateInBatches(&variants, batchSize).Error; err != nil {
		return fmt.Errorf("could not seed product variants: %w", err)
	}
	return nil
}

func collectStats(ctx context.Context, db *gorm.DB) (Stats, error) {
	var stats Stats
	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&domain.ProductCategory{}, &stats.Categories},
		{&domain.Product{}, &stats.Products},
		{&domain.ProductVariant{}, &stats.Variants},
	}
	for _, c := range counts {
		if err := db.WithContext(ctx).Model(c.model).Count(c.dest).Error; err != nil {
			return Stats{}, fmt.Errorf("could not collect seed stats: %w", err)
		}
	}
	return stats, nil
}
