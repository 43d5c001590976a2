package repository

import (
	"context"
	"errors"
	"fmt"
	"shop_service/internal/domain"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type gormProductRepository struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewGormProductRepository(db *gorm.DB, logger *logrus.Logger) domain.ProductRepository {
	return &gormProductRepository{
		db:  db,
		log: logger,
	}
}

func (r *gormProductRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&products).Error
	if err != nil {
		r.log.Errorf("Failed to resolve products by ID set (%d ids): %v", len(ids), err)
		return nil, fmt.Errorf("could not resolve products: %w", err)
	}
	r.log.Debugf("Resolved %d of %d requested products", len(products), len(ids))
	return products, nil
}

func (r *gormProductRepository) List(ctx context.Context, categoryID int, limit, offset int) ([]domain.Product, int64, error) {
	query := r.db.WithContext(ctx).Model(&domain.Product{})
	if categoryID != 0 {
		query = query.Where("product_categories_id = ?", categoryID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.log.Errorf("Failed to count products: %v", err)
		return nil, 0, fmt.Errorf("could not count products: %w", err)
	}

	var products []domain.Product
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&products).Error
	if err != nil {
		r.log.Errorf("Failed to list products (category %d, limit %d, offset %d): %v", categoryID, limit, offset, err)
		return nil, 0, fmt.Errorf("could not list products: %w", err)
	}

	r.log.Debugf("Retrieved %d products (total %d)", len(products), total)
	return products, total, nil
}

func (r *gormProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	product := &domain.Product{}
	err := r.db.WithContext(ctx).First(product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Warnf("Product with ID %s not found", id)
			return nil, fmt.Errorf("product with id %s: %w", id, domain.ErrNotFound)
		}
		r.log.Errorf("Failed to get product by ID %s: %v", id, err)
		return nil, fmt.Errorf("could not get product by id: %w", err)
	}
	return product, nil
}

func (r *gormProductRepository) FindVariants(ctx context.Context, productID string) ([]domain.ProductVariant, error) {
	var variants []domain.ProductVariant
	err := r.db.WithContext(ctx).
		Where("products_id = ?", productID).
		Find(&variants).Error
	if err != nil {
		r.log.Errorf("Failed to query variants for product %s: %v", productID, err)
		return nil, fmt.Errorf("could not retrieve product variants: %w", err)
	}
	return variants, nil
}
