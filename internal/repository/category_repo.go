package repository

import (
	"context"
	"errors"
	"fmt"
	"shop_service/internal/domain"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type gormCategoryRepository struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewGormCategoryRepository(db *gorm.DB, logger *logrus.Logger) domain.CategoryRepository {
	return &gormCategoryRepository{
		db:  db,
		log: logger,
	}
}

func (r *gormCategoryRepository) Create(ctx context.Context, category *domain.ProductCategory) error {
	err := r.db.WithContext(ctx).Create(category).Error
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") || strings.Contains(err.Error(), "unique constraint") {
			r.log.Warnf("Attempted to create duplicate category '%s'", category.Name)
			return fmt.Errorf("category with name '%s': %w", category.Name, domain.ErrDuplicate)
		}
		r.log.Errorf("Failed to create category '%s': %v", category.Name, err)
		return fmt.Errorf("could not create category: %w", err)
	}
	r.log.Infof("Category created successfully with ID: %d, Name: %s", category.ID, category.Name)
	return nil
}

func (r *gormCategoryRepository) List(ctx context.Context) ([]domain.ProductCategory, error) {
	var categories []domain.ProductCategory
	err := r.db.WithContext(ctx).Find(&categories).Error
	if err != nil {
		r.log.Errorf("Failed to list categories: %v", err)
		return nil, fmt.Errorf("could not retrieve categories: %w", err)
	}
	return categories, nil
}

func (r *gormCategoryRepository) GetByID(ctx context.Context, id int) (*domain.ProductCategory, error) {
	category := &domain.ProductCategory{}
	err := r.db.WithContext(ctx).First(category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Warnf("Category with ID %d not found", id)
			return nil, fmt.Errorf("category with id %d: %w", id, domain.ErrNotFound)
		}
		r.log.Errorf("Failed to get category by ID %d: %v", id, err)
		return nil, fmt.Errorf("could not get category: %w", err)
	}
	return category, nil
}

func (r *gormCategoryRepository) GetByName(ctx context.Context, name string) (*domain.ProductCategory, error) {
	category := &domain.ProductCategory{}
	err := r.db.WithContext(ctx).First(category, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Warnf("Category '%s' not found", name)
			return nil, fmt.Errorf("category '%s': %w", name, domain.ErrNotFound)
		}
		r.log.Errorf("Failed to get category by name '%s': %v", name, err)
		return nil, fmt.Errorf("could not get category: %w", err)
	}
	return category, nil
}
