package usecase

import (
	"context"
	"errors"
	"shop_service/internal/domain"
	"strings"

	"github.com/sirupsen/logrus"
)

var _ domain.CategoryUseCase = (*categoryUseCase)(nil)

type categoryUseCase struct {
	categoryRepo domain.CategoryRepository
	log          *logrus.Logger
}

func NewCategoryUseCase(repo domain.CategoryRepository, logger *logrus.Logger) domain.CategoryUseCase {
	return &categoryUseCase{
		categoryRepo: repo,
		log:          logger,
	}
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, name, description string) (*domain.ProductCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		uc.log.Warn("Use Case: Category creation failed - empty name")
		return nil, domain.NewValidationError("category name cannot be empty")
	}

	category := &domain.ProductCategory{
		Name:        name,
		Description: strings.TrimSpace(description),
	}
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		uc.log.Errorf("Use Case: Repository failed to create category '%s': %v", name, err)
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, &domain.Error{Kind: domain.KindValidation, Message: "category already exists", Err: err}
		}
		return nil, domain.NewUnexpectedError("failed to create category", err)
	}

	uc.log.Infof("Use Case: Category created successfully. ID: %d, Name: %s", category.ID, category.Name)
	return category, nil
}

func (uc *categoryUseCase) ListCategories(ctx context.Context) ([]domain.ProductCategory, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list categories: %v", err)
		return nil, err
	}
	uc.log.Infof("Use Case: Retrieved %d categories", len(categories))
	return categories, nil
}
