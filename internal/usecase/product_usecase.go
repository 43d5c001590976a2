package usecase

import (
	"context"
	"errors"
	"shop_service/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var _ domain.ProductUseCase = (*productUseCase)(nil)

const productsPerPage = 10

const (
	msgInvalidPage     = "invalid page number"
	msgCategoryUnknown = "category not found"
	msgProductUnknown  = "product not found"
)

type productUseCase struct {
	productRepo  domain.ProductRepository
	categoryRepo domain.CategoryRepository
	log          *logrus.Logger
}

func NewProductUseCase(productRepo domain.ProductRepository, categoryRepo domain.CategoryRepository, logger *logrus.Logger) domain.ProductUseCase {
	return &productUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		log:          logger,
	}
}

func (uc *productUseCase) ListProducts(ctx context.Context, page int, category string) (*domain.ProductPage, error) {
	if page < 1 {
		return nil, domain.NewValidationError(msgInvalidPage)
	}

	categoryID := 0
	if category != "" {
		found, err := uc.categoryRepo.GetByName(ctx, category)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				uc.log.Warnf("Use Case: List requested for unknown category '%s'", category)
				return nil, domain.NewReferenceError(msgCategoryUnknown)
			}
			return nil, domain.NewUnexpectedError("failed to resolve category", err)
		}
		categoryID = found.ID
	}

	offset := (page - 1) * productsPerPage
	products, total, err := uc.productRepo.List(ctx, categoryID, productsPerPage, offset)
	if err != nil {
		return nil, domain.NewUnexpectedError("failed to list products", err)
	}

	categoryNames, err := uc.categoryNames(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.ProductSummary, 0, len(products))
	for _, p := range products {
		summaries = append(summaries, domain.ProductSummary{
			ID:          p.ID,
			Name:        p.Name,
			Category:    categoryNames[p.ProductCategoriesID],
			Description: p.Description,
			ImageURL:    p.ImageURL,
			OriginPrice: p.OriginPrice,
			Price:       p.Price,
			IsHot:       p.IsHot,
		})
	}

	totalPage := int(total) / productsPerPage
	if int(total)%productsPerPage != 0 {
		totalPage++
	}

	uc.log.Infof("Use Case: Listed %d products (page %d of %d, category '%s')", len(summaries), page, totalPage, category)
	return &domain.ProductPage{
		Pagination: domain.Pagination{CurrentPage: page, TotalPage: totalPage},
		Products:   summaries,
	}, nil
}

func (uc *productUseCase) GetProductDetail(ctx context.Context, productID string) (*domain.ProductDetail, error) {
	if _, err := uuid.Parse(productID); err != nil {
		uc.log.Warnf("Use Case: Product detail requested with non-uuid identifier: %s", productID)
		return nil, domain.NewReferenceError(msgProductUnknown)
	}

	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &domain.Error{Kind: domain.KindReference, Message: msgProductUnknown, Err: domain.ErrNotFound}
		}
		return nil, domain.NewUnexpectedError("failed to retrieve product", err)
	}

	categoryName := ""
	if cat, err := uc.categoryRepo.GetByID(ctx, product.ProductCategoriesID); err != nil {
		uc.log.Warnf("Use Case: Could not resolve category %d for product %s: %v", product.ProductCategoriesID, productID, err)
	} else {
		categoryName = cat.Name
	}

	variants, err := uc.productRepo.FindVariants(ctx, productID)
	if err != nil {
		return nil, domain.NewUnexpectedError("failed to retrieve product variants", err)
	}

	uc.log.Infof("Use Case: Product detail retrieved for %s (%d variants)", productID, len(variants))
	return &domain.ProductDetail{
		ID:          product.ID,
		Name:        product.Name,
		Category:    categoryName,
		Description: product.Description,
		ImageURL:    product.ImageURL,
		OriginPrice: product.OriginPrice,
		Price:       product.Price,
		Enable:      product.Enable,
		Variants:    variants,
	}, nil
}

func (uc *productUseCase) categoryNames(ctx context.Context) (map[int]string, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, domain.NewUnexpectedError("failed to list categories", err)
	}
	names := make(map[int]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	return names, nil
}
