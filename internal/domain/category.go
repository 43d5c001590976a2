package domain

import "context"

// ProductCategory groups products for catalog filtering.
type ProductCategory struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"size:50;not null;unique" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

func (ProductCategory) TableName() string { return "product_categories" }

type CategoryRepository interface {
	Create(ctx context.Context, category *ProductCategory) error
	List(ctx context.Context) ([]ProductCategory, error)
	GetByName(ctx context.Context, name string) (*ProductCategory, error)
	GetByID(ctx context.Context, id int) (*ProductCategory, error)
}

type CategoryUseCase interface {
	CreateCategory(ctx context.Context, name, description string) (*ProductCategory, error)
	ListCategories(ctx context.Context) ([]ProductCategory, error)
}
