package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Product is the authoritative source of pricing. OriginPrice and Price are
// stored in the smallest currency unit, so all arithmetic stays integral.
type Product struct {
	ID                  string         `gorm:"type:uuid;primaryKey" json:"id"`
	Name                string         `gorm:"size:50;not null;unique" json:"name"`
	Description         string         `gorm:"type:text;not null" json:"description"`
	OriginPrice         int            `gorm:"not null" json:"origin_price"`
	Price               int            `gorm:"not null" json:"price"`
	ProductCategoriesID int            `gorm:"not null" json:"product_categories_id"`
	ImageURL            string         `gorm:"size:2048;not null" json:"image_url"`
	Enable              bool           `gorm:"not null" json:"enable"`
	IsHot               bool           `gorm:"not null" json:"is_hot"`
	CreatedAt           time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Product) TableName() string { return "products" }

// ProductVariant is a size/spec/color combination of a product carrying its
// own stock quantity.
type ProductVariant struct {
	ID         uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductsID string         `gorm:"type:uuid;not null;index" json:"products_id"`
	Colors     string         `gorm:"size:100;not null" json:"colors"`
	Size       string         `gorm:"type:text" json:"size"`
	Quantity   int            `gorm:"not null;default:0" json:"quantity"`
	Spec       string         `gorm:"size:100" json:"spec"`
	CreatedAt  time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ProductVariant) TableName() string { return "product_variants" }

// ProductSummary is the catalog listing projection.
type ProductSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	OriginPrice int    `json:"origin_price"`
	Price       int    `json:"price"`
	IsHot       bool   `json:"is_hot"`
}

// Pagination describes the current slice of a listing.
type Pagination struct {
	CurrentPage int `json:"current_page"`
	TotalPage   int `json:"total_page"`
}

// ProductPage is one page of the catalog.
type ProductPage struct {
	Pagination Pagination       `json:"pagination"`
	Products   []ProductSummary `json:"products"`
}

// ProductDetail is the single-product projection with its variants.
type ProductDetail struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Category    string           `json:"category"`
	Description string           `json:"description"`
	ImageURL    string           `json:"image_url"`
	OriginPrice int              `json:"origin_price"`
	Price       int              `json:"price"`
	Enable      bool             `json:"enable"`
	Variants    []ProductVariant `json:"variants"`
}

// ProductRepository is the read-side persistence contract for the catalog.
type ProductRepository interface {
	// FindByIDs resolves a batch of product identifiers. Missing identifiers
	// are simply absent from the result; the caller decides whether that is
	// an error.
	FindByIDs(ctx context.Context, ids []string) ([]Product, error)
	List(ctx context.Context, categoryID int, limit, offset int) ([]Product, int64, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	FindVariants(ctx context.Context, productID string) ([]ProductVariant, error)
}

// ProductUseCase serves catalog browsing.
type ProductUseCase interface {
	ListProducts(ctx context.Context, page int, category string) (*ProductPage, error)
	GetProductDetail(ctx context.Context, productID string) (*ProductDetail, error)
}
