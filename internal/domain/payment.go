package domain

import "context"

// PaymentMethod is a lookup row annotating orders with a human-readable label.
type PaymentMethod struct {
	ID       int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Code     string `gorm:"size:50;not null;unique" json:"code"`
	Label    string `gorm:"size:100;not null" json:"label"`
	IsActive bool   `gorm:"not null;default:true" json:"is_active"`
}

func (PaymentMethod) TableName() string { return "payment_methods" }

// PaymentStatus and OrderStatus are lookup tables for order lifecycle labels.
type PaymentStatus struct {
	ID       int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Code     string `gorm:"size:50;not null;unique" json:"code"`
	Label    string `gorm:"size:100;not null" json:"label"`
	IsActive bool   `gorm:"not null;default:true" json:"is_active"`
}

func (PaymentStatus) TableName() string { return "payment_statuses" }

type OrderStatus struct {
	ID       int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Code     string `gorm:"size:50;not null;unique" json:"code"`
	Label    string `gorm:"size:100;not null" json:"label"`
	IsActive bool   `gorm:"not null;default:true" json:"is_active"`
}

func (OrderStatus) TableName() string { return "order_statuses" }

// PaymentMethodRepository looks up payment methods for response annotation.
type PaymentMethodRepository interface {
	GetByID(ctx context.Context, id int) (*PaymentMethod, error)
}
