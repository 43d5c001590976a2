package domain

import (
	"context"
	"time"
)

// Server-assigned initial statuses for a freshly placed order. Clients never
// choose these; the lookup-table rows are seeded by the migrations.
const (
	InitialOrderStatusID      = 1
	InitialOrderStatusLabel   = "processing"
	InitialPaymentStatusID    = 1
	InitialPaymentStatusLabel = "unpaid"
)

// Order is the order header row. All fields are fixed at creation; paid and
// fulfilment transitions happen outside this service.
type Order struct {
	ID                string    `gorm:"type:uuid;primaryKey" json:"id"`
	UsersID           string    `gorm:"type:uuid;not null;index" json:"users_id"`
	Name              string    `gorm:"size:50;not null" json:"name"`
	Tel               string    `gorm:"size:20;not null" json:"tel"`
	Address           string    `gorm:"size:30;not null" json:"address"`
	IsPaid            bool      `gorm:"not null;default:false" json:"is_paid"`
	PaymentMethodsID  int       `gorm:"not null" json:"payment_methods_id"`
	OrderStatusesID   int       `gorm:"not null" json:"order_statuses_id"`
	PaymentStatusesID int       `gorm:"not null" json:"payment_statuses_id"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Order) TableName() string { return "orders" }

// OrderLineItem associates one submitted line with its parent order. Rows are
// owned exclusively by the order and live or die with it.
type OrderLineItem struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	OrdersID   string `gorm:"type:uuid;not null;index" json:"orders_id"`
	ProductsID string `gorm:"type:uuid;not null" json:"products_id"`
	Quantity   int    `gorm:"not null" json:"quantity"`
	Spec       string `gorm:"size:100;not null" json:"spec"`
	Colors     string `gorm:"size:100;not null" json:"colors"`
}

func (OrderLineItem) TableName() string { return "order_link_products" }

// CustomerInfo is the shipping contact supplied with a submission.
type CustomerInfo struct {
	Name    string `json:"name"`
	Tel     string `json:"tel"`
	Address string `json:"address"`
}

// LineItemInput is one product+quantity+variant entry of a submission.
type LineItemInput struct {
	ProductsID string `json:"products_id"`
	Quantity   int    `json:"quantity"`
	Spec       string `json:"spec"`
	Colors     string `json:"colors"`
}

// OrderSubmission is the inbound order payload. Prices are deliberately
// absent: pricing is always resolved server-side.
type OrderSubmission struct {
	User           CustomerInfo    `json:"user"`
	Orders         []LineItemInput `json:"orders"`
	PaymentMethods int             `json:"payment_methods"`
}

// OrderConfirmation summarizes a successfully created order.
type OrderConfirmation struct {
	OrderID              string    `json:"order_id"`
	PaymentMethodsLabel  string    `json:"payment_methods_label"`
	PaymentStatusesLabel string    `json:"payment_statuses_label"`
	OrderStatusesLabel   string    `json:"order_statuses_label"`
	OriginalPrice        int       `json:"original_price"`
	Price                int       `json:"price"`
	Discount             int       `json:"discount"`
	DeliveryFee          int       `json:"delivery_fee"`
	TotalPrice           int       `json:"total_price"`
	CreatedAt            time.Time `json:"created_at"`
}

// OrderRepository persists order headers together with their line items.
// CreateWithItems must be atomic: either the header and every item commit, or
// nothing remains.
type OrderRepository interface {
	CreateWithItems(ctx context.Context, order *Order, items []OrderLineItem) error
}

// OrderUseCase is the order placement workflow.
type OrderUseCase interface {
	PlaceOrder(ctx context.Context, customerID string, sub OrderSubmission) (*OrderConfirmation, error)
}
