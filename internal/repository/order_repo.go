package repository

import (
	"context"
	"fmt"
	"shop_service/internal/domain"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type gormOrderRepository struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewGormOrderRepository(db *gorm.DB, logger *logrus.Logger) domain.OrderRepository {
	return &gormOrderRepository{
		db:  db,
		log: logger,
	}
}

// CreateWithItems writes the order header and its line items in a single
// transaction. Any failure rolls the whole order back, so a header is never
// observable without its items.
func (r *gormOrderRepository) CreateWithItems(ctx context.Context, order *domain.Order, items []domain.OrderLineItem) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			r.log.Errorf("Failed to insert order header for user %s: %v", order.UsersID, err)
			return fmt.Errorf("%w: %v", domain.ErrOrderInsert, err)
		}
		r.log.Infof("Order header created with ID: %s for user: %s", order.ID, order.UsersID)

		for i := range items {
			items[i].OrdersID = order.ID
		}

		result := tx.Create(&items)
		if result.Error != nil {
			r.log.Errorf("Failed to insert line items for order %s: %v", order.ID, result.Error)
			return fmt.Errorf("%w: %v", domain.ErrLineItemInsert, result.Error)
		}
		if result.RowsAffected != int64(len(items)) {
			r.log.Errorf("Inserted %d of %d line items for order %s, rolling back", result.RowsAffected, len(items), order.ID)
			return fmt.Errorf("%w: inserted %d of %d rows", domain.ErrLineItemInsert, result.RowsAffected, len(items))
		}

		return nil
	})
	if err != nil {
		return err
	}

	r.log.Infof("Order %s created successfully with %d items.", order.ID, len(items))
	return nil
}
