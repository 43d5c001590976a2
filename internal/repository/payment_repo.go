package repository

import (
	"context"
	"errors"
	"fmt"
	"shop_service/internal/domain"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type gormPaymentMethodRepository struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewGormPaymentMethodRepository(db *gorm.DB, logger *logrus.Logger) domain.PaymentMethodRepository {
	return &gormPaymentMethodRepository{
		db:  db,
		log: logger,
	}
}

func (r *gormPaymentMethodRepository) GetByID(ctx context.Context, id int) (*domain.PaymentMethod, error) {
	method := &domain.PaymentMethod{}
	err := r.db.WithContext(ctx).First(method, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Warnf("Payment method with ID %d not found", id)
			return nil, fmt.Errorf("payment method with id %d: %w", id, domain.ErrNotFound)
		}
		r.log.Errorf("Failed to get payment method by ID %d: %v", id, err)
		return nil, fmt.Errorf("could not get payment method: %w", err)
	}
	return method, nil
}
