package usecase

import (
	"context"
	"errors"
	"shop_service/internal/domain"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var _ domain.OrderUseCase = (*orderUseCase)(nil)

// fallbackPaymentLabel annotates the confirmation when the payment-method
// label cannot be resolved. Label resolution is best-effort and never blocks
// order creation.
const fallbackPaymentLabel = "N/A"

type orderUseCase struct {
	orderRepo   domain.OrderRepository
	productRepo domain.ProductRepository
	paymentRepo domain.PaymentMethodRepository
	delivery    DeliveryPricer
	dbTimeout   time.Duration
	log         *logrus.Logger
}

func NewOrderUseCase(
	orderRepo domain.OrderRepository,
	productRepo domain.ProductRepository,
	paymentRepo domain.PaymentMethodRepository,
	delivery DeliveryPricer,
	dbTimeout time.Duration,
	logger *logrus.Logger,
) domain.OrderUseCase {
	return &orderUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		paymentRepo: paymentRepo,
		delivery:    delivery,
		dbTimeout:   dbTimeout,
		log:         logger,
	}
}

// PlaceOrder runs the order placement workflow: validate the submission,
// resolve authoritative pricing, and persist the header with its line items
// in one transaction.
func (uc *orderUseCase) PlaceOrder(ctx context.Context, customerID string, sub domain.OrderSubmission) (*domain.OrderConfirmation, error) {
	if customerID == "" {
		uc.log.Error("Use Case: Missing customer identity for order placement")
		return nil, domain.NewUnexpectedError("missing customer identity", nil)
	}

	if err := validateSubmission(sub); err != nil {
		uc.log.Warnf("Use Case: Order submission from user %s failed validation", customerID)
		return nil, err
	}
	uc.log.Infof("Use Case: Validated order submission for user %s (%d items)", customerID, len(sub.Orders))

	productIDs := uniqueProductIDs(sub.Orders)

	lookupCtx, cancel := context.WithTimeout(ctx, uc.dbTimeout)
	defer cancel()
	products, err := uc.productRepo.FindByIDs(lookupCtx, productIDs)
	if err != nil {
		uc.log.Errorf("Use Case: Product lookup failed for user %s: %v", customerID, err)
		return nil, domain.NewUnexpectedError("failed to resolve products", err)
	}
	if len(products) != len(productIDs) {
		uc.log.Warnf("Use Case: %d of %d product IDs resolved for user %s", len(products), len(productIDs), customerID)
		return nil, domain.NewReferenceError(msgUnknownProducts)
	}

	productMap := make(map[string]domain.Product, len(products))
	for _, p := range products {
		productMap[p.ID] = p
	}

	quote := computeQuote(sub.Orders, productMap, uc.delivery)
	uc.log.Infof("Use Case: Priced order for user %s: original=%d price=%d discount=%d delivery=%d total=%d",
		customerID, quote.OriginalPrice, quote.DiscountedPrice, quote.Discount, quote.DeliveryFee, quote.TotalPrice)

	paymentLabel := fallbackPaymentLabel
	methodCtx, cancelMethod := context.WithTimeout(ctx, uc.dbTimeout)
	defer cancelMethod()
	if method, err := uc.paymentRepo.GetByID(methodCtx, sub.PaymentMethods); err != nil {
		uc.log.Warnf("Use Case: Could not resolve payment method %d, using fallback label: %v", sub.PaymentMethods, err)
	} else {
		paymentLabel = method.Label
	}

	order := &domain.Order{
		ID:                uuid.NewString(),
		UsersID:           customerID,
		Name:              sub.User.Name,
		Tel:               sub.User.Tel,
		Address:           sub.User.Address,
		IsPaid:            false,
		PaymentMethodsID:  sub.PaymentMethods,
		OrderStatusesID:   domain.InitialOrderStatusID,
		PaymentStatusesID: domain.InitialPaymentStatusID,
	}
	items := make([]domain.OrderLineItem, 0, len(sub.Orders))
	for _, input := range sub.Orders {
		items = append(items, domain.OrderLineItem{
			ProductsID: input.ProductsID,
			Quantity:   input.Quantity,
			Spec:       input.Spec,
			Colors:     input.Colors,
		})
	}

	writeCtx, cancelWrite := context.WithTimeout(ctx, uc.dbTimeout)
	defer cancelWrite()
	if err := uc.orderRepo.CreateWithItems(writeCtx, order, items); err != nil {
		if errors.Is(err, domain.ErrLineItemInsert) {
			uc.log.Errorf("Use Case: Line item write failed for user %s, transaction rolled back: %v", customerID, err)
			return nil, domain.NewPersistenceError(msgLineItemsFailed, err)
		}
		uc.log.Errorf("Use Case: Order header write failed for user %s: %v", customerID, err)
		return nil, domain.NewPersistenceError(msgOrderCreateFailed, err)
	}

	uc.log.Infof("Use Case: Order %s created successfully for user %s", order.ID, customerID)
	return &domain.OrderConfirmation{
		OrderID:              order.ID,
		PaymentMethodsLabel:  paymentLabel,
		PaymentStatusesLabel: domain.InitialPaymentStatusLabel,
		OrderStatusesLabel:   domain.InitialOrderStatusLabel,
		OriginalPrice:        quote.OriginalPrice,
		Price:                quote.DiscountedPrice,
		Discount:             quote.Discount,
		DeliveryFee:          quote.DeliveryFee,
		TotalPrice:           quote.TotalPrice,
		CreatedAt:            order.CreatedAt,
	}, nil
}

// uniqueProductIDs returns the deduplicated identifier set of a submission,
// preserving first-seen order.
func uniqueProductIDs(items []domain.LineItemInput) []string {
	seen := make(map[string]struct{}, len(items))
	ids := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductsID]; ok {
			continue
		}
		seen[item.ProductsID] = struct{}{}
		ids = append(ids, item.ProductsID)
	}
	return ids
}
