package usecase

import "shop_service/internal/domain"

// DeliveryPricer is the policy hook deciding the delivery fee for a priced
// order. The current policy is a flat rate, but the rule belongs to the
// backend, never to the client.
type DeliveryPricer interface {
	Fee(discountedPrice int) int
}

// FlatRateDelivery charges the same fee regardless of order value.
type FlatRateDelivery struct {
	Rate int
}

func (d FlatRateDelivery) Fee(int) int {
	return d.Rate
}

// priceQuote is the aggregate pricing of a submission. All values are in the
// smallest currency unit.
type priceQuote struct {
	OriginalPrice   int
	DiscountedPrice int
	Discount        int
	DeliveryFee     int
	TotalPrice      int
}

// computeQuote aggregates pricing over the resolved products. Prices come
// exclusively from the product rows; client-supplied amounts never enter here.
func computeQuote(items []domain.LineItemInput, products map[string]domain.Product, pricer DeliveryPricer) priceQuote {
	var quote priceQuote
	for _, item := range items {
		product, ok := products[item.ProductsID]
		if !ok {
			continue
		}
		quote.OriginalPrice += product.OriginPrice * item.Quantity
		quote.DiscountedPrice += product.Price * item.Quantity
	}
	quote.Discount = quote.OriginalPrice - quote.DiscountedPrice
	quote.DeliveryFee = pricer.Fee(quote.DiscountedPrice)
	quote.TotalPrice = quote.DiscountedPrice + quote.DeliveryFee
	return quote
}
