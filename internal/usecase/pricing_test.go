package usecase

import (
	"shop_service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeQuote(t *testing.T) {
	pricer := FlatRateDelivery{Rate: 60}

	products := map[string]domain.Product{
		"p1": {ID: "p1", OriginPrice: 500, Price: 450},
		"p2": {ID: "p2", OriginPrice: 300, Price: 300},
	}

	t.Run("single item", func(t *testing.T) {
		items := []domain.LineItemInput{
			{ProductsID: "p1", Quantity: 2},
		}
		quote := computeQuote(items, products, pricer)

		assert.Equal(t, 1000, quote.OriginalPrice)
		assert.Equal(t, 900, quote.DiscountedPrice)
		assert.Equal(t, 100, quote.Discount)
		assert.Equal(t, 60, quote.DeliveryFee)
		assert.Equal(t, 960, quote.TotalPrice)
	})

	t.Run("multiple items", func(t *testing.T) {
		items := []domain.LineItemInput{
			{ProductsID: "p1", Quantity: 1},
			{ProductsID: "p2", Quantity: 3},
		}
		quote := computeQuote(items, products, pricer)

		assert.Equal(t, 500+900, quote.OriginalPrice)
		assert.Equal(t, 450+900, quote.DiscountedPrice)
		assert.Equal(t, 50, quote.Discount)
		assert.Equal(t, quote.DiscountedPrice+60, quote.TotalPrice)
	})

	t.Run("undiscounted product yields zero discount", func(t *testing.T) {
		items := []domain.LineItemInput{
			{ProductsID: "p2", Quantity: 2},
		}
		quote := computeQuote(items, products, pricer)

		assert.Equal(t, 0, quote.Discount)
		assert.Equal(t, quote.OriginalPrice, quote.DiscountedPrice)
	})

	t.Run("zero quantity contributes nothing", func(t *testing.T) {
		items := []domain.LineItemInput{
			{ProductsID: "p1", Quantity: 0},
		}
		quote := computeQuote(items, products, pricer)

		assert.Equal(t, 0, quote.OriginalPrice)
		assert.Equal(t, 0, quote.DiscountedPrice)
		assert.Equal(t, 60, quote.TotalPrice)
	})

	t.Run("invariants hold", func(t *testing.T) {
		items := []domain.LineItemInput{
			{ProductsID: "p1", Quantity: 4},
			{ProductsID: "p2", Quantity: 1},
		}
		quote := computeQuote(items, products, pricer)

		assert.Equal(t, quote.OriginalPrice-quote.DiscountedPrice, quote.Discount)
		assert.Equal(t, quote.DiscountedPrice+quote.DeliveryFee, quote.TotalPrice)
	})
}

func TestFlatRateDelivery(t *testing.T) {
	pricer := FlatRateDelivery{Rate: 80}
	assert.Equal(t, 80, pricer.Fee(0))
	assert.Equal(t, 80, pricer.Fee(99999))
}
