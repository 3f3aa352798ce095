package pricing

import (
	"testing"

	"github.com/letaunahn/ecommerce-ai-shop-backend/apperr"
	"github.com/letaunahn/ecommerce-ai-shop-backend/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id string, price string, stock int) models.Product {
	p, _ := decimal.NewFromString(price)
	return models.Product{ID: id, Name: "product-" + id, Price: p, Stock: stock}
}

func TestComputeFreeShippingOverThreshold(t *testing.T) {
	products := []models.Product{
		product("a", "30.00", 10),
		product("b", "25.00", 10),
	}
	lines := []Line{
		{ProductID: "a", Quantity: 1},
		{ProductID: "b", Quantity: 1},
	}

	quote, err := Compute(lines, products)
	require.NoError(t, err)

	assert.Equal(t, "55", quote.Subtotal.String())
	assert.Equal(t, "4.4", quote.TaxPrice.String())
	assert.True(t, quote.ShippingPrice.IsZero())
	assert.Equal(t, "59.4", quote.TotalPrice.String())
}

func TestComputeFlatShippingUnderThreshold(t *testing.T) {
	products := []models.Product{product("c", "10.00", 5)}
	lines := []Line{{ProductID: "c", Quantity: 2}}

	quote, err := Compute(lines, products)
	require.NoError(t, err)

	assert.Equal(t, "20", quote.Subtotal.String())
	assert.Equal(t, "1.6", quote.TaxPrice.String())
	assert.Equal(t, "2", quote.ShippingPrice.String())
	assert.Equal(t, "23.6", quote.TotalPrice.String())
}

func TestComputeThresholdBoundary(t *testing.T) {
	// Exactly 50.00 ships free.
	products := []models.Product{product("a", "25.00", 10)}
	quote, err := Compute([]Line{{ProductID: "a", Quantity: 2}}, products)
	require.NoError(t, err)
	assert.True(t, quote.ShippingPrice.IsZero())

	// A cent below pays the flat fee.
	products = []models.Product{product("b", "49.99", 10)}
	quote, err = Compute([]Line{{ProductID: "b", Quantity: 1}}, products)
	require.NoError(t, err)
	assert.Equal(t, "2", quote.ShippingPrice.String())
}

func TestComputeRoundsTaxToCents(t *testing.T) {
	products := []models.Product{product("a", "19.99", 10)}
	quote, err := Compute([]Line{{ProductID: "a", Quantity: 1}}, products)
	require.NoError(t, err)

	// 19.99 * 0.08 = 1.5992 -> 1.60
	assert.Equal(t, "1.6", quote.TaxPrice.String())
	assert.Equal(t, "23.59", quote.TotalPrice.String())
}

func TestComputeProductNotFound(t *testing.T) {
	products := []models.Product{product("a", "10.00", 10)}
	lines := []Line{
		{ProductID: "a", Quantity: 1},
		{ProductID: "missing", Quantity: 1},
	}

	_, err := Compute(lines, products)
	require.Error(t, err)
	assert.Equal(t, apperr.KindProductNotFound, apperr.KindOf(err))
}

func TestComputeInsufficientStock(t *testing.T) {
	products := []models.Product{product("a", "10.00", 1)}

	_, err := Compute([]Line{{ProductID: "a", Quantity: 2}}, products)
	require.Error(t, err)
	assert.Equal(t, apperr.KindInsufficientStock, apperr.KindOf(err))
}

func TestComputeKeepsLineOrderAndSnapshots(t *testing.T) {
	products := []models.Product{
		product("a", "5.50", 10),
		product("b", "2.25", 10),
	}
	lines := []Line{
		{ProductID: "b", Quantity: 4},
		{ProductID: "a", Quantity: 2},
	}

	quote, err := Compute(lines, products)
	require.NoError(t, err)
	require.Len(t, quote.Lines, 2)
	assert.Equal(t, "b", quote.Lines[0].Product.ID)
	assert.Equal(t, "9", quote.Lines[0].Subtotal.String())
	assert.Equal(t, "a", quote.Lines[1].Product.ID)
	assert.Equal(t, "11", quote.Lines[1].Subtotal.String())
}
