// Package pricing derives order totals from cart lines and authoritative
// catalog rows. Client-supplied prices are never trusted; the catalog rows
// passed in are the only price source.
package pricing

import (
	"github.com/letaunahn/ecommerce-ai-shop-backend/apperr"
	"github.com/letaunahn/ecommerce-ai-shop-backend/models"
	"github.com/shopspring/decimal"
)

var (
	// TaxRate is the flat sales tax applied to the item subtotal.
	TaxRate = decimal.NewFromFloat(0.08)
	// FreeShippingThreshold is the subtotal at which shipping becomes free.
	FreeShippingThreshold = decimal.NewFromInt(50)
	// FlatShippingFee applies below the threshold.
	FlatShippingFee = decimal.NewFromInt(2)
)

// Line is a transient cart line: a product reference plus requested
// quantity. It exists only for the duration of order placement.
type Line struct {
	ProductID string
	Quantity  int
}

type PricedLine struct {
	Product  models.Product
	Quantity int
	Subtotal decimal.Decimal
}

type Quote struct {
	Lines         []PricedLine
	Subtotal      decimal.Decimal
	TaxPrice      decimal.Decimal
	ShippingPrice decimal.Decimal
	TotalPrice    decimal.Decimal
}

// Compute validates every line against the catalog before pricing anything,
// so a bad line is reported before any caller-side mutation. Stock here is a
// pre-check only; the inventory ledger re-validates atomically at reserve
// time.
func Compute(lines []Line, products []models.Product) (Quote, error) {
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	for _, line := range lines {
		product, ok := byID[line.ProductID]
		if !ok {
			return Quote{}, apperr.Newf(apperr.KindProductNotFound, "product not found for ID: %s", line.ProductID)
		}
		if product.Stock < line.Quantity {
			return Quote{}, apperr.Newf(apperr.KindInsufficientStock, "not enough stock for product: %s", product.Name)
		}
	}

	quote := Quote{Subtotal: decimal.Zero}
	for _, line := range lines {
		product := byID[line.ProductID]
		subtotal := product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		quote.Subtotal = quote.Subtotal.Add(subtotal)
		quote.Lines = append(quote.Lines, PricedLine{
			Product:  product,
			Quantity: line.Quantity,
			Subtotal: subtotal,
		})
	}

	quote.TaxPrice = quote.Subtotal.Mul(TaxRate).Round(2)
	if quote.Subtotal.GreaterThanOrEqual(FreeShippingThreshold) {
		quote.ShippingPrice = decimal.Zero
	} else {
		quote.ShippingPrice = FlatShippingFee
	}
	quote.TotalPrice = quote.Subtotal.Add(quote.TaxPrice).Add(quote.ShippingPrice).Round(2)

	return quote, nil
}
