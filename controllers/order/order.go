package orderControllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/letaunahn/ecommerce-ai-shop-backend/apperr"
	"github.com/letaunahn/ecommerce-ai-shop-backend/inventory"
	"github.com/letaunahn/ecommerce-ai-shop-backend/models"
	"github.com/letaunahn/ecommerce-ai-shop-backend/payments"
	"github.com/letaunahn/ecommerce-ai-shop-backend/pricing"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// -------- Request / Response Structs --------

type OrderedItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type PlaceOrderRequest struct {
	FullName     string             `json:"full_name" binding:"required"`
	Locality     string             `json:"locality" binding:"required"`
	Province     string             `json:"province" binding:"required"`
	Country      string             `json:"country" binding:"required"`
	Address      string             `json:"address" binding:"required"`
	Zipcode      string             `json:"zipcode" binding:"required"`
	Phone        string             `json:"phone" binding:"required"`
	OrderedItems []OrderedItemInput `json:"ordered_items" binding:"required,min=1,dive"`
}

type PlacementResult struct {
	OrderID      string
	TotalPrice   decimal.Decimal
	ClientSecret string
}

// -------- Core Logic --------

// PlaceOrder runs the fulfillment sequence: price against the catalog,
// persist order + items + shipping and reserve stock in one transaction,
// then open a payment intent. A failed intent rolls the reservation back
// and marks the order Cancelled so no dangling order survives.
func PlaceOrder(ctx context.Context, db *gorm.DB, gw payments.Gateway, currency, buyerID string, req PlaceOrderRequest) (PlacementResult, error) {
	lines := make([]pricing.Line, 0, len(req.OrderedItems))
	ids := make([]string, 0, len(req.OrderedItems))
	for _, item := range req.OrderedItems {
		lines = append(lines, pricing.Line{ProductID: item.ProductID, Quantity: item.Quantity})
		ids = append(ids, item.ProductID)
	}

	var products []models.Product
	if err := db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return PlacementResult{}, apperr.Wrap(apperr.KindPersistence, "failed to load products", err)
	}

	quote, err := pricing.Compute(lines, products)
	if err != nil {
		return PlacementResult{}, err
	}

	order := models.Order{
		BuyerID:       buyerID,
		TotalPrice:    quote.TotalPrice,
		TaxPrice:      quote.TaxPrice,
		ShippingPrice: quote.ShippingPrice,
		OrderStatus:   models.OrderStatusProcessing,
		ShippingInfo: &models.ShippingInfo{
			FullName: req.FullName,
			Locality: req.Locality,
			Province: req.Province,
			Country:  req.Country,
			Address:  req.Address,
			Zipcode:  req.Zipcode,
			Phone:    req.Phone,
		},
	}
	for _, line := range quote.Lines {
		order.Items = append(order.Items, models.OrderItem{
			ProductID: line.Product.ID,
			Quantity:  line.Quantity,
			Price:     line.Product.Price,
			Image:     line.Product.Image,
			Title:     line.Product.Name,
		})
	}

	// Order header, items, shipping and the stock reservation commit
	// together or not at all.
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return apperr.Wrap(apperr.KindPersistence, "failed to create order", err)
		}
		for _, line := range quote.Lines {
			if err := inventory.Reserve(tx, line.Product.ID, line.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return PlacementResult{}, err
	}

	clientSecret, err := payments.Open(ctx, db, gw, order.ID, order.TotalPrice, currency)
	if err != nil {
		compensatePlacement(db, order)
		return PlacementResult{}, err
	}

	broadcastOrderEvent(order)

	return PlacementResult{
		OrderID:      order.ID,
		TotalPrice:   order.TotalPrice,
		ClientSecret: clientSecret,
	}, nil
}

// compensatePlacement releases the reservation and marks the order
// Cancelled after a payment-initiation failure. Runs without the request
// context so a caller timeout cannot abort the cleanup.
func compensatePlacement(db *gorm.DB, order models.Order) {
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, item := range order.Items {
			if err := inventory.Release(tx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
		return tx.Model(&models.Order{}).Where("id = ?", order.ID).
			Update("order_status", models.OrderStatusCancelled).Error
	})
	if err != nil {
		log.Error().Err(err).Str("order_id", order.ID).Msg("Failed to compensate cancelled placement")
		return
	}
	log.Warn().Str("order_id", order.ID).Msg("Payment initiation failed, order cancelled and stock released")
}

// -------- Handlers --------

// POST /api/order/place
func PlaceOrderHandler(db *gorm.DB, gw payments.Gateway, currency string) gin.HandlerFunc {
	return func(c *gin.Context) {
		buyerID := c.GetString("user_id")
		if buyerID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide complete shipping details and items."})
			return
		}

		result, err := PlaceOrder(c.Request.Context(), db, gw, currency, buyerID, req)
		if err != nil {
			c.JSON(apperr.Status(err), gin.H{"error": apperr.MessageOf(err), "kind": apperr.KindOf(err)})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":        "Order placed successfully. Please proceed to payment.",
			"order_id":       result.OrderID,
			"total_price":    result.TotalPrice,
			"payment_intent": result.ClientSecret,
		})
	}
}
