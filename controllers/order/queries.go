package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/letaunahn/ecommerce-ai-shop-backend/models"
	"gorm.io/gorm"
)

// GET /api/order/:orderID
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		var order models.Order
		if err := db.
			Preload("Items").
			Preload("ShippingInfo").
			First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order fetched.", "order": order})
	}
}

// GET /api/order/my
func GetMyOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		buyerID := c.GetString("user_id")
		if buyerID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var orders []models.Order
		if err := db.
			Where("buyer_id = ?", buyerID).
			Preload("Items").
			Preload("ShippingInfo").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "All your orders fetched", "my_orders": orders})
	}
}

// GET /api/admin/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items").
			Preload("ShippingInfo").
			Preload("Payments").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "All orders fetched.", "orders": orders})
	}
}
