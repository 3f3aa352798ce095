package orderControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/letaunahn/ecommerce-ai-shop-backend/inventory"
	"github.com/letaunahn/ecommerce-ai-shop-backend/models"
	"gorm.io/gorm"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case "processing":
		return models.OrderStatusProcessing, nil
	case "shipped":
		return models.OrderStatusShipped, nil
	case "delivered":
		return models.OrderStatusDelivered, nil
	case "cancelled":
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// CancelOrder marks an order Cancelled and releases its stock reservation.
// Safe to call more than once: the status flip is a compare-and-set, so only
// the call that wins the edge releases stock. A paid order keeps its
// reservation (stock moved for good at reservation time, refunds are a
// manual process).
func CancelOrder(tx *gorm.DB, orderID string) error {
	var order models.Order
	if err := tx.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
		return err
	}

	res := tx.Model(&models.Order{}).
		Where("id = ? AND order_status <> ?", orderID, models.OrderStatusCancelled).
		Update("order_status", models.OrderStatusCancelled)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return nil
	}

	if order.PaidAt == nil {
		for _, item := range order.Items {
			if err := inventory.Release(tx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
	}
	return nil
}

// PUT /api/admin/orders/:orderID/status
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Provide a valid status for order."})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if newStatus == models.OrderStatusCancelled {
				return CancelOrder(tx, orderID)
			}

			res := tx.Model(&models.Order{}).Where("id = ?", orderID).
				Update("order_status", newStatus)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
			return nil
		})
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Invalid order ID."})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully."})
	}
}

// DELETE /api/admin/orders/:orderID
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			// Children cascade with the order row.
			if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("order_id = ?", orderID).Delete(&models.ShippingInfo{}).Error; err != nil {
				return err
			}
			if err := tx.Where("order_id = ?", orderID).Delete(&models.Payment{}).Error; err != nil {
				return err
			}
			res := tx.Where("id = ?", orderID).Delete(&models.Order{})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
			return nil
		})
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Invalid order ID"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully."})
	}
}
