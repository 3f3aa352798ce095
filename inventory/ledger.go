// Package inventory is the only writer of product stock. Both operations
// are single conditional UPDATEs so two concurrent orders for the last unit
// of a product can never both succeed.
package inventory

import (
	"github.com/letaunahn/ecommerce-ai-shop-backend/apperr"
	"github.com/letaunahn/ecommerce-ai-shop-backend/models"
	"gorm.io/gorm"
)

// Reserve decrements stock and increments sold_count for one product,
// guarded by a stock-sufficiency check evaluated inside the same statement.
// Callers pass their transaction handle so the reservation commits or rolls
// back with the order write.
func Reserve(tx *gorm.DB, productID string, quantity int) error {
	res := tx.Model(&models.Product{}).
		Where("id = ? AND stock >= ?", productID, quantity).
		Updates(map[string]interface{}{
			"stock":      gorm.Expr("stock - ?", quantity),
			"sold_count": gorm.Expr("sold_count + ?", quantity),
		})
	if res.Error != nil {
		return apperr.Wrap(apperr.KindPersistence, "failed to reserve stock", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.KindInsufficientStock, "not enough products available in stock")
	}
	return nil
}

// Release reverses a reservation, used by the cancellation and
// payment-failure compensation paths.
func Release(tx *gorm.DB, productID string, quantity int) error {
	res := tx.Model(&models.Product{}).
		Where("id = ?", productID).
		Updates(map[string]interface{}{
			"stock":      gorm.Expr("stock + ?", quantity),
			"sold_count": gorm.Expr("sold_count - ?", quantity),
		})
	if res.Error != nil {
		return apperr.Wrap(apperr.KindPersistence, "failed to release stock", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.Newf(apperr.KindProductNotFound, "product not found for ID: %s", productID)
	}
	return nil
}
