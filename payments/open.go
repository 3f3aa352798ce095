package payments

import (
	"context"

	"github.com/letaunahn/ecommerce-ai-shop-backend/apperr"
	"github.com/letaunahn/ecommerce-ai-shop-backend/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Open creates a payment intent for the given order total and records the
// Pending payment row linking the order to the processor's intent. If the
// external call fails, nothing is written and the caller is expected to
// compensate the already-committed order.
func Open(ctx context.Context, db *gorm.DB, gw Gateway, orderID string, total decimal.Decimal, currency string) (string, error) {
	intent, err := gw.CreateIntent(ctx, MinorUnits(total), currency)
	if err != nil {
		return "", apperr.Wrap(apperr.KindPaymentInitiation, "payment failed, try again", err)
	}

	payment := models.Payment{
		OrderID:         orderID,
		PaymentType:     "Online",
		PaymentStatus:   models.PaymentStatusPending,
		PaymentIntentID: intent.ID,
	}
	if err := db.WithContext(ctx).Create(&payment).Error; err != nil {
		return "", apperr.Wrap(apperr.KindPersistence, "failed to record payment", err)
	}

	return intent.ClientSecret, nil
}
