package paymentControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	orderControllers "github.com/letaunahn/ecommerce-ai-shop-backend/controllers/order"
	"github.com/letaunahn/ecommerce-ai-shop-backend/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// WebhookEvent is the processor's notification envelope. The signature is
// verified by middleware before this handler runs.
type WebhookEvent struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID string `json:"id"` // payment intent identifier
		} `json:"object"`
	} `json:"data"`
}

// errUnknownIntent marks a notification for an intent we never recorded.
// Acked without side effects: processors retry, escalating would storm.
var errUnknownIntent = errors.New("unknown payment intent")

// POST /api/payment/webhook
//
// Idempotent by construction: effects apply only on the Pending -> Paid (or
// Failed) edge, taken with a single compare-and-set, so redelivery of the
// same event is a no-op. Stock is never touched on success — it already
// moved at reservation time.
func WebhookHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var event WebhookEvent
		if err := c.ShouldBindJSON(&event); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid webhook payload"})
			return
		}

		var err error
		switch event.Type {
		case "payment_intent.succeeded":
			err = confirmPayment(db, event.Data.Object.ID)
		case "payment_intent.payment_failed":
			err = failPayment(db, event.Data.Object.ID)
		default:
			// Unhandled event types are acked so the processor stops retrying.
		}

		if errors.Is(err, errUnknownIntent) {
			log.Warn().Str("intent_id", event.Data.Object.ID).Str("event", event.Type).
				Msg("Webhook for unknown payment intent, acknowledged without effects")
			c.JSON(http.StatusOK, gin.H{"received": true})
			return
		}
		if err != nil {
			log.Error().Err(err).Str("intent_id", event.Data.Object.ID).Msg("Failed to apply webhook")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process webhook"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"received": true})
	}
}

// takePendingEdge flips the payment row from Pending to the given status.
// Returns the payment when this call won the edge, nil when the event was
// already applied, errUnknownIntent when no such intent exists.
func takePendingEdge(tx *gorm.DB, intentID string, to models.PaymentStatus) (*models.Payment, error) {
	var payment models.Payment
	err := tx.First(&payment, "payment_intent_id = ?", intentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errUnknownIntent
	}
	if err != nil {
		return nil, err
	}

	res := tx.Model(&models.Payment{}).
		Where("payment_intent_id = ? AND payment_status = ?", intentID, models.PaymentStatusPending).
		Update("payment_status", to)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &payment, nil
}

// confirmPayment marks the payment Paid and stamps the order's paid_at.
func confirmPayment(db *gorm.DB, intentID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		payment, err := takePendingEdge(tx, intentID, models.PaymentStatusPaid)
		if err != nil || payment == nil {
			return err
		}
		return tx.Model(&models.Order{}).Where("id = ?", payment.OrderID).
			Update("paid_at", time.Now()).Error
	})
}

// failPayment marks the payment Failed and cancels the order, releasing its
// stock reservation.
func failPayment(db *gorm.DB, intentID string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		payment, err := takePendingEdge(tx, intentID, models.PaymentStatusFailed)
		if err != nil || payment == nil {
			return err
		}
		return orderControllers.CancelOrder(tx, payment.OrderID)
	})
}
