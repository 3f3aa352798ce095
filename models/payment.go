package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "Pending" // Intent created, awaiting capture
	PaymentStatusPaid    PaymentStatus = "Paid"    // Confirmed by the processor webhook
	PaymentStatusFailed  PaymentStatus = "Failed"  // Processor reported failure
)

// Payment links an order to an external payment intent. Created Pending at
// placement; only the webhook confirmation handler moves it to Paid.
type Payment struct {
	ID              string        `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID         string        `gorm:"type:uuid;not null;index" json:"order_id"`
	PaymentType     string        `gorm:"type:VARCHAR(20);not null" json:"payment_type"`
	PaymentStatus   PaymentStatus `gorm:"type:VARCHAR(20);default:'Pending'" json:"payment_status"`
	PaymentIntentID string        `gorm:"uniqueIndex;not null" json:"payment_intent_id"`
	CreatedAt       time.Time     `json:"created_at"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
