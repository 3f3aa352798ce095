package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing" // Order placed, payment pending
	OrderStatusShipped    OrderStatus = "Shipped"    // Out for delivery
	OrderStatusDelivered  OrderStatus = "Delivered"  // Customer received the item
	OrderStatusCancelled  OrderStatus = "Cancelled"  // Cancelled, reservation released
)

type Order struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	BuyerID string `gorm:"type:uuid;not null;index" json:"buyer_id"`

	// Totals are computed once at placement against catalog prices and
	// never recomputed: total = sum(item subtotals) + tax + shipping.
	TotalPrice    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_price"`
	TaxPrice      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"tax_price"`
	ShippingPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"shipping_price"`

	OrderStatus OrderStatus `gorm:"type:VARCHAR(20);default:'Processing'" json:"order_status"`
	PaidAt      *time.Time  `json:"paid_at"`

	Items        []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	ShippingInfo *ShippingInfo `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"shipping_info,omitempty"`
	Payments     []Payment     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"payments,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// OrderItem snapshots price, title and image at time of sale so later
// catalog changes do not rewrite order history. Immutable after creation.
type OrderItem struct {
	ID        string          `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID   string          `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID string          `gorm:"type:uuid;not null" json:"product_id"`
	Quantity  int             `gorm:"not null;check:quantity > 0" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Image     string          `json:"image"`
	Title     string          `gorm:"not null" json:"title"`
	CreatedAt time.Time       `json:"created_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
