package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShippingInfo is the one-to-one shipping record for an order. Immutable
// after creation, deleted with its order.
type ShippingInfo struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID  string `gorm:"type:uuid;not null;uniqueIndex" json:"order_id"`
	FullName string `gorm:"type:VARCHAR(100);not null" json:"full_name"`
	Locality string `gorm:"type:VARCHAR(100);not null" json:"locality"`
	Province string `gorm:"type:VARCHAR(100);not null" json:"province"`
	Country  string `gorm:"type:VARCHAR(100);not null" json:"country"`
	Address  string `gorm:"not null" json:"address"`
	Zipcode  string `gorm:"type:VARCHAR(10);not null" json:"zipcode"`
	Phone    string `gorm:"type:VARCHAR(20);not null" json:"phone"`
}

func (s *ShippingInfo) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
