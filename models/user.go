package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

type User struct {
	ID        string   `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string   `gorm:"not null" json:"name"`
	Email     string   `gorm:"unique;not null" json:"email"`
	Password  string   `gorm:"not null" json:"-"` // hash written by the auth service
	Role      UserRole `gorm:"type:VARCHAR(20);default:'user'" json:"role"`
	Orders    []Order  `gorm:"foreignKey:BuyerID;constraint:OnDelete:CASCADE" json:"orders,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
