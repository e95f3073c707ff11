package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartItem is one cart line: a (user, sweet, quantity) association. At most
// one row exists per (user, sweet) pair; re-adding merges quantities.
type CartItem struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID `json:"userId" gorm:"type:char(36);not null;index"`
	SweetID   uuid.UUID `json:"sweetId" gorm:"type:char(36);not null;index"`
	Quantity  int       `json:"quantity" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}

// BeforeCreate sets UUID before creating the record.
func (c *CartItem) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// CartItemWithSweet is a cart line joined with the live sweet snapshot.
// Price and name come from the catalog at read time, not from add time.
type CartItemWithSweet struct {
	CartItem
	Sweet Sweet `json:"sweet"`
}
