package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SweetCategory is the closed set of catalog categories.
type SweetCategory string

const (
	CategoryMithai SweetCategory = "mithai"
	CategoryLaddu  SweetCategory = "laddu"
	CategoryHalwa  SweetCategory = "halwa"
	CategoryBarfi  SweetCategory = "barfi"
)

// Sweet represents a catalog product with price and stock quantity.
// Quantity never goes below zero; purchase and restock are the only paths
// that mutate it. Deletion is a hard delete, so there is no soft-delete column.
type Sweet struct {
	ID          uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	Name        string          `json:"name" gorm:"size:255;not null;index"`
	Category    SweetCategory   `json:"category" gorm:"type:varchar(20);not null;index"`
	Description string          `json:"description" gorm:"type:text;not null"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Quantity    int             `json:"quantity" gorm:"not null;default:0"`
	ImageURL    string          `json:"imageUrl,omitempty" gorm:"size:1024"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (s *Sweet) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
