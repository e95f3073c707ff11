// Package seed holds the demo data the shop ships with: two well-known users
// and a small starter catalog. Fixed UUIDs make the seed idempotent.
package seed

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"sweetshop/internal/model"
)

var (
	adminID    = uuid.MustParse("6f1d2c7e-9a3b-4f10-8d5e-0b6a7c3e1f24")
	customerID = uuid.MustParse("a4e8b1d0-3c52-47f9-9e6b-2d8f5a0c7b13")

	gulabJamunID = uuid.MustParse("b7c9e2f4-1a6d-4e83-92b5-f0d3c8a61e57")
	kajuKatliID  = uuid.MustParse("c2a5f8d1-7e3b-49c6-8f04-6b9d1e5a2c38")
	besanLadduID = uuid.MustParse("d9e4b6a3-5f12-4d78-b1c0-8a7e3f2d6b49")
	gajarHalwaID = uuid.MustParse("e1f7c3b8-2d94-4a65-9e0d-5c8b6a4f1d20")
)

// Users returns the demo admin and customer accounts with freshly hashed
// passwords (admin123 / customer123).
func Users() ([]model.User, error) {
	adminHash, err := bcrypt.GenerateFromPassword([]byte("admin123"), 10)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	customerHash, err := bcrypt.GenerateFromPassword([]byte("customer123"), 10)
	if err != nil {
		return nil, fmt.Errorf("hash customer password: %w", err)
	}

	return []model.User{
		{
			ID:           adminID,
			Username:     "admin",
			Email:        "admin@sweetshop.com",
			PasswordHash: string(adminHash),
			Role:         model.RoleAdmin,
		},
		{
			ID:           customerID,
			Username:     "customer",
			Email:        "customer@sweetshop.com",
			PasswordHash: string(customerHash),
			Role:         model.RoleCustomer,
		},
	}, nil
}

// Sweets returns the starter catalog.
func Sweets() []model.Sweet {
	return []model.Sweet{
		{
			ID:          gulabJamunID,
			Name:        "Gulab Jamun",
			Category:    model.CategoryMithai,
			Description: "Soft, spongy milk-solid balls soaked in aromatic sugar syrup",
			Price:       decimal.RequireFromString("180.00"),
			Quantity:    25,
			ImageURL:    "https://images.unsplash.com/photo-1631452180539-96aca7d48617?w=600&h=400",
		},
		{
			ID:          kajuKatliID,
			Name:        "Kaju Katli",
			Category:    model.CategoryBarfi,
			Description: "Premium cashew-based diamond-shaped delicacy with silver foil",
			Price:       decimal.RequireFromString("450.00"),
			Quantity:    3,
			ImageURL:    "https://images.unsplash.com/photo-1599599810769-bcde5a160d32?w=600&h=400",
		},
		{
			ID:          besanLadduID,
			Name:        "Besan Laddu",
			Category:    model.CategoryLaddu,
			Description: "Traditional gram flour balls with ghee and cardamom",
			Price:       decimal.RequireFromString("120.00"),
			Quantity:    40,
		},
		{
			ID:          gajarHalwaID,
			Name:        "Gajar Halwa",
			Category:    model.CategoryHalwa,
			Description: "Rich carrot-based dessert with milk, nuts and cardamom",
			Price:       decimal.RequireFromString("200.00"),
			Quantity:    0,
		},
	}
}
