package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sweetshop/internal/model"
)

// OrderRepository defines order persistence operations.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	FindByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error)
	// Transaction methods
	WithTransaction(ctx context.Context, fn func(ctx context.Context, tx interface{}) error) error
	CreateTx(ctx context.Context, tx interface{}, order *model.Order) error
}

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository.
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// Create creates a new order together with its items.
func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// FindByUser returns the user's orders, newest first, with items attached.
func (r *orderRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	var orders []model.Order
	if err := r.db.WithContext(ctx).Preload("Items").
		Where("user_id = ?", userID).Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// WithTransaction executes a function within a database transaction. The tx
// handle is passed to the Tx variants on the other repositories so checkout
// can touch sweets, cart rows and orders atomically.
func (r *orderRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, tx interface{}) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, tx)
	})
}

// CreateTx creates an order with its items within a transaction.
func (r *orderRepository) CreateTx(ctx context.Context, tx interface{}, order *model.Order) error {
	txDB := tx.(*gorm.DB)
	return txDB.WithContext(ctx).Create(order).Error
}
