package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sweetshop/internal/model"
)

// CartRepository defines cart persistence operations.
type CartRepository interface {
	Create(ctx context.Context, item *model.CartItem) error
	Update(ctx context.Context, item *model.CartItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.CartItem, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]model.CartItem, error)
	FindByUserAndSweet(ctx context.Context, userID, sweetID uuid.UUID) (*model.CartItem, error)
	DeleteByUserTx(ctx context.Context, tx interface{}, userID uuid.UUID) error
}

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a new cart repository.
func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

// Create creates a new cart row.
func (r *cartRepository) Create(ctx context.Context, item *model.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// Update updates an existing cart row.
func (r *cartRepository) Update(ctx context.Context, item *model.CartItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// Delete removes a cart row by its own id.
func (r *cartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteByUser removes every cart row owned by the user. Deleting an already
// empty cart is not an error.
func (r *cartRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.CartItem{}).Error
}

// FindByID finds a cart row by ID.
func (r *cartRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.CartItem, error) {
	var item model.CartItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByUser returns every cart row for the user in insertion order.
func (r *cartRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]model.CartItem, error) {
	var items []model.CartItem
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// FindByUserAndSweet finds the single row for a (user, sweet) pair.
func (r *cartRepository) FindByUserAndSweet(ctx context.Context, userID, sweetID uuid.UUID) (*model.CartItem, error) {
	var item model.CartItem
	if err := r.db.WithContext(ctx).Where("user_id = ? AND sweet_id = ?", userID, sweetID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteByUserTx removes a user's cart rows within a transaction.
func (r *cartRepository) DeleteByUserTx(ctx context.Context, tx interface{}, userID uuid.UUID) error {
	txDB := tx.(*gorm.DB)
	return txDB.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.CartItem{}).Error
}
