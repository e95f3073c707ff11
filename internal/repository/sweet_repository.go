package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"sweetshop/internal/model"
)

// SweetFilter narrows a catalog search. All set fields are conjunctive;
// zero-value fields impose no constraint.
type SweetFilter struct {
	Query    string
	Category model.SweetCategory
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

// SweetRepository defines sweet persistence operations.
type SweetRepository interface {
	Create(ctx context.Context, sweet *model.Sweet) error
	Update(ctx context.Context, sweet *model.Sweet) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Sweet, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Sweet, error)
	FindByIDOrCreate(ctx context.Context, sweet *model.Sweet) (*model.Sweet, error)
	UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error
	List(ctx context.Context) ([]model.Sweet, error)
	Search(ctx context.Context, filter SweetFilter) ([]model.Sweet, error)
	// Transaction methods
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo SweetRepository) error) error
	FindByIDForUpdateTx(ctx context.Context, tx interface{}, id uuid.UUID) (*model.Sweet, error)
	UpdateQuantityTx(ctx context.Context, tx interface{}, id uuid.UUID, quantity int) error
}

type sweetRepository struct {
	db *gorm.DB
}

// NewSweetRepository creates a new sweet repository.
func NewSweetRepository(db *gorm.DB) SweetRepository {
	return &sweetRepository{db: db}
}

// Create creates a new sweet.
func (r *sweetRepository) Create(ctx context.Context, sweet *model.Sweet) error {
	return r.db.WithContext(ctx).Create(sweet).Error
}

// Update updates an existing sweet.
func (r *sweetRepository) Update(ctx context.Context, sweet *model.Sweet) error {
	return r.db.WithContext(ctx).Save(sweet).Error
}

// Delete removes a sweet permanently.
func (r *sweetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Sweet{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindByID finds a sweet by ID.
func (r *sweetRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Sweet, error) {
	var sweet model.Sweet
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&sweet).Error; err != nil {
		return nil, err
	}
	return &sweet, nil
}

// FindByIDForUpdate finds a sweet by ID with row-level lock for update.
func (r *sweetRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*model.Sweet, error) {
	var sweet model.Sweet
	if err := r.db.WithContext(ctx).Set("gorm:query_option", "FOR UPDATE").
		Where("id = ?", id).First(&sweet).Error; err != nil {
		return nil, err
	}
	return &sweet, nil
}

// FindByIDOrCreate finds a sweet by ID or creates it if it doesn't exist.
func (r *sweetRepository) FindByIDOrCreate(ctx context.Context, sweet *model.Sweet) (*model.Sweet, error) {
	var existing model.Sweet
	err := r.db.WithContext(ctx).Where("id = ?", sweet.ID).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Create(sweet).Error; err != nil {
		return nil, err
	}
	return sweet, nil
}

// UpdateQuantity updates the stock quantity of a sweet. GORM refreshes
// updated_at on the way through.
func (r *sweetRepository) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error {
	return r.db.WithContext(ctx).Model(&model.Sweet{}).
		Where("id = ?", id).
		Update("quantity", quantity).Error
}

// List returns every sweet in insertion order.
func (r *sweetRepository) List(ctx context.Context) ([]model.Sweet, error) {
	var sweets []model.Sweet
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&sweets).Error; err != nil {
		return nil, err
	}
	return sweets, nil
}

// Search returns the sweets matching every set filter field.
func (r *sweetRepository) Search(ctx context.Context, filter SweetFilter) ([]model.Sweet, error) {
	q := r.db.WithContext(ctx).Model(&model.Sweet{})

	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		q = q.Where("LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.MinPrice != nil {
		q = q.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("price <= ?", *filter.MaxPrice)
	}

	var sweets []model.Sweet
	if err := q.Order("created_at, id").Find(&sweets).Error; err != nil {
		return nil, err
	}
	return sweets, nil
}

// WithTransaction executes a function within a database transaction.
func (r *sweetRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo SweetRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &sweetRepository{db: tx}
		return fn(ctx, txRepo)
	})
}

// FindByIDForUpdateTx finds a sweet by ID with row-level lock within a transaction.
func (r *sweetRepository) FindByIDForUpdateTx(ctx context.Context, tx interface{}, id uuid.UUID) (*model.Sweet, error) {
	txDB := tx.(*gorm.DB)
	var sweet model.Sweet
	if err := txDB.WithContext(ctx).Set("gorm:query_option", "FOR UPDATE").
		Where("id = ?", id).First(&sweet).Error; err != nil {
		return nil, err
	}
	return &sweet, nil
}

// UpdateQuantityTx updates the stock quantity within a transaction.
func (r *sweetRepository) UpdateQuantityTx(ctx context.Context, tx interface{}, id uuid.UUID, quantity int) error {
	txDB := tx.(*gorm.DB)
	return txDB.WithContext(ctx).Model(&model.Sweet{}).
		Where("id = ?", id).
		Update("quantity", quantity).Error
}
