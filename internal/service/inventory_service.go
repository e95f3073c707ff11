package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sweetshop/internal/cache"
	apperrors "sweetshop/internal/errors"
	"sweetshop/internal/repository"
)

// InventoryService applies purchase and restock operations to sweet
// quantities. Role enforcement for restock lives in the middleware; this
// service trusts its caller to have already authorized the action.
type InventoryService interface {
	Purchase(ctx context.Context, sweetID uuid.UUID, quantity int) error
	Restock(ctx context.Context, sweetID uuid.UUID, quantity int) error
}

type inventoryService struct {
	sweetRepo repository.SweetRepository
	cache     *cache.Client
	// Mutex map for per-sweet locking. Check-then-write on quantity must be
	// a critical section per sweet or concurrent purchases could drive the
	// stock negative.
	sweetMutexes sync.Map
}

// NewInventoryService creates a new inventory service.
func NewInventoryService(sweetRepo repository.SweetRepository, cache *cache.Client) InventoryService {
	return &inventoryService{
		sweetRepo: sweetRepo,
		cache:     cache,
	}
}

// getMutex returns a mutex for a specific sweet ID.
func (s *inventoryService) getMutex(sweetID uuid.UUID) *sync.Mutex {
	key := sweetID.String()
	value, _ := s.sweetMutexes.LoadOrStore(key, &sync.Mutex{})
	return value.(*sync.Mutex)
}

// Purchase deducts quantity units of stock, all or nothing. A missing sweet
// and a short stock both return ErrInsufficientStock.
func (s *inventoryService) Purchase(ctx context.Context, sweetID uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return apperrors.ErrInvalidQuantity
	}

	mutex := s.getMutex(sweetID)
	mutex.Lock()
	defer mutex.Unlock()

	err := s.sweetRepo.WithTransaction(ctx, func(ctx context.Context, repo repository.SweetRepository) error {
		sweet, err := repo.FindByIDForUpdate(ctx, sweetID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return apperrors.ErrInsufficientStock
			}
			return fmt.Errorf("find sweet: %w", err)
		}

		if sweet.Quantity < quantity {
			return apperrors.ErrInsufficientStock
		}

		return repo.UpdateQuantity(ctx, sweetID, sweet.Quantity-quantity)
	})
	if err != nil {
		return err
	}

	_ = s.cache.Delete(ctx, fmt.Sprintf("sweet:%s", sweetID.String()))
	return nil
}

// Restock adds quantity units of stock to an existing sweet.
func (s *inventoryService) Restock(ctx context.Context, sweetID uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return apperrors.ErrInvalidQuantity
	}

	mutex := s.getMutex(sweetID)
	mutex.Lock()
	defer mutex.Unlock()

	err := s.sweetRepo.WithTransaction(ctx, func(ctx context.Context, repo repository.SweetRepository) error {
		sweet, err := repo.FindByIDForUpdate(ctx, sweetID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return apperrors.ErrSweetNotFound
			}
			return fmt.Errorf("find sweet: %w", err)
		}

		return repo.UpdateQuantity(ctx, sweetID, sweet.Quantity+quantity)
	})
	if err != nil {
		return err
	}

	_ = s.cache.Delete(ctx, fmt.Sprintf("sweet:%s", sweetID.String()))
	return nil
}
