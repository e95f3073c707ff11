package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "sweetshop/internal/errors"
	"sweetshop/internal/model"
	"sweetshop/internal/repository"
)

// CartService manages per-user cart lines.
type CartService interface {
	AddToCart(ctx context.Context, userID, sweetID uuid.UUID, quantity int) (*model.CartItem, error)
	ListCart(ctx context.Context, userID uuid.UUID) ([]model.CartItemWithSweet, error)
	RemoveFromCart(ctx context.Context, itemID uuid.UUID) error
	ClearCart(ctx context.Context, userID uuid.UUID) error
}

type cartService struct {
	cartRepo  repository.CartRepository
	sweetRepo repository.SweetRepository
}

// NewCartService creates a new cart service.
func NewCartService(cartRepo repository.CartRepository, sweetRepo repository.SweetRepository) CartService {
	return &cartService{
		cartRepo:  cartRepo,
		sweetRepo: sweetRepo,
	}
}

// AddToCart adds quantity units of a sweet to the user's cart. An existing
// (user, sweet) row has its quantity increased instead of a second row being
// created. Sweet existence and stock are deliberately not checked here; they
// surface when the cart is listed or checked out.
func (s *cartService) AddToCart(ctx context.Context, userID, sweetID uuid.UUID, quantity int) (*model.CartItem, error) {
	if quantity <= 0 {
		return nil, apperrors.ErrInvalidQuantity
	}

	existing, err := s.cartRepo.FindByUserAndSweet(ctx, userID, sweetID)
	if err == nil {
		existing.Quantity += quantity
		if err := s.cartRepo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("update cart item: %w", err)
		}
		return existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("find cart item: %w", err)
	}

	item := &model.CartItem{
		UserID:   userID,
		SweetID:  sweetID,
		Quantity: quantity,
	}
	if err := s.cartRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create cart item: %w", err)
	}
	return item, nil
}

// ListCart returns the user's cart lines joined with live sweet snapshots.
// Rows whose sweet has since been deleted are pruned and skipped rather than
// failing the whole listing.
func (s *cartService) ListCart(ctx context.Context, userID uuid.UUID) ([]model.CartItemWithSweet, error) {
	items, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}

	result := make([]model.CartItemWithSweet, 0, len(items))
	for _, item := range items {
		sweet, err := s.sweetRepo.FindByID(ctx, item.SweetID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				_ = s.cartRepo.Delete(ctx, item.ID)
				continue
			}
			return nil, fmt.Errorf("resolve cart sweet: %w", err)
		}
		result = append(result, model.CartItemWithSweet{CartItem: item, Sweet: *sweet})
	}
	return result, nil
}

// RemoveFromCart deletes a single cart row by its own id. Ownership is not
// checked; row ids are unguessable v4 uuids and are only ever returned to the
// row's owner.
func (s *cartService) RemoveFromCart(ctx context.Context, itemID uuid.UUID) error {
	if err := s.cartRepo.Delete(ctx, itemID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrCartItemNotFound
		}
		return fmt.Errorf("remove cart item: %w", err)
	}
	return nil
}

// ClearCart deletes every cart row owned by the user.
func (s *cartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	if err := s.cartRepo.DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
