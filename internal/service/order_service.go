package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"sweetshop/internal/cache"
	apperrors "sweetshop/internal/errors"
	"sweetshop/internal/model"
	"sweetshop/internal/repository"
)

// OrderService converts carts into orders.
type OrderService interface {
	Checkout(ctx context.Context, userID uuid.UUID) (*model.Order, error)
	ListOrders(ctx context.Context, userID uuid.UUID) ([]model.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
	sweetRepo repository.SweetRepository
	cache     *cache.Client
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	sweetRepo repository.SweetRepository,
	cache *cache.Client,
) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		sweetRepo: sweetRepo,
		cache:     cache,
	}
}

// Checkout turns the user's cart into a completed order in one transaction:
// every line's stock is deducted with purchase semantics, order and items are
// written with prices frozen at checkout, and the cart is cleared. If any
// line cannot be satisfied nothing is applied.
func (s *orderService) Checkout(ctx context.Context, userID uuid.UUID) (*model.Order, error) {
	items, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if len(items) == 0 {
		return nil, apperrors.ErrCartEmpty
	}

	// Lock sweets in a stable order so two concurrent checkouts cannot
	// deadlock on each other's row locks.
	sort.Slice(items, func(i, j int) bool {
		return items[i].SweetID.String() < items[j].SweetID.String()
	})

	order := &model.Order{
		UserID: userID,
		Status: model.OrderStatusCompleted,
	}

	err = s.orderRepo.WithTransaction(ctx, func(ctx context.Context, tx interface{}) error {
		total := decimal.Zero
		orderItems := make([]model.OrderItem, 0, len(items))

		for _, item := range items {
			sweet, err := s.sweetRepo.FindByIDForUpdateTx(ctx, tx, item.SweetID)
			if err != nil {
				if err == gorm.ErrRecordNotFound {
					return apperrors.ErrInsufficientStock
				}
				return fmt.Errorf("find sweet: %w", err)
			}

			if sweet.Quantity < item.Quantity {
				return apperrors.ErrInsufficientStock
			}

			if err := s.sweetRepo.UpdateQuantityTx(ctx, tx, sweet.ID, sweet.Quantity-item.Quantity); err != nil {
				return fmt.Errorf("deduct stock: %w", err)
			}

			total = total.Add(sweet.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
			orderItems = append(orderItems, model.OrderItem{
				SweetID:  sweet.ID,
				Quantity: item.Quantity,
				Price:    sweet.Price,
			})
		}

		order.Total = total
		order.Items = orderItems
		if err := s.orderRepo.CreateTx(ctx, tx, order); err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		return s.cartRepo.DeleteByUserTx(ctx, tx, userID)
	})
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		_ = s.cache.Delete(ctx, fmt.Sprintf("sweet:%s", item.SweetID.String()))
	}

	return order, nil
}

// ListOrders returns the user's orders with their items.
func (s *orderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	return s.orderRepo.FindByUser(ctx, userID)
}
