package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "sweetshop/internal/errors"
	"sweetshop/internal/model"
)

func TestCartService_AddToCart(t *testing.T) {
	userID := uuid.New()
	sweetID := uuid.New()

	t.Run("new sweet creates a row", func(t *testing.T) {
		mockCart := new(MockCartRepository)
		mockSweet := new(MockSweetRepository)
		mockCart.On("FindByUserAndSweet", mock.Anything, userID, sweetID).Return(nil, gorm.ErrRecordNotFound)
		mockCart.On("Create", mock.Anything, mock.AnythingOfType("*model.CartItem")).Return(nil)

		svc := NewCartService(mockCart, mockSweet)
		item, err := svc.AddToCart(context.Background(), userID, sweetID, 2)

		assert.NoError(t, err)
		assert.Equal(t, 2, item.Quantity)
		assert.Equal(t, userID, item.UserID)
		assert.Equal(t, sweetID, item.SweetID)
		mockCart.AssertExpectations(t)
	})

	t.Run("existing sweet merges quantities into one row", func(t *testing.T) {
		existing := &model.CartItem{ID: uuid.New(), UserID: userID, SweetID: sweetID, Quantity: 2}

		mockCart := new(MockCartRepository)
		mockSweet := new(MockSweetRepository)
		mockCart.On("FindByUserAndSweet", mock.Anything, userID, sweetID).Return(existing, nil)
		mockCart.On("Update", mock.Anything, existing).Return(nil)

		svc := NewCartService(mockCart, mockSweet)
		item, err := svc.AddToCart(context.Background(), userID, sweetID, 3)

		assert.NoError(t, err)
		assert.Equal(t, 5, item.Quantity)
		assert.Equal(t, existing.ID, item.ID)
		mockCart.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		mockCart.AssertExpectations(t)
	})

	t.Run("non-positive quantity rejected", func(t *testing.T) {
		mockCart := new(MockCartRepository)
		mockSweet := new(MockSweetRepository)

		svc := NewCartService(mockCart, mockSweet)
		_, err := svc.AddToCart(context.Background(), userID, sweetID, 0)

		assert.Equal(t, apperrors.ErrInvalidQuantity, err)
		mockCart.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCartService_ListCart(t *testing.T) {
	userID := uuid.New()
	sweetA := &model.Sweet{ID: uuid.New(), Name: "Gulab Jamun", Quantity: 10}
	sweetB := &model.Sweet{ID: uuid.New(), Name: "Kaju Katli", Quantity: 3}

	t.Run("joins live sweet snapshots", func(t *testing.T) {
		items := []model.CartItem{
			{ID: uuid.New(), UserID: userID, SweetID: sweetA.ID, Quantity: 2},
			{ID: uuid.New(), UserID: userID, SweetID: sweetB.ID, Quantity: 1},
		}

		mockCart := new(MockCartRepository)
		mockSweet := new(MockSweetRepository)
		mockCart.On("FindByUser", mock.Anything, userID).Return(items, nil)
		mockSweet.On("FindByID", mock.Anything, sweetA.ID).Return(sweetA, nil)
		mockSweet.On("FindByID", mock.Anything, sweetB.ID).Return(sweetB, nil)

		svc := NewCartService(mockCart, mockSweet)
		result, err := svc.ListCart(context.Background(), userID)

		assert.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, "Gulab Jamun", result[0].Sweet.Name)
		assert.Equal(t, "Kaju Katli", result[1].Sweet.Name)
	})

	t.Run("orphaned rows are pruned, not fatal", func(t *testing.T) {
		orphan := model.CartItem{ID: uuid.New(), UserID: userID, SweetID: uuid.New(), Quantity: 1}
		items := []model.CartItem{
			{ID: uuid.New(), UserID: userID, SweetID: sweetA.ID, Quantity: 2},
			orphan,
		}

		mockCart := new(MockCartRepository)
		mockSweet := new(MockSweetRepository)
		mockCart.On("FindByUser", mock.Anything, userID).Return(items, nil)
		mockSweet.On("FindByID", mock.Anything, sweetA.ID).Return(sweetA, nil)
		mockSweet.On("FindByID", mock.Anything, orphan.SweetID).Return(nil, gorm.ErrRecordNotFound)
		mockCart.On("Delete", mock.Anything, orphan.ID).Return(nil)

		svc := NewCartService(mockCart, mockSweet)
		result, err := svc.ListCart(context.Background(), userID)

		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, sweetA.ID, result[0].SweetID)
		mockCart.AssertExpectations(t)
	})

	t.Run("empty cart lists as empty slice", func(t *testing.T) {
		mockCart := new(MockCartRepository)
		mockSweet := new(MockSweetRepository)
		mockCart.On("FindByUser", mock.Anything, userID).Return([]model.CartItem{}, nil)

		svc := NewCartService(mockCart, mockSweet)
		result, err := svc.ListCart(context.Background(), userID)

		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Len(t, result, 0)
	})
}

func TestCartService_RemoveFromCart(t *testing.T) {
	t.Run("removes an existing row", func(t *testing.T) {
		itemID := uuid.New()
		mockCart := new(MockCartRepository)
		mockCart.On("Delete", mock.Anything, itemID).Return(nil)

		svc := NewCartService(mockCart, new(MockSweetRepository))
		assert.NoError(t, svc.RemoveFromCart(context.Background(), itemID))
		mockCart.AssertExpectations(t)
	})

	t.Run("missing row reports not found", func(t *testing.T) {
		itemID := uuid.New()
		mockCart := new(MockCartRepository)
		mockCart.On("Delete", mock.Anything, itemID).Return(gorm.ErrRecordNotFound)

		svc := NewCartService(mockCart, new(MockSweetRepository))
		err := svc.RemoveFromCart(context.Background(), itemID)
		assert.Equal(t, apperrors.ErrCartItemNotFound, err)
	})
}

func TestCartService_ClearCart(t *testing.T) {
	userID := uuid.New()
	mockCart := new(MockCartRepository)
	mockCart.On("DeleteByUser", mock.Anything, userID).Return(nil)

	svc := NewCartService(mockCart, new(MockSweetRepository))
	assert.NoError(t, svc.ClearCart(context.Background(), userID))
	mockCart.AssertExpectations(t)
}
