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

func TestInventoryService_Purchase(t *testing.T) {
	sweetID := uuid.New()

	tests := []struct {
		name          string
		quantity      int
		setupMock     func(*MockSweetRepository)
		expectedError error
	}{
		{
			name:     "successful purchase deducts stock",
			quantity: 3,
			setupMock: func(m *MockSweetRepository) {
				m.On("FindByIDForUpdate", mock.Anything, sweetID).Return(&model.Sweet{ID: sweetID, Quantity: 5}, nil)
				m.On("UpdateQuantity", mock.Anything, sweetID, 2).Return(nil)
			},
		},
		{
			name:     "purchase of entire stock succeeds",
			quantity: 5,
			setupMock: func(m *MockSweetRepository) {
				m.On("FindByIDForUpdate", mock.Anything, sweetID).Return(&model.Sweet{ID: sweetID, Quantity: 5}, nil)
				m.On("UpdateQuantity", mock.Anything, sweetID, 0).Return(nil)
			},
		},
		{
			name:     "insufficient stock leaves quantity unchanged",
			quantity: 6,
			setupMock: func(m *MockSweetRepository) {
				m.On("FindByIDForUpdate", mock.Anything, sweetID).Return(&model.Sweet{ID: sweetID, Quantity: 5}, nil)
			},
			expectedError: apperrors.ErrInsufficientStock,
		},
		{
			name:     "missing sweet reported as insufficient stock",
			quantity: 1,
			setupMock: func(m *MockSweetRepository) {
				m.On("FindByIDForUpdate", mock.Anything, sweetID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInsufficientStock,
		},
		{
			name:          "zero quantity rejected",
			quantity:      0,
			setupMock:     func(m *MockSweetRepository) {},
			expectedError: apperrors.ErrInvalidQuantity,
		},
		{
			name:          "negative quantity rejected",
			quantity:      -2,
			setupMock:     func(m *MockSweetRepository) {},
			expectedError: apperrors.ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockSweetRepository)
			tt.setupMock(mockRepo)

			svc := NewInventoryService(mockRepo, nil)
			err := svc.Purchase(context.Background(), sweetID, tt.quantity)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				mockRepo.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

// A vanished sweet and a short stock must produce the same error so a token
// holder cannot probe which catalog ids exist.
func TestInventoryService_PurchaseFailuresAreConflated(t *testing.T) {
	missingID := uuid.New()
	shortID := uuid.New()

	mockRepo := new(MockSweetRepository)
	mockRepo.On("FindByIDForUpdate", mock.Anything, missingID).Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("FindByIDForUpdate", mock.Anything, shortID).Return(&model.Sweet{ID: shortID, Quantity: 1}, nil)

	svc := NewInventoryService(mockRepo, nil)

	errMissing := svc.Purchase(context.Background(), missingID, 2)
	errShort := svc.Purchase(context.Background(), shortID, 2)

	assert.Equal(t, errMissing, errShort)
}

func TestInventoryService_Restock(t *testing.T) {
	sweetID := uuid.New()

	tests := []struct {
		name          string
		quantity      int
		setupMock     func(*MockSweetRepository)
		expectedError error
	}{
		{
			name:     "successful restock adds stock",
			quantity: 3,
			setupMock: func(m *MockSweetRepository) {
				m.On("FindByIDForUpdate", mock.Anything, sweetID).Return(&model.Sweet{ID: sweetID, Quantity: 0}, nil)
				m.On("UpdateQuantity", mock.Anything, sweetID, 3).Return(nil)
			},
		},
		{
			name:     "missing sweet reported as not found",
			quantity: 3,
			setupMock: func(m *MockSweetRepository) {
				m.On("FindByIDForUpdate", mock.Anything, sweetID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrSweetNotFound,
		},
		{
			name:          "zero quantity rejected",
			quantity:      0,
			setupMock:     func(m *MockSweetRepository) {},
			expectedError: apperrors.ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockSweetRepository)
			tt.setupMock(mockRepo)

			svc := NewInventoryService(mockRepo, nil)
			err := svc.Restock(context.Background(), sweetID, tt.quantity)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
