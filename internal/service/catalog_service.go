package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"sweetshop/internal/cache"
	apperrors "sweetshop/internal/errors"
	"sweetshop/internal/model"
	"sweetshop/internal/repository"
)

const sweetCacheTTL = 5 * time.Minute

// SweetUpdate carries a partial catalog edit; nil fields are left untouched.
type SweetUpdate struct {
	Name        *string
	Category    *model.SweetCategory
	Description *string
	Price       *decimal.Decimal
	Quantity    *int
	ImageURL    *string
}

// CatalogService handles sweet listing, search and admin CRUD.
type CatalogService interface {
	ListSweets(ctx context.Context) ([]model.Sweet, error)
	GetSweet(ctx context.Context, id uuid.UUID) (*model.Sweet, error)
	SearchSweets(ctx context.Context, filter repository.SweetFilter) ([]model.Sweet, error)
	CreateSweet(ctx context.Context, sweet *model.Sweet) (*model.Sweet, error)
	UpdateSweet(ctx context.Context, id uuid.UUID, update SweetUpdate) (*model.Sweet, error)
	DeleteSweet(ctx context.Context, id uuid.UUID) error
	SeedSweets(ctx context.Context, sweets []model.Sweet) (int, error)
}

type catalogService struct {
	repo  repository.SweetRepository
	cache *cache.Client
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(repo repository.SweetRepository, cache *cache.Client) CatalogService {
	return &catalogService{repo: repo, cache: cache}
}

func (s *catalogService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("sweet:%s", id.String())
}

// ListSweets returns the whole catalog.
func (s *catalogService) ListSweets(ctx context.Context) ([]model.Sweet, error) {
	return s.repo.List(ctx)
}

// GetSweet retrieves a sweet by ID with caching.
func (s *catalogService) GetSweet(ctx context.Context, id uuid.UUID) (*model.Sweet, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Sweet
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	sweet, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrSweetNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(sweet); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, sweetCacheTTL)
	}

	return sweet, nil
}

// SearchSweets returns the catalog subset matching the filter.
func (s *catalogService) SearchSweets(ctx context.Context, filter repository.SweetFilter) ([]model.Sweet, error) {
	return s.repo.Search(ctx, filter)
}

// CreateSweet adds a sweet to the catalog.
func (s *catalogService) CreateSweet(ctx context.Context, sweet *model.Sweet) (*model.Sweet, error) {
	if err := s.repo.Create(ctx, sweet); err != nil {
		return nil, fmt.Errorf("create sweet: %w", err)
	}
	return sweet, nil
}

// UpdateSweet applies a partial edit and refreshes updatedAt.
func (s *catalogService) UpdateSweet(ctx context.Context, id uuid.UUID, update SweetUpdate) (*model.Sweet, error) {
	sweet, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrSweetNotFound
		}
		return nil, err
	}

	if update.Name != nil {
		sweet.Name = *update.Name
	}
	if update.Category != nil {
		sweet.Category = *update.Category
	}
	if update.Description != nil {
		sweet.Description = *update.Description
	}
	if update.Price != nil {
		sweet.Price = *update.Price
	}
	if update.Quantity != nil {
		sweet.Quantity = *update.Quantity
	}
	if update.ImageURL != nil {
		sweet.ImageURL = *update.ImageURL
	}

	if err := s.repo.Update(ctx, sweet); err != nil {
		return nil, fmt.Errorf("update sweet: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return sweet, nil
}

// DeleteSweet removes a sweet permanently.
func (s *catalogService) DeleteSweet(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrSweetNotFound
		}
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

// SeedSweets creates any of the given sweets that are not already present.
func (s *catalogService) SeedSweets(ctx context.Context, sweets []model.Sweet) (int, error) {
	count := 0
	for i := range sweets {
		if _, err := s.repo.FindByIDOrCreate(ctx, &sweets[i]); err != nil {
			return count, fmt.Errorf("seed sweet %s: %w", sweets[i].Name, err)
		}
		_ = s.cache.Delete(ctx, s.cacheKey(sweets[i].ID))
		count++
	}
	return count, nil
}
