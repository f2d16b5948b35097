package service

import (
	"context"
	"fmt"

	"stockroom/internal/common"
	"stockroom/internal/domain/model"
	"stockroom/internal/domain/repository"
)

// ListCache caches the full item collection between mutations. A nil cache
// is valid and turns every read into a repository hit.
type ListCache interface {
	GetList(ctx context.Context) ([]model.Item, bool)
	SetList(ctx context.Context, items []model.Item)
	Invalidate(ctx context.Context)
}

type ItemService struct {
	itemRepo repository.ItemRepository
	cache    ListCache
}

func NewItemService(itemRepo repository.ItemRepository, cache ListCache) *ItemService {
	return &ItemService{itemRepo: itemRepo, cache: cache}
}

type CreateItemRequest struct {
	Name        string `json:"name" validate:"required"`
	Quantity    *int   `json:"quantity" validate:"required,gte=0"`
	Description string `json:"description"`
}

type UpdateItemRequest struct {
	Name        *string `json:"name,omitempty"`
	Quantity    *int    `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	Description *string `json:"description,omitempty"`
}

func (s *ItemService) ListItems(ctx context.Context) ([]model.Item, error) {
	if s.cache != nil {
		if items, ok := s.cache.GetList(ctx); ok {
			return items, nil
		}
	}

	items, err := s.itemRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	if s.cache != nil {
		s.cache.SetList(ctx, items)
	}
	return items, nil
}

func (s *ItemService) GetItem(ctx context.Context, id string) (*model.Item, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ItemService) CreateItem(ctx context.Context, req CreateItemRequest) (*model.Item, error) {
	if err := validate.Struct(req); err != nil {
		return nil, common.Errorf("%v: %w", err, common.ErrValidation)
	}

	item, err := s.itemRepo.Insert(ctx, req.Name, *req.Quantity, req.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	return item, nil
}

func (s *ItemService) UpdateItem(ctx context.Context, id string, req UpdateItemRequest) (*model.Item, error) {
	if err := validate.Struct(req); err != nil {
		return nil, common.Errorf("%v: %w", err, common.ErrValidation)
	}
	// A provided name must stay non-empty; a nil name means unchanged.
	if req.Name != nil && *req.Name == "" {
		return nil, fmt.Errorf("name cannot be cleared: %w", common.ErrValidation)
	}

	existing, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patched := existing.Apply(model.ItemPatch{
		Name:        req.Name,
		Quantity:    req.Quantity,
		Description: req.Description,
	})

	// Replace refreshes last_updated even when the patch was a no-op.
	updated, err := s.itemRepo.Replace(ctx, id, patched)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	return updated, nil
}

func (s *ItemService) DeleteItem(ctx context.Context, id string) error {
	if err := s.itemRepo.DeleteByID(ctx, id); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	return nil
}
