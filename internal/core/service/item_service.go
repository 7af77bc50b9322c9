package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/stocktrack/inventory-api/internal/core/domain"
	"github.com/stocktrack/inventory-api/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type itemService struct {
	repo ports.ItemRepository
	log  zerolog.Logger
}

// NewItemService returns an ItemService implementation.
func NewItemService(repo ports.ItemRepository, log zerolog.Logger) ports.ItemService {
	return &itemService{repo: repo, log: log}
}

func (s *itemService) CreateItem(ctx context.Context, input ports.CreateItemInput) (*domain.Item, error) {
	if input.Quantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}

	now := time.Now().UTC()
	item := &domain.Item{
		SKU:         input.SKU,
		Name:        input.Name,
		Description: input.Description,
		Quantity:    input.Quantity,
		UnitPrice:   input.UnitPrice,
		Currency:    input.Currency,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *itemService) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *itemService) ListItems(ctx context.Context, input ports.ListItemsInput) (*ports.ListItemsResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	items, total, err := s.repo.List(ctx, ports.ListItemsFilter{
		SKU:    input.SKU,
		Search: input.Search,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}

	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}

	return &ports.ListItemsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

func (s *itemService) UpdateItem(ctx context.Context, input ports.UpdateItemInput) (*domain.Item, error) {
	if input.Quantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}

	existing, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.Description = input.Description
	existing.Quantity = input.Quantity
	existing.UnitPrice = input.UnitPrice
	existing.Currency = input.Currency
	existing.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("item_id", updated.ID).Msg("item updated")
	return updated, nil
}

func (s *itemService) DeleteItem(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
