package ports

import (
	"context"

	"github.com/stocktrack/inventory-api/internal/core/domain"
)

// ListItemsFilter carries the query parameters for listing items.
type ListItemsFilter struct {
	SKU    string // optional: exact match
	Search string // optional: partial match on sku or name
	Page   int    // 1-based
	Limit  int    // capped at 100 by the service
}

// ItemRepository defines persistence operations for inventory items.
type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) (*domain.Item, error)
	FindByID(ctx context.Context, id string) (*domain.Item, error)
	// List returns a page of items matching filter and the total count.
	List(ctx context.Context, filter ListItemsFilter) ([]*domain.Item, int64, error)
	Update(ctx context.Context, item *domain.Item) (*domain.Item, error)
	Delete(ctx context.Context, id string) error
}
