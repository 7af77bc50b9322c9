package ports

import (
	"context"

	"github.com/stocktrack/inventory-api/internal/core/domain"
)

// CreateItemInput carries all data needed to create an item.
type CreateItemInput struct {
	SKU         string
	Name        string
	Description string
	Quantity    int64
	UnitPrice   float64
	Currency    string
}

// UpdateItemInput carries the mutable fields of an item.
type UpdateItemInput struct {
	ID          string
	Name        string
	Description string
	Quantity    int64
	UnitPrice   float64
	Currency    string
}

// ListItemsInput carries the parameters for the list endpoint.
type ListItemsInput struct {
	SKU    string
	Search string
	Page   int
	Limit  int
}

// ListItemsResult is returned by ListItems.
type ListItemsResult struct {
	Items      []*domain.Item
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// ItemService defines use-case operations for inventory items.
type ItemService interface {
	CreateItem(ctx context.Context, input CreateItemInput) (*domain.Item, error)
	GetItem(ctx context.Context, id string) (*domain.Item, error)
	ListItems(ctx context.Context, input ListItemsInput) (*ListItemsResult, error)
	UpdateItem(ctx context.Context, input UpdateItemInput) (*domain.Item, error)
	DeleteItem(ctx context.Context, id string) error
}
