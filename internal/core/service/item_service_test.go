package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/stocktrack/inventory-api/internal/core/domain"
	"github.com/stocktrack/inventory-api/internal/core/ports"
)

type stubItemRepo struct {
	items      map[string]*domain.Item
	nextID     int
	lastFilter ports.ListItemsFilter
}

func newStubItemRepo() *stubItemRepo {
	return &stubItemRepo{items: make(map[string]*domain.Item)}
}

func (r *stubItemRepo) Create(_ context.Context, item *domain.Item) (*domain.Item, error) {
	for _, existing := range r.items {
		if existing.SKU == item.SKU {
			return nil, domain.ErrItemExists
		}
	}
	r.nextID++
	clone := *item
	clone.ID = strconv.Itoa(r.nextID)
	r.items[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubItemRepo) FindByID(_ context.Context, id string) (*domain.Item, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	clone := *item
	return &clone, nil
}

func (r *stubItemRepo) List(_ context.Context, filter ports.ListItemsFilter) ([]*domain.Item, int64, error) {
	r.lastFilter = filter
	out := make([]*domain.Item, 0, len(r.items))
	for _, item := range r.items {
		clone := *item
		out = append(out, &clone)
	}
	return out, int64(len(out)), nil
}

func (r *stubItemRepo) Update(_ context.Context, item *domain.Item) (*domain.Item, error) {
	if _, ok := r.items[item.ID]; !ok {
		return nil, domain.ErrItemNotFound
	}
	clone := *item
	r.items[item.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubItemRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrItemNotFound
	}
	delete(r.items, id)
	return nil
}

func TestItemService_CreateItem(t *testing.T) {
	repo := newStubItemRepo()
	svc := NewItemService(repo, zerolog.Nop())

	item, err := svc.CreateItem(context.Background(), ports.CreateItemInput{
		SKU:       "SKU-1",
		Name:      "Widget",
		Quantity:  5,
		UnitPrice: 9.99,
		Currency:  "USD",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if item.ID == "" {
		t.Fatalf("expected id to be assigned")
	}
	if item.CreatedAt.IsZero() || item.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be set")
	}
}

func TestItemService_CreateItem_NegativeQuantity(t *testing.T) {
	repo := newStubItemRepo()
	svc := NewItemService(repo, zerolog.Nop())

	if _, err := svc.CreateItem(context.Background(), ports.CreateItemInput{
		SKU: "SKU-1", Name: "Widget", Quantity: -1, UnitPrice: 1, Currency: "USD",
	}); !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestItemService_CreateItem_DuplicateSKU(t *testing.T) {
	repo := newStubItemRepo()
	svc := NewItemService(repo, zerolog.Nop())

	input := ports.CreateItemInput{SKU: "SKU-1", Name: "Widget", Quantity: 1, UnitPrice: 1, Currency: "USD"}
	if _, err := svc.CreateItem(context.Background(), input); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.CreateItem(context.Background(), input); !errors.Is(err, domain.ErrItemExists) {
		t.Fatalf("expected ErrItemExists, got %v", err)
	}
}

func TestItemService_ListItems_PagingDefaults(t *testing.T) {
	repo := newStubItemRepo()
	svc := NewItemService(repo, zerolog.Nop())

	if _, err := svc.ListItems(context.Background(), ports.ListItemsInput{Page: 0, Limit: 0}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if repo.lastFilter.Page != 1 || repo.lastFilter.Limit != defaultPageLimit {
		t.Fatalf("expected defaults, got page=%d limit=%d", repo.lastFilter.Page, repo.lastFilter.Limit)
	}

	if _, err := svc.ListItems(context.Background(), ports.ListItemsInput{Page: 2, Limit: 500}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if repo.lastFilter.Limit != maxPageLimit {
		t.Fatalf("expected limit capped at %d, got %d", maxPageLimit, repo.lastFilter.Limit)
	}
}

func TestItemService_UpdateItem_NotFound(t *testing.T) {
	repo := newStubItemRepo()
	svc := NewItemService(repo, zerolog.Nop())

	if _, err := svc.UpdateItem(context.Background(), ports.UpdateItemInput{
		ID: "missing", Name: "X", Quantity: 1, UnitPrice: 1, Currency: "USD",
	}); !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestItemService_DeleteItem(t *testing.T) {
	repo := newStubItemRepo()
	svc := NewItemService(repo, zerolog.Nop())

	item, err := svc.CreateItem(context.Background(), ports.CreateItemInput{
		SKU: "SKU-1", Name: "Widget", Quantity: 1, UnitPrice: 1, Currency: "USD",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.DeleteItem(context.Background(), item.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeleteItem(context.Background(), item.ID); !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}
