package ports

import (
	"context"

	"github.com/stocktrack/inventory-api/internal/core/domain"
)

// UserRepository is the identity store boundary. The store owns username
// uniqueness and the persisted password hash.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
