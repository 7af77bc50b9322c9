package ports

import (
	"context"

	"github.com/stocktrack/inventory-api/internal/core/domain"
)

// AuthService authenticates credentials and issues tokens.
type AuthService interface {
	// Login verifies username/password and returns a signed token on success.
	// Unknown user and wrong password both yield domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, error)
	// Register creates a user with a hashed password. ADMIN-only at the
	// HTTP layer; the service validates the role against the closed set.
	Register(ctx context.Context, username, password string, role domain.Role) (*domain.User, error)
}
