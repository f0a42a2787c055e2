package ports

import (
	"context"

	"github.com/snapshot/storefront/internal/core/domain"
)

// UserRepository defines persistence operations for storefront accounts.
// Lookups by a missing or malformed id return domain.ErrUserNotFound.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	// SetAdmin writes the admin flag and returns the updated user.
	SetAdmin(ctx context.Context, id string, isAdmin bool) (*domain.User, error)
	// Delete removes the user and returns the record as it was.
	Delete(ctx context.Context, id string) (*domain.User, error)
}
