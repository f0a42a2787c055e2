package ports

import (
	"context"

	"github.com/snapshot/storefront/internal/core/domain"
)

// OrderRepository persists checkout snapshots. Create fills in the ID and
// timestamps of the given order.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	// List returns every order, newest first.
	List(ctx context.Context) ([]*domain.Order, error)
}
