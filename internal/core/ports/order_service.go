package ports

import (
	"context"

	"github.com/snapshot/storefront/internal/core/domain"
)

// PlaceOrderInput is the checkout payload passed from the transport layer.
// Total is a pointer so a missing value can be told apart from zero.
type PlaceOrderInput struct {
	Items   []domain.OrderItem
	Total   *float64
	Name    string
	Email   string
	Address string
	Phone   string
}

type OrderService interface {
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
}
