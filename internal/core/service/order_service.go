package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/snapshot/storefront/internal/core/domain"
	"github.com/snapshot/storefront/internal/core/ports"
)

type OrderService struct {
	repo   ports.OrderRepository
	logger zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, logger: logger}
}

// PlaceOrder validates a cart snapshot and persists it as a new order. The
// submitted total is stored without being checked against the items.
// Repeated submissions create repeated orders.
func (s *OrderService) PlaceOrder(ctx context.Context, input ports.PlaceOrderInput) (*domain.Order, error) {
	if err := validateOrder(input); err != nil {
		return nil, err
	}

	items := make([]domain.OrderItem, len(input.Items))
	copy(items, input.Items)

	now := time.Now().UTC()
	order := &domain.Order{
		Items:     items,
		Total:     *input.Total,
		Name:      input.Name,
		Email:     input.Email,
		Address:   input.Address,
		Phone:     input.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		s.logger.Error().Err(err).Str("email", input.Email).Msg("failed to create order")
		return nil, domain.Persistence("Failed to create order", err).WithDetail()
	}

	s.logger.Info().
		Str("order_id", order.ID).
		Int("items", len(order.Items)).
		Float64("total", order.Total).
		Msg("order placed")

	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list orders")
		return nil, storageErr("Failed to fetch orders", err)
	}
	return orders, nil
}

func validateOrder(in ports.PlaceOrderInput) error {
	if len(in.Items) == 0 {
		return domain.ErrEmptyCart
	}

	for i, it := range in.Items {
		switch {
		case it.ProductID <= 0:
			return domain.Validation(fmt.Sprintf("items[%d]: productId is required", i))
		case blank(it.Name):
			return domain.Validation(fmt.Sprintf("items[%d]: name is required", i))
		case it.Price < 0:
			return domain.Validation(fmt.Sprintf("items[%d]: price must not be negative", i))
		case it.Quantity < 1:
			return domain.Validation(fmt.Sprintf("items[%d]: quantity must be at least 1", i))
		}
	}

	if blank(in.Name) || blank(in.Email) || blank(in.Address) || blank(in.Phone) {
		return domain.Validation("Please provide name, email, address, and phone")
	}
	if in.Total == nil {
		return domain.Validation("Order total is required")
	}
	return nil
}
