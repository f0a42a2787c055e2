package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/snapshot/storefront/internal/core/domain"
	"github.com/snapshot/storefront/internal/core/ports"
)

func floatPtr(f float64) *float64 { return &f }

func validOrderInput() ports.PlaceOrderInput {
	return ports.PlaceOrderInput{
		Items: []domain.OrderItem{
			{ProductID: 1, Name: "Canon EOS", Price: 650, Quantity: 2},
			{ProductID: 3, Name: "Nikon D850", Price: 1200.5, Quantity: 1},
		},
		Total:   floatPtr(2500.5),
		Name:    "Alice",
		Email:   "alice@example.com",
		Address: "1 Main St",
		Phone:   "555-0100",
	}
}

func TestOrderService_PlaceOrder_Success(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := NewOrderService(repo, zerolog.Nop())

	order, err := svc.PlaceOrder(context.Background(), validOrderInput())
	if err != nil {
		t.Fatalf("PlaceOrder returned error: %v", err)
	}
	if order.ID == "" {
		t.Fatalf("expected order id")
	}
	if order.Total != 2500.5 {
		t.Fatalf("expected submitted total, got %v", order.Total)
	}
	if len(order.Items) != 2 || order.Items[1].Name != "Nikon D850" {
		t.Fatalf("items not preserved: %+v", order.Items)
	}
	if order.CreatedAt.IsZero() {
		t.Fatalf("expected CreatedAt to be set")
	}
}

func TestOrderService_PlaceOrder_TrustsSubmittedTotal(t *testing.T) {
	svc := NewOrderService(&stubOrderRepo{}, zerolog.Nop())
	in := validOrderInput()
	in.Total = floatPtr(1)

	order, err := svc.PlaceOrder(context.Background(), in)
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if order.Total != 1 {
		t.Fatalf("expected total 1, got %v", order.Total)
	}
}

func TestOrderService_PlaceOrder_Validation(t *testing.T) {
	cases := map[string]func(*ports.PlaceOrderInput){
		"empty items":   func(in *ports.PlaceOrderInput) { in.Items = nil },
		"missing name":  func(in *ports.PlaceOrderInput) { in.Name = "" },
		"blank email":   func(in *ports.PlaceOrderInput) { in.Email = "  " },
		"no address":    func(in *ports.PlaceOrderInput) { in.Address = "" },
		"no phone":      func(in *ports.PlaceOrderInput) { in.Phone = "" },
		"no total":      func(in *ports.PlaceOrderInput) { in.Total = nil },
		"zero quantity": func(in *ports.PlaceOrderInput) { in.Items[0].Quantity = 0 },
		"negative price": func(in *ports.PlaceOrderInput) {
			in.Items[1].Price = -1
		},
		"missing product": func(in *ports.PlaceOrderInput) { in.Items[0].ProductID = 0 },
		"missing item name": func(in *ports.PlaceOrderInput) {
			in.Items[0].Name = ""
		},
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			repo := &stubOrderRepo{}
			svc := NewOrderService(repo, zerolog.Nop())
			in := validOrderInput()
			mutate(&in)

			_, err := svc.PlaceOrder(context.Background(), in)
			if domain.KindOf(err) != domain.KindValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
			if len(repo.orders) != 0 {
				t.Fatalf("invalid order must not be stored")
			}
		})
	}
}

func TestOrderService_PlaceOrder_EmptyCartMessage(t *testing.T) {
	svc := NewOrderService(&stubOrderRepo{}, zerolog.Nop())
	in := validOrderInput()
	in.Items = []domain.OrderItem{}

	_, err := svc.PlaceOrder(context.Background(), in)
	if !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestOrderService_PlaceOrder_StoreFailureCarriesDetail(t *testing.T) {
	svc := NewOrderService(&stubOrderRepo{err: errStoreDown}, zerolog.Nop())

	_, err := svc.PlaceOrder(context.Background(), validOrderInput())
	var de *domain.Error
	if !errors.As(err, &de) {
		t.Fatalf("expected *domain.Error, got %T", err)
	}
	if de.Kind != domain.KindPersistence || de.Message != "Failed to create order" {
		t.Fatalf("unexpected error: %+v", de)
	}
	if !strings.Contains(de.Detail, errStoreDown.Error()) {
		t.Fatalf("expected detail to carry cause, got %q", de.Detail)
	}
}

func TestOrderService_PlaceOrder_NotIdempotent(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := NewOrderService(repo, zerolog.Nop())

	for i := 0; i < 2; i++ {
		if _, err := svc.PlaceOrder(context.Background(), validOrderInput()); err != nil {
			t.Fatalf("PlaceOrder #%d: %v", i, err)
		}
	}
	if len(repo.orders) != 2 {
		t.Fatalf("expected two orders, got %d", len(repo.orders))
	}
}

func TestOrderService_ListOrders(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := NewOrderService(repo, zerolog.Nop())
	ctx := context.Background()

	first := validOrderInput()
	second := validOrderInput()
	second.Email = "bob@example.com"
	_, _ = svc.PlaceOrder(ctx, first)
	_, _ = svc.PlaceOrder(ctx, second)

	orders, err := svc.ListOrders(ctx)
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if len(orders) != 2 || orders[0].Email != "bob@example.com" {
		t.Fatalf("expected newest first, got %+v", orders)
	}

	repo.err = errStoreDown
	if _, err := svc.ListOrders(ctx); domain.KindOf(err) != domain.KindPersistence {
		t.Fatalf("expected persistence error, got %v", err)
	}
}
