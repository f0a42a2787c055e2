package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/snapshot/storefront/internal/core/domain"
	"github.com/snapshot/storefront/internal/core/ports"
)

func newValidatingEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestOrderHandler_Create_Success(t *testing.T) {
	e := newValidatingEcho()
	var got ports.PlaceOrderInput
	svc := &stubOrderService{
		placeFn: func(ctx context.Context, input ports.PlaceOrderInput) (*domain.Order, error) {
			got = input
			return &domain.Order{ID: "o1", Items: input.Items, Total: *input.Total, Email: input.Email}, nil
		},
	}
	h := NewOrderHandler(svc)

	body := `{"items":[{"productId":1,"name":"Polaroid Go","price":129.99,"quantity":2}],
		"total":259.98,"name":"A","email":"a@x.io","address":"1 Main","phone":"555"}`
	c, rec := newContext(e, http.MethodPost, "/api/orders", body)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if got.Total == nil || *got.Total != 259.98 {
		t.Fatalf("total not forwarded: %v", got.Total)
	}
	if len(got.Items) != 1 || got.Items[0].Quantity != 2 {
		t.Fatalf("items not forwarded: %+v", got.Items)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["_id"] != "o1" {
		t.Fatalf("expected order body, got %v", resp)
	}
}

func TestOrderHandler_Create_MissingTotalIsNil(t *testing.T) {
	e := newValidatingEcho()
	svc := &stubOrderService{
		placeFn: func(ctx context.Context, input ports.PlaceOrderInput) (*domain.Order, error) {
			if input.Total != nil {
				t.Fatalf("expected nil total when omitted")
			}
			return nil, domain.Validation("Order total is required")
		},
	}
	h := NewOrderHandler(svc)

	c, _ := newContext(e, http.MethodPost, "/api/orders",
		`{"items":[{"productId":1,"name":"x","price":1,"quantity":1}],"name":"A","email":"a","address":"b","phone":"c"}`)
	if err := h.Create(c); domain.KindOf(err) != domain.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestOrderHandler_Create_InvalidItem(t *testing.T) {
	e := newValidatingEcho()
	svc := &stubOrderService{
		placeFn: func(ctx context.Context, input ports.PlaceOrderInput) (*domain.Order, error) {
			t.Fatalf("service must not be called for invalid items")
			return nil, nil
		},
	}
	h := NewOrderHandler(svc)

	c, _ := newContext(e, http.MethodPost, "/api/orders",
		`{"items":[{"productId":1,"name":"x","price":1,"quantity":0}],"total":1,"name":"A","email":"a","address":"b","phone":"c"}`)
	err := h.Create(c)
	var de *domain.Error
	if !errors.As(err, &de) || de.Kind != domain.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if !strings.Contains(de.Message, "items[0]: quantity") {
		t.Fatalf("unexpected message: %q", de.Message)
	}
}

func TestOrderHandler_List(t *testing.T) {
	e := newValidatingEcho()
	svc := &stubOrderService{
		listFn: func(ctx context.Context) ([]*domain.Order, error) {
			return []*domain.Order{{ID: "o2"}, {ID: "o1"}}, nil
		},
	}
	h := NewOrderHandler(svc)

	c, rec := newContext(e, http.MethodGet, "/api/orders", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 || resp[0]["_id"] != "o2" {
		t.Fatalf("unexpected list: %v", resp)
	}
}
