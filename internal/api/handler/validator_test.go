package handler

import (
	"testing"

	"github.com/snapshot/storefront/internal/core/domain"
)

func TestValidator_NestedFieldMessages(t *testing.T) {
	v := NewValidator()

	req := createOrderRequest{
		Items: []orderItemRequest{
			{ProductID: 1, Name: "ok", Price: 1, Quantity: 1},
			{ProductID: 0, Name: "bad", Price: -1, Quantity: 1},
		},
	}
	err := v.Validate(&req)
	if domain.KindOf(err) != domain.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	msg := err.(*domain.Error).Message
	want := "items[1]: productId must be greater than 0; items[1]: price must not be negative"
	if msg != want {
		t.Fatalf("message = %q, want %q", msg, want)
	}
}

func TestValidator_EmptyItemsPass(t *testing.T) {
	if err := NewValidator().Validate(&createOrderRequest{}); err != nil {
		t.Fatalf("empty items are left to the service, got %v", err)
	}
}
