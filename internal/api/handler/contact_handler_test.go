package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/snapshot/storefront/internal/core/domain"
	"github.com/snapshot/storefront/internal/core/ports"
)

func TestContactHandler_Create(t *testing.T) {
	e := echo.New()
	svc := &stubContactService{
		submitFn: func(ctx context.Context, input ports.ContactInput) (*domain.ContactMessage, error) {
			if input.Subject != "Hi" || input.Phone != "555" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.ContactMessage{ID: "c1", Subject: input.Subject}, nil
		},
	}
	h := NewContactHandler(svc)

	c, rec := newContext(e, http.MethodPost, "/api/contact",
		`{"name":"A","email":"a@x.io","phone":"555","subject":"Hi","message":"Hello"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp struct {
		Message string         `json:"message"`
		Contact map[string]any `json:"contact"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Message != "Message sent successfully" || resp.Contact["_id"] != "c1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestContactHandler_Create_ServiceError(t *testing.T) {
	e := echo.New()
	svc := &stubContactService{
		submitFn: func(ctx context.Context, input ports.ContactInput) (*domain.ContactMessage, error) {
			return nil, domain.Validation("All fields are required")
		},
	}
	h := NewContactHandler(svc)

	c, rec := newContext(e, http.MethodPost, "/api/contact", `{"name":"A"}`)
	if err := h.Create(c); domain.KindOf(err) != domain.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("handler must leave rendering to the error handler")
	}
}

func TestContactHandler_List(t *testing.T) {
	e := echo.New()
	svc := &stubContactService{
		listFn: func(ctx context.Context) ([]*domain.ContactMessage, error) {
			return []*domain.ContactMessage{{ID: "c1"}}, nil
		},
	}
	h := NewContactHandler(svc)

	c, rec := newContext(e, http.MethodGet, "/api/contact", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
