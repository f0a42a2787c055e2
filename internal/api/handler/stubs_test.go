package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/snapshot/storefront/internal/core/domain"
	"github.com/snapshot/storefront/internal/core/ports"
)

type stubAuthService struct {
	signupFn    func(ctx context.Context, name, email, password, phone string) (*domain.User, error)
	loginFn     func(ctx context.Context, email, password string) (*domain.User, error)
	getUserFn   func(ctx context.Context, id string) (*domain.User, error)
	authorizeFn func(ctx context.Context, callerID string) (*domain.User, error)
}

func (s *stubAuthService) Signup(ctx context.Context, name, email, password, phone string) (*domain.User, error) {
	return s.signupFn(ctx, name, email, password, phone)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.getUserFn(ctx, id)
}

func (s *stubAuthService) AuthorizeAdmin(ctx context.Context, callerID string) (*domain.User, error) {
	return s.authorizeFn(ctx, callerID)
}

type stubAdminService struct {
	listFn           func(ctx context.Context, callerID string) ([]*domain.User, error)
	toggleFn         func(ctx context.Context, callerID, userID string) (*domain.User, error)
	deleteFn         func(ctx context.Context, callerID, userID string) (*domain.User, error)
	exportOrdersFn   func(ctx context.Context, callerID string, w io.Writer) error
	exportContactsFn func(ctx context.Context, callerID string, w io.Writer) error
}

func (s *stubAdminService) ListUsers(ctx context.Context, callerID string) ([]*domain.User, error) {
	return s.listFn(ctx, callerID)
}

func (s *stubAdminService) ToggleAdmin(ctx context.Context, callerID, userID string) (*domain.User, error) {
	return s.toggleFn(ctx, callerID, userID)
}

func (s *stubAdminService) DeleteUser(ctx context.Context, callerID, userID string) (*domain.User, error) {
	return s.deleteFn(ctx, callerID, userID)
}

func (s *stubAdminService) ExportOrders(ctx context.Context, callerID string, w io.Writer) error {
	return s.exportOrdersFn(ctx, callerID, w)
}

func (s *stubAdminService) ExportContacts(ctx context.Context, callerID string, w io.Writer) error {
	return s.exportContactsFn(ctx, callerID, w)
}

type stubOrderService struct {
	placeFn func(ctx context.Context, input ports.PlaceOrderInput) (*domain.Order, error)
	listFn  func(ctx context.Context) ([]*domain.Order, error)
}

func (s *stubOrderService) PlaceOrder(ctx context.Context, input ports.PlaceOrderInput) (*domain.Order, error) {
	return s.placeFn(ctx, input)
}

func (s *stubOrderService) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return s.listFn(ctx)
}

type stubContactService struct {
	submitFn func(ctx context.Context, input ports.ContactInput) (*domain.ContactMessage, error)
	listFn   func(ctx context.Context) ([]*domain.ContactMessage, error)
}

func (s *stubContactService) Submit(ctx context.Context, input ports.ContactInput) (*domain.ContactMessage, error) {
	return s.submitFn(ctx, input)
}

func (s *stubContactService) List(ctx context.Context) ([]*domain.ContactMessage, error) {
	return s.listFn(ctx)
}

func newContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}
