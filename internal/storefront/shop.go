// Package storefront ties the client-side cart and session to the API
// client for the flows a front end drives: checkout, account access,
// the contact form and the admin panel.
package storefront

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/snapshot/storefront/internal/core/domain"
	"github.com/snapshot/storefront/internal/storefront/cart"
	"github.com/snapshot/storefront/internal/storefront/client"
	"github.com/snapshot/storefront/internal/storefront/session"
)

// ErrCartEmpty is returned by Checkout without contacting the API.
var ErrCartEmpty = domain.Validation("Your cart is empty.")

// API is the subset of *client.Client the shop uses.
type API interface {
	Signup(ctx context.Context, req client.SignupRequest) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
	ListUsers(ctx context.Context, callerID string) ([]*domain.User, error)
	ToggleAdmin(ctx context.Context, callerID, userID string) (*domain.User, error)
	DeleteUser(ctx context.Context, callerID, userID string) (*domain.User, error)
	ExportOrders(ctx context.Context, callerID string, w io.Writer) error
	ExportContacts(ctx context.Context, callerID string, w io.Writer) error
	PlaceOrder(ctx context.Context, req client.OrderRequest) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
	SendContact(ctx context.Context, req client.ContactRequest) (*domain.ContactMessage, error)
	Products(ctx context.Context) ([]domain.Product, error)
}

// Customer is the shipping and contact block entered at checkout.
type Customer struct {
	Name    string
	Email   string
	Address string
	Phone   string
}

type Shop struct {
	api     API
	session *session.Session
	cart    *cart.Cart
	log     zerolog.Logger
}

func NewShop(api API, sess *session.Session, c *cart.Cart, log zerolog.Logger) *Shop {
	if sess == nil {
		sess = session.New(nil)
	}
	if c == nil {
		c = cart.New()
	}
	return &Shop{api: api, session: sess, cart: c, log: log}
}

func (s *Shop) Cart() *cart.Cart          { return s.cart }
func (s *Shop) Session() *session.Session { return s.session }

// Products loads the catalog from the API.
func (s *Shop) Products(ctx context.Context) ([]domain.Product, error) {
	return s.api.Products(ctx)
}

func (s *Shop) AddToCart(p domain.Product) cart.Event {
	return s.cart.Add(p)
}

func (s *Shop) RemoveFromCart(p domain.Product) {
	s.cart.Remove(p)
}

func (s *Shop) ClearCart() {
	s.cart.Clear()
}

// Checkout submits the cart as an order. The cart is cleared only when the
// order is accepted.
func (s *Shop) Checkout(ctx context.Context, customer Customer) (*domain.Order, error) {
	if s.cart.Empty() {
		return nil, ErrCartEmpty
	}

	order, err := s.api.PlaceOrder(ctx, client.OrderRequest{
		Items:   s.cart.Snapshot(),
		Total:   s.cart.Total().InexactFloat64(),
		Name:    customer.Name,
		Email:   customer.Email,
		Address: customer.Address,
		Phone:   customer.Phone,
	})
	if err != nil {
		s.log.Warn().Err(err).Int("lines", s.cart.Len()).Msg("checkout failed")
		return nil, err
	}

	s.cart.Clear()
	s.log.Info().Str("order_id", order.ID).Msg("order placed")
	return order, nil
}

// Signup creates the account and stores it in the session.
func (s *Shop) Signup(ctx context.Context, req client.SignupRequest) (*domain.User, error) {
	user, err := s.api.Signup(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.session.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and stores the returned user in the session.
func (s *Shop) Login(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := s.session.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Shop) Logout() error {
	return s.session.Clear()
}

// MyOrders returns the orders placed with the logged-in user's email.
func (s *Shop) MyOrders(ctx context.Context) ([]*domain.Order, error) {
	user, err := s.session.User()
	if err != nil {
		return nil, err
	}
	if user == nil || !s.session.LoggedIn() {
		return nil, domain.ErrNotAuthenticated
	}

	orders, err := s.api.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	mine := make([]*domain.Order, 0, len(orders))
	for _, o := range orders {
		if o.Email == user.Email {
			mine = append(mine, o)
		}
	}
	return mine, nil
}

func (s *Shop) SendContact(ctx context.Context, req client.ContactRequest) (*domain.ContactMessage, error) {
	return s.api.SendContact(ctx, req)
}

// The admin helpers send the session user id as the caller; the server
// decides whether that user is an admin.

func (s *Shop) Users(ctx context.Context) ([]*domain.User, error) {
	return s.api.ListUsers(ctx, s.session.UserID())
}

func (s *Shop) ToggleAdmin(ctx context.Context, userID string) (*domain.User, error) {
	return s.api.ToggleAdmin(ctx, s.session.UserID(), userID)
}

func (s *Shop) DeleteUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.api.DeleteUser(ctx, s.session.UserID(), userID)
}

func (s *Shop) ExportOrders(ctx context.Context, w io.Writer) error {
	return s.api.ExportOrders(ctx, s.session.UserID(), w)
}

func (s *Shop) ExportContacts(ctx context.Context, w io.Writer) error {
	return s.api.ExportContacts(ctx, s.session.UserID(), w)
}
