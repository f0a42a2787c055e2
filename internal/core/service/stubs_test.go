package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/snapshot/storefront/internal/core/domain"
)

var errStoreDown = errors.New("store unavailable")

type stubUserRepo struct {
	mu     sync.Mutex
	users  map[string]*domain.User
	nextID int
	err    error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) seed(u domain.User) *domain.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u.ID == "" {
		r.nextID++
		u.ID = fmt.Sprintf("u%d", r.nextID)
	}
	r.users[u.ID] = cloneUser(&u)
	return cloneUser(&u)
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	c := cloneUser(user)
	c.ID = fmt.Sprintf("u%d", r.nextID)
	r.users[c.ID] = c
	return cloneUser(c), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) SetAdmin(_ context.Context, id string, isAdmin bool) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.IsAdmin = isAdmin
	u.UpdatedAt = time.Now().UTC()
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	delete(r.users, id)
	return cloneUser(u), nil
}

type stubOrderRepo struct {
	orders []*domain.Order
	err    error
}

func (r *stubOrderRepo) Create(_ context.Context, order *domain.Order) error {
	if r.err != nil {
		return r.err
	}
	order.ID = fmt.Sprintf("o%d", len(r.orders)+1)
	c := *order
	r.orders = append(r.orders, &c)
	return nil
}

func (r *stubOrderRepo) List(_ context.Context) ([]*domain.Order, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*domain.Order, len(r.orders))
	for i := range r.orders {
		out[len(r.orders)-1-i] = r.orders[i]
	}
	return out, nil
}

type stubContactRepo struct {
	msgs []*domain.ContactMessage
	err  error
}

func (r *stubContactRepo) Create(_ context.Context, msg *domain.ContactMessage) error {
	if r.err != nil {
		return r.err
	}
	msg.ID = fmt.Sprintf("c%d", len(r.msgs)+1)
	c := *msg
	r.msgs = append(r.msgs, &c)
	return nil
}

func (r *stubContactRepo) List(_ context.Context) ([]*domain.ContactMessage, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.msgs, nil
}

type stubNotifier struct {
	queued []domain.ContactMessage
}

func (n *stubNotifier) Enqueue(msg domain.ContactMessage) {
	n.queued = append(n.queued, msg)
}

type stubExporter struct {
	orders   int
	contacts int
}

func (e *stubExporter) WriteOrders(w io.Writer, orders []*domain.Order) error {
	e.orders = len(orders)
	_, err := io.WriteString(w, "orders")
	return err
}

func (e *stubExporter) WriteContacts(w io.Writer, msgs []*domain.ContactMessage) error {
	e.contacts = len(msgs)
	_, err := io.WriteString(w, "contacts")
	return err
}
