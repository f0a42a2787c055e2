// Package session keeps the logged-in user on the client side and tells
// interested views when it changes.
package session

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/snapshot/storefront/internal/core/domain"
)

const (
	keyUser     = "user"
	keyLoggedIn = "isLoggedIn"
)

// Event is published after every Save and Clear. User is nil after Clear.
type Event struct {
	User     *domain.User
	LoggedIn bool
}

type Session struct {
	store Store

	mu     sync.Mutex
	subs   map[int]func(Event)
	nextID int
}

func New(store Store) *Session {
	if store == nil {
		store = NewMemoryStore()
	}
	return &Session{store: store, subs: make(map[int]func(Event))}
}

// User returns the stored user, or nil when nobody is logged in.
func (s *Session) User() (*domain.User, error) {
	raw, ok, err := s.store.Get(keyUser)
	if err != nil || !ok || raw == "" {
		return nil, err
	}
	var u domain.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return nil, fmt.Errorf("session: decode user: %w", err)
	}
	return &u, nil
}

// LoggedIn reports whether the login flag is set.
func (s *Session) LoggedIn() bool {
	v, ok, err := s.store.Get(keyLoggedIn)
	return err == nil && ok && v == "true"
}

// IsAdmin reports whether a logged-in user with the admin flag is stored.
func (s *Session) IsAdmin() bool {
	if !s.LoggedIn() {
		return false
	}
	u, err := s.User()
	return err == nil && u != nil && u.IsAdmin
}

// UserID returns the stored user's id or "".
func (s *Session) UserID() string {
	u, err := s.User()
	if err != nil || u == nil {
		return ""
	}
	return u.ID
}

// Save stores u as the logged-in user.
func (s *Session) Save(u *domain.User) error {
	if u == nil {
		return s.Clear()
	}
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("session: encode user: %w", err)
	}
	if err := s.store.Set(keyUser, string(raw)); err != nil {
		return err
	}
	if err := s.store.Set(keyLoggedIn, "true"); err != nil {
		return err
	}
	clone := *u
	s.publish(Event{User: &clone, LoggedIn: true})
	return nil
}

// Clear logs the user out.
func (s *Session) Clear() error {
	if err := s.store.Delete(keyUser, keyLoggedIn); err != nil {
		return err
	}
	s.publish(Event{})
	return nil
}

// Subscribe registers fn for change events and returns a function that
// removes it.
func (s *Session) Subscribe(fn func(Event)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

func (s *Session) publish(ev Event) {
	s.mu.Lock()
	fns := make([]func(Event), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}
