package service

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/snapshot/storefront/internal/core/domain"
	"github.com/snapshot/storefront/internal/core/ports"
)

// AdminService implements user management on top of the admin
// authorization check. Admins may demote or delete themselves.
type AdminService struct {
	authz    ports.AdminAuthorizer
	users    ports.UserRepository
	orders   ports.OrderRepository
	contacts ports.ContactRepository
	exporter ports.Exporter
	logger   zerolog.Logger
}

func NewAdminService(
	authz ports.AdminAuthorizer,
	users ports.UserRepository,
	orders ports.OrderRepository,
	contacts ports.ContactRepository,
	exporter ports.Exporter,
	logger zerolog.Logger,
) *AdminService {
	return &AdminService{
		authz:    authz,
		users:    users,
		orders:   orders,
		contacts: contacts,
		exporter: exporter,
		logger:   logger,
	}
}

func (s *AdminService) ListUsers(ctx context.Context, callerID string) ([]*domain.User, error) {
	if _, err := s.authz.AuthorizeAdmin(ctx, callerID); err != nil {
		return nil, err
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, storageErr("Error loading users", err)
	}

	out := make([]*domain.User, len(users))
	for i, u := range users {
		out[i] = u.Sanitized()
	}
	s.logger.Info().Int("count", len(out)).Msg("users listed")
	return out, nil
}

// ToggleAdmin flips the target's admin flag. Concurrent toggles on the same
// user are not coordinated; the last write wins.
func (s *AdminService) ToggleAdmin(ctx context.Context, callerID, userID string) (*domain.User, error) {
	if _, err := s.authz.AuthorizeAdmin(ctx, callerID); err != nil {
		return nil, err
	}

	target, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, storageErr("Error loading user", err)
	}

	updated, err := s.users.SetAdmin(ctx, userID, !target.IsAdmin)
	if err != nil {
		return nil, storageErr("Error updating user", err)
	}

	s.logger.Info().
		Str("caller_id", callerID).
		Str("email", updated.Email).
		Bool("is_admin", updated.IsAdmin).
		Msg("admin status toggled")
	return updated.Sanitized(), nil
}

func (s *AdminService) DeleteUser(ctx context.Context, callerID, userID string) (*domain.User, error) {
	if _, err := s.authz.AuthorizeAdmin(ctx, callerID); err != nil {
		return nil, err
	}

	deleted, err := s.users.Delete(ctx, userID)
	if err != nil {
		return nil, storageErr("Error deleting user", err)
	}

	s.logger.Info().Str("caller_id", callerID).Str("email", deleted.Email).Msg("user deleted")
	return deleted.Sanitized(), nil
}

func (s *AdminService) ExportOrders(ctx context.Context, callerID string, w io.Writer) error {
	if _, err := s.authz.AuthorizeAdmin(ctx, callerID); err != nil {
		return err
	}

	orders, err := s.orders.List(ctx)
	if err != nil {
		return storageErr("Failed to fetch orders", err)
	}
	if err := s.exporter.WriteOrders(w, orders); err != nil {
		return fmt.Errorf("export orders: %w", err)
	}
	return nil
}

func (s *AdminService) ExportContacts(ctx context.Context, callerID string, w io.Writer) error {
	if _, err := s.authz.AuthorizeAdmin(ctx, callerID); err != nil {
		return err
	}

	msgs, err := s.contacts.List(ctx)
	if err != nil {
		return storageErr("Failed to fetch messages", err)
	}
	if err := s.exporter.WriteContacts(w, msgs); err != nil {
		return fmt.Errorf("export contacts: %w", err)
	}
	return nil
}
