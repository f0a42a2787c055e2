package ports

import (
	"context"
	"io"

	"github.com/snapshot/storefront/internal/core/domain"
)

// AdminService exposes user management. Every method authorizes callerID
// before touching data.
type AdminService interface {
	ListUsers(ctx context.Context, callerID string) ([]*domain.User, error)
	ToggleAdmin(ctx context.Context, callerID, userID string) (*domain.User, error)
	DeleteUser(ctx context.Context, callerID, userID string) (*domain.User, error)
	ExportOrders(ctx context.Context, callerID string, w io.Writer) error
	ExportContacts(ctx context.Context, callerID string, w io.Writer) error
}

// Exporter renders records into a downloadable workbook.
type Exporter interface {
	WriteOrders(w io.Writer, orders []*domain.Order) error
	WriteContacts(w io.Writer, msgs []*domain.ContactMessage) error
}
