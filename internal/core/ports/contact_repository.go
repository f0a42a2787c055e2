package ports

import (
	"context"

	"github.com/snapshot/storefront/internal/core/domain"
)

// ContactRepository persists contact-form submissions.
type ContactRepository interface {
	Create(ctx context.Context, msg *domain.ContactMessage) error
	List(ctx context.Context) ([]*domain.ContactMessage, error)
}
