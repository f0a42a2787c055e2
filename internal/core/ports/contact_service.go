package ports

import (
	"context"

	"github.com/snapshot/storefront/internal/core/domain"
)

// ContactInput carries a contact-form submission.
type ContactInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

type ContactService interface {
	Submit(ctx context.Context, input ContactInput) (*domain.ContactMessage, error)
	List(ctx context.Context) ([]*domain.ContactMessage, error)
}

// ContactNotifier hands a stored message to background delivery. It must not
// block the request.
type ContactNotifier interface {
	Enqueue(msg domain.ContactMessage)
}

// Mailer delivers a single contact notification.
type Mailer interface {
	SendContactNotification(ctx context.Context, msg domain.ContactMessage) error
}
