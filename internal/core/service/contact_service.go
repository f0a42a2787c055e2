package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/snapshot/storefront/internal/core/domain"
	"github.com/snapshot/storefront/internal/core/ports"
)

type ContactService struct {
	repo     ports.ContactRepository
	notifier ports.ContactNotifier
	logger   zerolog.Logger
}

// NewContactService returns a ContactService. notifier may be nil, in which
// case no notification is sent.
func NewContactService(repo ports.ContactRepository, notifier ports.ContactNotifier, logger zerolog.Logger) *ContactService {
	return &ContactService{repo: repo, notifier: notifier, logger: logger}
}

// Submit stores a contact message and queues a notification for it.
func (s *ContactService) Submit(ctx context.Context, input ports.ContactInput) (*domain.ContactMessage, error) {
	if blank(input.Name) || blank(input.Email) || blank(input.Phone) || blank(input.Subject) || blank(input.Message) {
		return nil, domain.Validation("All fields are required")
	}

	msg := &domain.ContactMessage{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Subject:   input.Subject,
		Message:   input.Message,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		s.logger.Error().Err(err).Str("email", input.Email).Msg("failed to store contact message")
		return nil, domain.Persistence("Failed to send message", err).WithDetail()
	}

	if s.notifier != nil {
		s.notifier.Enqueue(*msg)
	}

	s.logger.Info().Str("contact_id", msg.ID).Str("subject", msg.Subject).Msg("contact message received")
	return msg, nil
}

func (s *ContactService) List(ctx context.Context) ([]*domain.ContactMessage, error) {
	msgs, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list contact messages")
		return nil, storageErr("Failed to fetch messages", err)
	}
	return msgs, nil
}
