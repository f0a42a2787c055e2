package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/snapshot/storefront/internal/core/domain"
	"github.com/snapshot/storefront/internal/core/ports"
)

// AuthService implements signup, login and the admin authorization check.
type AuthService struct {
	repo   ports.UserRepository
	hasher PasswordHasher
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher PasswordHasher, logger zerolog.Logger) *AuthService {
	if hasher == nil {
		hasher, _ = NewPasswordHasher(HasherBcrypt)
	}
	return &AuthService{repo: repo, hasher: hasher, logger: logger}
}

func (s *AuthService) Signup(ctx context.Context, name, email, password, phone string) (*domain.User, error) {
	if blank(name) || blank(email) || password == "" {
		return nil, domain.Validation("Please provide name, email, and password")
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, storageErr("Error creating user", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Phone:        phone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil, err
		}
		s.logger.Error().Err(err).Str("email", email).Msg("failed to create user")
		return nil, storageErr("Error creating user", err)
	}

	s.logger.Info().Str("email", email).Msg("user registered")
	return created.Sanitized(), nil
}

// Login verifies credentials. Unknown emails and wrong passwords produce the
// same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if blank(email) || password == "" {
		return nil, domain.Validation("Please provide email and password")
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, storageErr("Error logging in", err)
	}

	if !verifyPassword(user.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	s.logger.Info().Str("email", email).Msg("user logged in")
	return user.Sanitized(), nil
}

func (s *AuthService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	if blank(id) {
		return nil, domain.ErrUserNotFound
	}
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storageErr("Error loading user", err)
	}
	return user.Sanitized(), nil
}

// AuthorizeAdmin trusts callerID as supplied by the client and requires the
// matching account to carry the admin flag.
func (s *AuthService) AuthorizeAdmin(ctx context.Context, callerID string) (*domain.User, error) {
	if blank(callerID) {
		return nil, domain.ErrNotAuthenticated
	}

	user, err := s.repo.FindByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrAdminRequired
		}
		return nil, storageErr("Error verifying admin status", err)
	}
	if !user.IsAdmin {
		s.logger.Warn().Str("caller_id", callerID).Msg("admin access denied")
		return nil, domain.ErrAdminRequired
	}
	return user.Sanitized(), nil
}
