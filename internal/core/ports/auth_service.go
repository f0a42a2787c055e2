package ports

import (
	"context"

	"github.com/snapshot/storefront/internal/core/domain"
)

// AdminAuthorizer resolves a caller id to an admin account.
type AdminAuthorizer interface {
	AuthorizeAdmin(ctx context.Context, callerID string) (*domain.User, error)
}

type AuthService interface {
	AdminAuthorizer
	Signup(ctx context.Context, name, email, password, phone string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
}
