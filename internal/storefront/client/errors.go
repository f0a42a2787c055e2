package client

import (
	"fmt"
	"net/http"

	"github.com/snapshot/storefront/internal/core/domain"
)

// APIError is a non-2xx response from the storefront API.
type APIError struct {
	Status  int
	Message string
	Details string
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("storefront api: %d %s (%s)", e.Status, e.Message, e.Details)
	}
	return fmt.Sprintf("storefront api: %d %s", e.Status, e.Message)
}

// Unwrap maps the response onto the domain error with the same kind and
// message, so callers can use errors.Is against domain sentinels.
func (e *APIError) Unwrap() error {
	kind := kindForStatus(e.Status, e.Message)
	for _, s := range sentinels {
		if s.Kind == kind && s.Message == e.Message {
			return s
		}
	}
	return &domain.Error{Kind: kind, Message: e.Message, Detail: e.Details}
}

// internalMessage is the body the server renders for untagged failures.
const internalMessage = "internal server error"

var sentinels = []*domain.Error{
	domain.ErrUserNotFound,
	domain.ErrUserExists,
	domain.ErrInvalidCredentials,
	domain.ErrNotAuthenticated,
	domain.ErrAdminRequired,
	domain.ErrProductNotFound,
	domain.ErrEmptyCart,
}

func kindForStatus(status int, message string) domain.Kind {
	switch status {
	case http.StatusBadRequest:
		if message == domain.ErrUserExists.Message {
			return domain.KindConflict
		}
		return domain.KindValidation
	case http.StatusUnauthorized:
		return domain.KindAuthentication
	case http.StatusForbidden:
		return domain.KindAuthorization
	case http.StatusNotFound:
		return domain.KindNotFound
	case http.StatusInternalServerError:
		if message == internalMessage {
			return domain.KindInternal
		}
		return domain.KindPersistence
	default:
		return domain.KindInternal
	}
}
