package domain

import "errors"

// Kind classifies a failure so the transport layer can pick a status code
// without inspecting messages.
type Kind uint8

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindAuthentication
	KindAuthorization
	KindNotFound
	KindPersistence
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindAuthentication:
		return "authentication"
	case KindAuthorization:
		return "authorization"
	case KindNotFound:
		return "not_found"
	case KindPersistence:
		return "persistence"
	default:
		return "internal"
	}
}

// Error is the tagged error returned by service operations.
//
// Message is safe to show to API clients. Detail carries a diagnostic string
// and is only rendered for order and contact creation failures.
type Error struct {
	Kind    Kind
	Message string
	Detail  string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Validation returns a KindValidation error with the given client message.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// Persistence wraps a storage failure under a client-safe message.
func Persistence(msg string, err error) *Error {
	return &Error{Kind: KindPersistence, Message: msg, Err: err}
}

// WithDetail returns a copy of e whose Detail is the cause's text.
func (e *Error) WithDetail() *Error {
	clone := *e
	if e.Err != nil {
		clone.Detail = e.Err.Error()
	}
	return &clone
}

// KindOf reports the kind of the first *Error in err's chain, or
// KindInternal when there is none.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

var (
	ErrUserNotFound       = &Error{Kind: KindNotFound, Message: "User not found"}
	ErrUserExists         = &Error{Kind: KindConflict, Message: "User already exists with this email"}
	ErrInvalidCredentials = &Error{Kind: KindAuthentication, Message: "Invalid credentials"}
	ErrNotAuthenticated   = &Error{Kind: KindAuthentication, Message: "User not authenticated"}
	ErrAdminRequired      = &Error{Kind: KindAuthorization, Message: "Access denied. Admin privileges required."}
	ErrProductNotFound    = &Error{Kind: KindNotFound, Message: "Product not found"}
	ErrEmptyCart          = &Error{Kind: KindValidation, Message: "Cart items are required"}
)
