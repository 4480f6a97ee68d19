package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidPassword is returned when a password doesn't meet requirements.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrInvalidPrice is returned when a service price is not a positive integer.
	ErrInvalidPrice = errors.New("price must be a positive integer")

	// ErrEmptyName is returned when a required name is empty.
	ErrEmptyName = errors.New("name cannot be empty")
)

// Kind classifies a client-facing failure. Each kind maps to exactly one
// HTTP status code at the API boundary.
type Kind int

const (
	// KindUnknown is an unclassified failure, including store errors (500).
	KindUnknown Kind = iota
	// KindBadRequest is malformed or missing input (400).
	KindBadRequest
	// KindUnauthorized is missing credentials or token (401).
	KindUnauthorized
	// KindForbidden is an invalid token or a referenced account that is gone (403).
	KindForbidden
	// KindNotFound is a missing resource (404).
	KindNotFound
	// KindConflict is a uniqueness violation such as a taken email (409).
	KindConflict
)

// String returns the kind name used in logs.
func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// Error is a failure whose Message is safe to show to API clients.
// The wrapped Err carries internal detail and is only ever logged.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates an Error of the given kind.
func NewError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// BadRequest creates a KindBadRequest error.
func BadRequest(message string) *Error {
	return NewError(KindBadRequest, message, nil)
}

// Unauthorized creates a KindUnauthorized error.
func Unauthorized(message string) *Error {
	return NewError(KindUnauthorized, message, nil)
}

// Forbidden creates a KindForbidden error.
func Forbidden(message string) *Error {
	return NewError(KindForbidden, message, nil)
}

// NotFound creates a KindNotFound error.
func NotFound(message string) *Error {
	return NewError(KindNotFound, message, nil)
}

// Conflict creates a KindConflict error.
func Conflict(message string) *Error {
	return NewError(KindConflict, message, nil)
}

// Unknown wraps err as a KindUnknown error.
func Unknown(message string, err error) *Error {
	return NewError(KindUnknown, message, err)
}

// AsError extracts the first *Error in err's chain.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// KindOf returns the kind of err, or KindUnknown when err carries none.
func KindOf(err error) Kind {
	if de, ok := AsError(err); ok {
		return de.Kind
	}
	return KindUnknown
}
