package auth

import "errors"

var (
	// ErrInvalidPayload is returned by Issue when the subject does not
	// serialize to a JSON object.
	ErrInvalidPayload = errors.New("token payload must be a non-null object")

	// ErrInvalidLifetime is returned by Issue for a non-positive lifetime.
	ErrInvalidLifetime = errors.New("token lifetime must be positive")

	// ErrWeakSecret is returned when the signing secret is too short.
	ErrWeakSecret = errors.New("jwt secret must be at least 32 characters")
)
