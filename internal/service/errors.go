package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/booking-api/internal/domain"
)

var (
	// ErrAccountGone marks a refresh attempt whose token names a user that
	// no longer exists. The HTTP layer clears the refresh cookie on it.
	ErrAccountGone = errors.New("account no longer exists")

	// ErrNilDependency is returned by constructors given a nil dependency.
	ErrNilDependency = errors.New("dependency cannot be nil")
)

func nilDependency(name string) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrValidation, name, ErrNilDependency)
}
