package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		notFound  bool
		duplicate bool
	}{
		{name: "nil", err: nil},
		{name: "plain", err: errors.New("some error")},
		{name: "ErrNotFound", err: ErrNotFound, notFound: true},
		{name: "ErrUserNotFound", err: ErrUserNotFound, notFound: true},
		{name: "wrapped ErrServiceNotFound", err: fmt.Errorf("get: %w", ErrServiceNotFound), notFound: true},
		{name: "ErrDuplicate", err: ErrDuplicate, duplicate: true},
		{name: "ErrEmailExists", err: ErrEmailExists, duplicate: true},
		{
			name:      "store error wrapping ErrEmailExists",
			err:       NewStoreError("user", "create", "email taken", ErrEmailExists),
			duplicate: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.notFound, IsNotFoundError(tt.err))
			assert.Equal(t, tt.duplicate, IsDuplicateError(tt.err))
		})
	}
}

func TestStoreErrorMessage(t *testing.T) {
	withCause := NewStoreError("appointment_service", "list", "query failed", errors.New("timeout"))
	assert.Equal(t, "list operation on appointment_service failed: query failed: timeout", withCause.Error())
	assert.EqualError(t, NewStoreError("user", "create", "bad input", nil),
		"create operation on user failed: bad input")

	var se *StoreError
	assert.True(t, errors.As(fmt.Errorf("outer: %w", withCause), &se))
	assert.Equal(t, "list", se.Operation)
}
