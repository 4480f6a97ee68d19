package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/booking-api/internal/domain"
	"github.com/phrazzld/booking-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"bad request", domain.BadRequest("x"), http.StatusBadRequest},
		{"unauthorized", domain.Unauthorized("x"), http.StatusUnauthorized},
		{"forbidden", domain.Forbidden("x"), http.StatusForbidden},
		{"not found", domain.NotFound("x"), http.StatusNotFound},
		{"conflict", domain.Conflict("x"), http.StatusConflict},
		{"unknown", domain.Unknown("x", errors.New("db")), http.StatusInternalServerError},
		{"wrapped domain error", fmt.Errorf("ctx: %w", domain.NotFound("x")), http.StatusNotFound},
		{"store not found", store.ErrServiceNotFound, http.StatusNotFound},
		{"store duplicate", store.ErrEmailExists, http.StatusConflict},
		{"store invalid", store.ErrInvalidEntity, http.StatusBadRequest},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	assert.Equal(t, GenericErrorMessage, GetSafeErrorMessage(nil))
	assert.Equal(t, "Service not found", GetSafeErrorMessage(domain.NotFound("Service not found")))
	assert.Equal(t, "Email already exists", GetSafeErrorMessage(store.ErrEmailExists))

	leaky := errors.New(`pq: relation "users" does not exist at /srv/app/db.go`)
	assert.Equal(t, GenericErrorMessage, GetSafeErrorMessage(leaky))
	assert.Equal(t, GenericErrorMessage, GetSafeErrorMessage(domain.Unknown("Failed to list service", leaky)))
}
