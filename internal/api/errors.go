package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/booking-api/internal/api/shared"
	"github.com/phrazzld/booking-api/internal/domain"
	"github.com/phrazzld/booking-api/internal/store"
)

// GenericErrorMessage is the client message for any unclassified failure.
const GenericErrorMessage = "An unexpected error occurred"

// MapErrorToStatusCode maps an error to the HTTP status of its envelope.
// Classified *domain.Error values map by kind; store sentinels that escaped
// classification map conservatively; everything else is a 500.
func MapErrorToStatusCode(err error) int {
	if de, ok := domain.AsError(err); ok {
		return statusForKind(de.Kind)
	}

	switch {
	case store.IsNotFoundError(err):
		return http.StatusNotFound
	case store.IsDuplicateError(err):
		return http.StatusConflict
	case errors.Is(err, store.ErrInvalidEntity), errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func statusForKind(kind domain.Kind) int {
	switch kind {
	case domain.KindBadRequest:
		return http.StatusBadRequest
	case domain.KindUnauthorized:
		return http.StatusUnauthorized
	case domain.KindForbidden:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the client message for err. Only messages of
// classified client errors are passed through; raw error text never is.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return GenericErrorMessage
	}

	if de, ok := domain.AsError(err); ok {
		if de.Kind == domain.KindUnknown || de.Message == "" {
			return GenericErrorMessage
		}
		return de.Message
	}

	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, store.ErrServiceNotFound):
		return "Service not found"
	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"
	case errors.Is(err, store.ErrInvalidEntity), errors.Is(err, domain.ErrValidation):
		return "Invalid entity data"
	default:
		return GenericErrorMessage
	}
}

// HandleAPIError writes the failure envelope for err and logs it.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
