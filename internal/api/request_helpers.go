package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/booking-api/internal/domain"
)

// MsgInvalidServiceID is returned for a path id that is not a UUID.
const MsgInvalidServiceID = "Invalid service id"

// canonicalUUIDLength is the length of the hyphenated 8-4-4-4-12 form.
const canonicalUUIDLength = 36

// getPathUUID parses the named chi path parameter as a UUID. Only the
// canonical hyphenated form is accepted.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	raw := chi.URLParam(r, paramName)
	if len(raw) != canonicalUUIDLength {
		return uuid.Nil, domain.BadRequest(MsgInvalidServiceID)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.NewError(domain.KindBadRequest, MsgInvalidServiceID, err)
	}
	return id, nil
}

// queryPositiveInt reads an optional positive integer query parameter.
// An absent parameter yields 0.
func queryPositiveInt(r *http.Request, name string, upper int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || (upper > 0 && n > upper) {
		msg := name + " must be a positive integer"
		if upper > 0 {
			msg += " no greater than " + strconv.Itoa(upper)
		}
		return 0, domain.NewError(domain.KindBadRequest, msg, err)
	}
	return n, nil
}
