// Package middleware provides the HTTP middleware of the booking API:
// bearer authentication, request tracing, metrics and panic recovery.
package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/booking-api/internal/api/shared"
	"github.com/phrazzld/booking-api/internal/platform/logger"
	"github.com/phrazzld/booking-api/internal/service/auth"
)

// Client messages for rejected bearer tokens.
const (
	MsgUnauthorized         = "Unauthorized"
	MsgTokenValidationError = "Token validation error"
	MsgTokenInvalid         = "Token is invalid"
)

// AuthMiddleware authenticates requests with an access token.
type AuthMiddleware struct {
	tokens auth.TokenService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(tokens auth.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Authenticate requires an "Authorization: Bearer <token>" header and puts
// the token subject's user id into the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			shared.RespondWithFailure(w, r, http.StatusUnauthorized, MsgUnauthorized)
			return
		}

		claims, ok := m.tokens.Verify(r.Context(), token)
		if !ok {
			shared.RespondWithFailure(w, r, http.StatusUnauthorized, MsgTokenValidationError)
			return
		}

		userID, err := uuid.Parse(claims.Data.ID())
		if err != nil {
			logger.FromContextOrDefault(r.Context(), nil).Debug("token subject has no usable id",
				slog.String("trace_id", shared.GetTraceID(r.Context())))
			shared.RespondWithFailure(w, r, http.StatusUnauthorized, MsgTokenInvalid)
			return
		}

		next.ServeHTTP(w, r.WithContext(shared.WithUserID(r.Context(), userID)))
	})
}

// bearerToken matches the scheme case-insensitively.
func bearerToken(r *http.Request) (string, bool) {
	scheme, token, found := strings.Cut(r.Header.Get("Authorization"), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}
	return token, true
}

// GetUserID extracts the authenticated user's id from the request context.
func GetUserID(r *http.Request) (uuid.UUID, bool) {
	return shared.UserIDFromContext(r.Context())
}
