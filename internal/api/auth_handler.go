package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/booking-api/internal/api/middleware"
	"github.com/phrazzld/booking-api/internal/api/shared"
	"github.com/phrazzld/booking-api/internal/service"
	"github.com/phrazzld/booking-api/internal/service/auth"
)

// MsgInvalidRequestFormat is returned for bodies that are not valid JSON.
const MsgInvalidRequestFormat = "Invalid request format"

// AuthHandler serves the /api/user endpoints.
type AuthHandler struct {
	auth    service.AuthService
	cookies *auth.CookieManager
	logger  *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(authService service.AuthService, cookies *auth.CookieManager, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		auth:    authService,
		cookies: cookies,
		logger:  logger.With(slog.String("component", "auth_handler")),
	}
}

// Register handles POST /api/user/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequestFormat, err)
		return
	}

	result, err := h.auth.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	h.cookies.SetRefreshCookie(w, result.RefreshToken)
	shared.RespondWithData(w, r, http.StatusOK, AuthResponse{User: result.User, Token: result.AccessToken})
}

// Login handles POST /api/user/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequestFormat, err)
		return
	}

	result, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	h.cookies.SetRefreshCookie(w, result.RefreshToken)
	shared.RespondWithData(w, r, http.StatusOK, AuthResponse{User: result.User, Token: result.AccessToken})
}

// RefreshToken handles POST /api/user/refresh-token. The refresh token is
// read from the cookie and rotated on success.
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	result, err := h.auth.Refresh(r.Context(), h.cookies.RefreshToken(r))
	if err != nil {
		if errors.Is(err, service.ErrAccountGone) {
			h.cookies.ClearRefreshCookie(w)
		}
		HandleAPIError(w, r, err)
		return
	}

	h.cookies.SetRefreshCookie(w, result.RefreshToken)
	shared.RespondWithData(w, r, http.StatusOK, TokenResponse{Token: result.AccessToken})
}

// Logout handles POST /api/user/logout. It always succeeds.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.cookies.ClearRefreshCookie(w)
	h.auth.Logout(r.Context())
	shared.RespondWithData(w, r, http.StatusOK, "OK")
}

// Me handles GET /api/user/me. It must run behind the auth middleware.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithFailure(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.auth.Profile(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, user)
}
