package auth

import (
	"net/http"
	"time"
)

// RefreshCookieMaxAge is how long browsers keep the refresh cookie.
const RefreshCookieMaxAge = 30 * 24 * time.Hour

// CookieManager reads and writes the refresh token cookie.
type CookieManager struct {
	name   string
	secure bool
}

// NewCookieManager creates a CookieManager for the cookie called name.
// secure should be true in production.
func NewCookieManager(name string, secure bool) *CookieManager {
	return &CookieManager{name: name, secure: secure}
}

// Name returns the cookie name.
func (m *CookieManager) Name() string {
	return m.name
}

// SetRefreshCookie stores token in an http-only, same-site-strict cookie.
func (m *CookieManager) SetRefreshCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(RefreshCookieMaxAge / time.Second),
		Expires:  time.Now().Add(RefreshCookieMaxAge),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// ClearRefreshCookie expires the refresh cookie on the client.
func (m *CookieManager) ClearRefreshCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// RefreshToken returns the refresh cookie value from r, or "".
func (m *CookieManager) RefreshToken(r *http.Request) string {
	c, err := r.Cookie(m.name)
	if err != nil {
		return ""
	}
	return c.Value
}
