// Package auth issues and verifies session tokens, manages the refresh
// token cookie and compares password hashes.
package auth

import (
	"context"
	"time"
)

// TokenService issues and verifies signed session tokens of the shape
// {"data": <subject>, "iat": ..., "exp": ...}.
//
// Tokens are stateless. There is no revocation list, so a token stays
// valid until it expires even after logout.
type TokenService interface {
	// Issue signs subject with the given lifetime. subject must marshal to
	// a JSON object; anything else yields ErrInvalidPayload.
	Issue(ctx context.Context, subject any, ttl time.Duration) (string, error)

	// IssueAccessToken issues a token with the configured access lifetime.
	IssueAccessToken(ctx context.Context, subject any) (string, error)

	// IssueRefreshToken issues a token with the configured refresh lifetime.
	IssueRefreshToken(ctx context.Context, subject any) (string, error)

	// Verify checks signature, algorithm and expiry. Any failure, including
	// an empty token, yields (nil, false); the reason is logged at debug.
	Verify(ctx context.Context, token string) (*Claims, bool)
}

// Subject is the decoded "data" object of a token.
type Subject map[string]any

// ID returns the subject's "id" field, or "" when absent or not a string.
func (s Subject) ID() string {
	id, _ := s["id"].(string)
	return id
}

// Claims is the verified content of a token.
type Claims struct {
	Data      Subject
	IssuedAt  time.Time
	ExpiresAt time.Time
}
