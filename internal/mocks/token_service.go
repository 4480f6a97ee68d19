package mocks

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/phrazzld/booking-api/internal/service/auth"
)

// MockTokenService implements auth.TokenService for testing.
//
// Without function fields, tokens are "access:<id>" or "refresh:<id>"
// where id is the subject's "id" field, and Verify accepts either form.
type MockTokenService struct {
	IssueFn             func(ctx context.Context, subject any, ttl time.Duration) (string, error)
	IssueAccessTokenFn  func(ctx context.Context, subject any) (string, error)
	IssueRefreshTokenFn func(ctx context.Context, subject any) (string, error)
	VerifyFn            func(ctx context.Context, token string) (*auth.Claims, bool)
}

var _ auth.TokenService = (*MockTokenService)(nil)

func subjectID(subject any) (string, error) {
	raw, err := json.Marshal(subject)
	if err != nil {
		return "", err
	}
	var s auth.Subject
	if err := json.Unmarshal(raw, &s); err != nil || s == nil {
		return "", auth.ErrInvalidPayload
	}
	return s.ID(), nil
}

// Issue implements auth.TokenService.
func (m *MockTokenService) Issue(ctx context.Context, subject any, ttl time.Duration) (string, error) {
	if m.IssueFn != nil {
		return m.IssueFn(ctx, subject, ttl)
	}
	id, err := subjectID(subject)
	if err != nil {
		return "", err
	}
	return "token:" + id, nil
}

// IssueAccessToken implements auth.TokenService.
func (m *MockTokenService) IssueAccessToken(ctx context.Context, subject any) (string, error) {
	if m.IssueAccessTokenFn != nil {
		return m.IssueAccessTokenFn(ctx, subject)
	}
	id, err := subjectID(subject)
	if err != nil {
		return "", err
	}
	return "access:" + id, nil
}

// IssueRefreshToken implements auth.TokenService.
func (m *MockTokenService) IssueRefreshToken(ctx context.Context, subject any) (string, error) {
	if m.IssueRefreshTokenFn != nil {
		return m.IssueRefreshTokenFn(ctx, subject)
	}
	id, err := subjectID(subject)
	if err != nil {
		return "", err
	}
	return "refresh:" + id, nil
}

// Verify implements auth.TokenService.
func (m *MockTokenService) Verify(ctx context.Context, token string) (*auth.Claims, bool) {
	if m.VerifyFn != nil {
		return m.VerifyFn(ctx, token)
	}
	for _, prefix := range []string{"access:", "refresh:", "token:"} {
		if id, ok := strings.CutPrefix(token, prefix); ok {
			return &auth.Claims{Data: auth.Subject{"id": id}}, true
		}
	}
	return nil, false
}
