package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/phrazzld/booking-api/internal/config"
	"github.com/phrazzld/booking-api/internal/platform/logger"
)

// MinSecretLength is the shortest accepted HMAC signing secret.
const MinSecretLength = 32

// hmacTokenService implements TokenService with HMAC-SHA256 signing.
type hmacTokenService struct {
	signingKey           []byte
	accessTokenLifetime  time.Duration
	refreshTokenLifetime time.Duration
	timeFunc             func() time.Time // injectable for tests
}

// tokenClaims is the wire shape of a token.
type tokenClaims struct {
	Data json.RawMessage `json:"data"`
	jwt.RegisteredClaims
}

var _ TokenService = (*hmacTokenService)(nil)

// NewTokenService creates an HMAC-SHA256 TokenService from auth configuration.
func NewTokenService(cfg config.AuthConfig) (TokenService, error) {
	return newHMACTokenService(cfg, time.Now)
}

func newHMACTokenService(cfg config.AuthConfig, timeFunc func() time.Time) (*hmacTokenService, error) {
	if len(cfg.JWTSecret) < MinSecretLength {
		return nil, ErrWeakSecret
	}
	return &hmacTokenService{
		signingKey:           []byte(cfg.JWTSecret),
		accessTokenLifetime:  time.Duration(cfg.AccessTokenLifetimeMinutes) * time.Minute,
		refreshTokenLifetime: time.Duration(cfg.RefreshTokenLifetimeMinutes) * time.Minute,
		timeFunc:             timeFunc,
	}, nil
}

// Issue implements TokenService.Issue.
func (s *hmacTokenService) Issue(ctx context.Context, subject any, ttl time.Duration) (string, error) {
	log := logger.FromContextOrDefault(ctx, nil)

	if ttl <= 0 {
		return "", ErrInvalidLifetime
	}

	data, err := json.Marshal(subject)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	if !bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		return "", ErrInvalidPayload
	}

	now := s.timeFunc()
	claims := tokenClaims{
		Data: data,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		log.Error("failed to sign token",
			slog.String("error", err.Error()),
			slog.String("signing_method", jwt.SigningMethodHS256.Name))
		return "", fmt.Errorf("failed to sign token with HMAC-SHA256: %w", err)
	}
	return signed, nil
}

// IssueAccessToken implements TokenService.IssueAccessToken.
func (s *hmacTokenService) IssueAccessToken(ctx context.Context, subject any) (string, error) {
	return s.Issue(ctx, subject, s.accessTokenLifetime)
}

// IssueRefreshToken implements TokenService.IssueRefreshToken.
func (s *hmacTokenService) IssueRefreshToken(ctx context.Context, subject any) (string, error) {
	return s.Issue(ctx, subject, s.refreshTokenLifetime)
}

// Verify implements TokenService.Verify.
func (s *hmacTokenService) Verify(ctx context.Context, tokenString string) (*Claims, bool) {
	log := logger.FromContextOrDefault(ctx, nil)

	if tokenString == "" {
		log.Debug("token verification failed: missing token")
		return nil, false
	}

	var claims tokenClaims
	token, err := jwt.ParseWithClaims(
		tokenString,
		&claims,
		func(token *jwt.Token) (interface{}, error) {
			return s.signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.timeFunc),
	)
	if err != nil {
		log.Debug("token verification failed",
			slog.String("reason", verifyFailureReason(err)),
			slog.String("error", err.Error()))
		return nil, false
	}
	if !token.Valid {
		log.Debug("token verification failed", slog.String("reason", "invalid"))
		return nil, false
	}

	var subject Subject
	if err := json.Unmarshal(claims.Data, &subject); err != nil || subject == nil {
		log.Debug("token verification failed", slog.String("reason", "payload is not an object"))
		return nil, false
	}

	result := &Claims{Data: subject}
	if claims.IssuedAt != nil {
		result.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		result.ExpiresAt = claims.ExpiresAt.Time
	}
	return result, true
}

func verifyFailureReason(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "expired"
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return "not yet valid"
	case errors.Is(err, jwt.ErrTokenMalformed):
		return "malformed"
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "invalid signature"
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		return "unverifiable"
	case errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return "missing claim"
	default:
		return "invalid"
	}
}
