package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/booking-api/internal/domain"
	"github.com/phrazzld/booking-api/internal/platform/logger"
	"github.com/phrazzld/booking-api/internal/platform/metrics"
	"github.com/phrazzld/booking-api/internal/service/auth"
	"github.com/phrazzld/booking-api/internal/store"
	"golang.org/x/crypto/bcrypt"
)

// Client-facing auth messages.
const (
	MsgRegisterFieldsRequired = "Name, email, and password are required."
	MsgLoginFieldsRequired    = "email and password are required."
	MsgPasswordTooLong        = "Password must be at most 72 bytes long."
	MsgEmailExists            = "Email already exists"
	MsgInvalidCredentials     = "Invalid email or password"
	MsgRefreshTokenMissing    = "Refresh token doesn't exist"
	MsgInvalidRefreshToken    = "Invalid refresh token"
	MsgAccountGone            = "Account no longer exists."
	MsgUserNotFound           = "User not found"
)

// maxPasswordBytes is the longest input bcrypt hashes.
const maxPasswordBytes = 72

// AuthResult is the outcome of a successful register, login or refresh.
// RefreshToken belongs in the refresh cookie, never in a response body.
type AuthResult struct {
	User         *domain.User
	AccessToken  string
	RefreshToken string
}

// AuthService provides account and session operations.
type AuthService interface {
	// Register creates an account and opens a session for it.
	Register(ctx context.Context, email, password, name string) (*AuthResult, error)

	// Login checks credentials and opens a session. Unknown emails and wrong
	// passwords fail identically.
	Login(ctx context.Context, email, password string) (*AuthResult, error)

	// Refresh exchanges a refresh token for a new access token and a rotated
	// refresh token. If the account is gone the error wraps ErrAccountGone.
	Refresh(ctx context.Context, refreshToken string) (*AuthResult, error)

	// Logout records the end of a session. Tokens are stateless, so
	// outstanding tokens remain valid until they expire.
	Logout(ctx context.Context)

	// Profile returns the user with the given id without password fields.
	Profile(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

type authServiceImpl struct {
	users     store.UserStore
	tokens    auth.TokenService
	passwords auth.PasswordVerifier
	metrics   metrics.Recorder
	logger    *slog.Logger
}

// NewAuthService creates an AuthService. recorder and logger may be nil.
func NewAuthService(
	users store.UserStore,
	tokens auth.TokenService,
	passwords auth.PasswordVerifier,
	recorder metrics.Recorder,
	logger *slog.Logger,
) (AuthService, error) {
	if users == nil {
		return nil, nilDependency("users")
	}
	if tokens == nil {
		return nil, nilDependency("tokens")
	}
	if passwords == nil {
		return nil, nilDependency("passwords")
	}
	if recorder == nil {
		recorder = metrics.Noop{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &authServiceImpl{
		users:     users,
		tokens:    tokens,
		passwords: passwords,
		metrics:   recorder,
		logger:    logger.With(slog.String("component", "auth_service")),
	}, nil
}

// Register implements AuthService.Register.
func (s *authServiceImpl) Register(ctx context.Context, email, password, name string) (*AuthResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.register(ctx, log, email, password, name)
	s.recordOutcome(metrics.AuthActionRegister, err)
	return result, err
}

func (s *authServiceImpl) register(
	ctx context.Context,
	log *slog.Logger,
	email, password, name string,
) (*AuthResult, error) {
	if email == "" || password == "" || name == "" {
		return nil, domain.BadRequest(MsgRegisterFieldsRequired)
	}
	if !domain.ValidatePassword(password) {
		return nil, domain.BadRequest(domain.PasswordPolicyMessage)
	}
	if len(password) > maxPasswordBytes {
		return nil, domain.BadRequest(MsgPasswordTooLong)
	}

	user := domain.NewUser(email, password, name)
	if err := s.users.Create(ctx, user); err != nil {
		switch {
		case errors.Is(err, store.ErrEmailExists):
			log.Debug("registration rejected: email exists")
			return nil, domain.NewError(domain.KindConflict, MsgEmailExists, err)
		case errors.Is(err, bcrypt.ErrPasswordTooLong):
			return nil, domain.NewError(domain.KindBadRequest, MsgPasswordTooLong, err)
		default:
			log.Error("failed to create user", slog.String("error", err.Error()))
			return nil, domain.Unknown("Failed to create user", err)
		}
	}

	log.Info("user registered", slog.String("user_id", user.ID.String()))
	return s.openSession(ctx, log, user)
}

// Login implements AuthService.Login.
func (s *authServiceImpl) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.login(ctx, log, email, password)
	s.recordOutcome(metrics.AuthActionLogin, err)
	return result, err
}

func (s *authServiceImpl) login(ctx context.Context, log *slog.Logger, email, password string) (*AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.BadRequest(MsgLoginFieldsRequired)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("login rejected: unknown email")
			return nil, domain.NewError(domain.KindNotFound, MsgInvalidCredentials, err)
		}
		log.Error("failed to look up user for login", slog.String("error", err.Error()))
		return nil, domain.Unknown("Failed to log in", err)
	}

	if err := s.passwords.Compare(user.HashedPassword, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			log.Debug("login rejected: password mismatch", slog.String("user_id", user.ID.String()))
			return nil, domain.NewError(domain.KindNotFound, MsgInvalidCredentials, err)
		}
		log.Error("failed to compare password hash",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return nil, domain.Unknown("Failed to log in", err)
	}

	log.Info("user logged in", slog.String("user_id", user.ID.String()))
	return s.openSession(ctx, log, user)
}

// Refresh implements AuthService.Refresh.
func (s *authServiceImpl) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.refresh(ctx, log, refreshToken)
	s.recordOutcome(metrics.AuthActionRefresh, err)
	return result, err
}

func (s *authServiceImpl) refresh(ctx context.Context, log *slog.Logger, refreshToken string) (*AuthResult, error) {
	if refreshToken == "" {
		return nil, domain.Unauthorized(MsgRefreshTokenMissing)
	}

	claims, ok := s.tokens.Verify(ctx, refreshToken)
	if !ok || claims.Data.ID() == "" {
		return nil, domain.Forbidden(MsgInvalidRefreshToken)
	}
	userID, err := uuid.Parse(claims.Data.ID())
	if err != nil {
		log.Debug("refresh token subject is not a uuid")
		return nil, domain.NewError(domain.KindForbidden, MsgInvalidRefreshToken, err)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Info("refresh for deleted account", slog.String("user_id", userID.String()))
			return nil, domain.NewError(domain.KindForbidden, MsgAccountGone, ErrAccountGone)
		}
		log.Error("failed to look up user for refresh",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, domain.Unknown("Failed to refresh token", err)
	}

	return s.openSession(ctx, log, user)
}

// Logout implements AuthService.Logout.
func (s *authServiceImpl) Logout(ctx context.Context) {
	logger.FromContextOrDefault(ctx, s.logger).Debug("session cookie cleared")
	s.metrics.RecordAuthEvent(metrics.AuthActionLogout, metrics.OutcomeSuccess)
}

// Profile implements AuthService.Profile.
func (s *authServiceImpl) Profile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, domain.NewError(domain.KindNotFound, MsgUserNotFound, err)
		}
		log.Error("failed to load profile",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, domain.Unknown("Failed to load user", err)
	}
	return user.Sanitized(), nil
}

// openSession issues a refresh and an access token for user.
func (s *authServiceImpl) openSession(ctx context.Context, log *slog.Logger, user *domain.User) (*AuthResult, error) {
	subject := user.Sanitized()

	refreshToken, err := s.tokens.IssueRefreshToken(ctx, subject)
	if err != nil {
		log.Error("failed to issue refresh token", slog.String("error", err.Error()))
		return nil, domain.Unknown("Failed to generate token", err)
	}
	accessToken, err := s.tokens.IssueAccessToken(ctx, subject)
	if err != nil {
		log.Error("failed to issue access token", slog.String("error", err.Error()))
		return nil, domain.Unknown("Failed to generate token", err)
	}

	return &AuthResult{
		User:         subject,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *authServiceImpl) recordOutcome(action string, err error) {
	outcome := metrics.OutcomeSuccess
	if err != nil {
		outcome = metrics.OutcomeRejected
		if domain.KindOf(err) == domain.KindUnknown {
			outcome = metrics.OutcomeError
		}
	}
	s.metrics.RecordAuthEvent(action, outcome)
}
