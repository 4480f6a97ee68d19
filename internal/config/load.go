package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every namespaced environment variable,
// e.g. BOOKING_SERVER_PORT for server.port.
const EnvPrefix = "BOOKING"

// DefaultDevelopmentJWTSecret signs tokens when no secret is configured
// outside production. Load refuses to use it in production.
const DefaultDevelopmentJWTSecret = "development-only-jwt-secret-change-me-now"

// ErrMissingJWTSecret is returned when production runs without a signing secret.
var ErrMissingJWTSecret = errors.New("auth.jwt_secret must be set in production")

// envBindings maps config keys to the environment variables that can set
// them, in precedence order. The unprefixed names are the ones deployments
// of this service have always used.
var envBindings = []struct {
	key  string
	envs []string
}{
	{"server.port", []string{"BOOKING_SERVER_PORT", "PORT"}},
	{"server.log_level", []string{"BOOKING_SERVER_LOG_LEVEL", "LOG_LEVEL"}},
	{"server.environment", []string{"BOOKING_SERVER_ENVIRONMENT", "APP_ENV", "NODE_ENV"}},
	{"server.shutdown_timeout_seconds", []string{"BOOKING_SERVER_SHUTDOWN_TIMEOUT_SECONDS"}},
	{"server.cors_allowed_origins", []string{"BOOKING_SERVER_CORS_ALLOWED_ORIGINS", "CORS_ORIGIN"}},
	{"database.url", []string{"BOOKING_DATABASE_URL", "DATABASE_URL"}},
	{"database.max_open_conns", []string{"BOOKING_DATABASE_MAX_OPEN_CONNS"}},
	{"database.max_idle_conns", []string{"BOOKING_DATABASE_MAX_IDLE_CONNS"}},
	{"database.conn_max_lifetime_minutes", []string{"BOOKING_DATABASE_CONN_MAX_LIFETIME_MINUTES"}},
	{"auth.jwt_secret", []string{"BOOKING_AUTH_JWT_SECRET", "JWT_SECRET"}},
	{"auth.access_token_lifetime_minutes", []string{"BOOKING_AUTH_ACCESS_TOKEN_LIFETIME_MINUTES"}},
	{"auth.refresh_token_lifetime_minutes", []string{"BOOKING_AUTH_REFRESH_TOKEN_LIFETIME_MINUTES"}},
	{"auth.refresh_cookie_name", []string{"BOOKING_AUTH_REFRESH_COOKIE_NAME", "REFRESH_TOKEN_NAME"}},
	{"auth.bcrypt_cost", []string{"BOOKING_AUTH_BCRYPT_COST"}},
	{"services.require_auth_on_create", []string{"BOOKING_SERVICES_REQUIRE_AUTH_ON_CREATE"}},
	{"services.list_include_removed", []string{"BOOKING_SERVICES_LIST_INCLUDE_REMOVED"}},
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 4000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.environment", EnvDevelopment)
	v.SetDefault("server.shutdown_timeout_seconds", 10)
	v.SetDefault("server.cors_allowed_origins", []string{"*"})

	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime_minutes", 5)

	v.SetDefault("auth.access_token_lifetime_minutes", 30)
	v.SetDefault("auth.refresh_token_lifetime_minutes", 30*24*60)
	v.SetDefault("auth.refresh_cookie_name", "refresh_token")
	v.SetDefault("auth.bcrypt_cost", 10)

	v.SetDefault("services.require_auth_on_create", false)
	v.SetDefault("services.list_include_removed", true)
}

// Load configuration from environment variables, a .env file in the working
// directory and an optional config.yaml in the working directory.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return LoadWithFile("")
}

// LoadWithFile behaves like Load but reads the YAML file at configPath
// instead of looking for config.yaml. A missing explicit file is an error.
func LoadWithFile(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, b := range envBindings {
		args := append([]string{b.key}, b.envs...)
		if err := v.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("error binding environment variables for %s: %w", b.key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if cfg.Auth.JWTSecret == "" {
		if cfg.Server.IsProduction() {
			return nil, ErrMissingJWTSecret
		}
		cfg.Auth.JWTSecret = DefaultDevelopmentJWTSecret
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks struct tags and cross-field rules.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	if c.Server.IsProduction() && c.Auth.JWTSecret == DefaultDevelopmentJWTSecret {
		return fmt.Errorf("configuration validation failed: %w", ErrMissingJWTSecret)
	}
	if c.Database.MaxOpenConns > 0 && c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		return fmt.Errorf("configuration validation failed: max_idle_conns (%d) exceeds max_open_conns (%d)",
			c.Database.MaxIdleConns, c.Database.MaxOpenConns)
	}
	return nil
}
