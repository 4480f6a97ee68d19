package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/phrazzld/booking-api/internal/config"
	"github.com/phrazzld/booking-api/internal/platform/logger"
	"github.com/phrazzld/booking-api/internal/platform/postgres"
)

// configFile is the --config flag shared by every subcommand.
var configFile string

// NewRootCmd creates the root command of the booking server CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "booking-api",
		Short: "Booking API server",
		Long: `Booking API serves account management and the appointment
service catalog of a booking application over HTTP.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (YAML)")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMigrateCmd())
	cmd.AddCommand(NewSeedCmd())

	return cmd
}

// bootstrap loads configuration and installs the structured logger.
func bootstrap() (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadWithFile(configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("environment", cfg.Server.Environment))
	return cfg, log, nil
}

// openDatabase opens the pool described by cfg.Database.
func openDatabase(ctx context.Context, cfg *config.Config, log *slog.Logger) (*sql.DB, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	db, err := postgres.Open(ctx, cfg.Database.URL, postgres.PoolConfig{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetimeMinutes) * time.Minute,
	})
	if err != nil {
		return nil, err
	}

	log.Info("database connection established")
	return db, nil
}
