package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phrazzld/booking-api/internal/platform/postgres"
)

// NewMigrateCmd creates the migrate subcommand.
func NewMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate [command] [args]",
		Short: "Run database migrations",
		Long: fmt.Sprintf(`Run goose migrations against the configured PostgreSQL database.
The command defaults to "up". Supported commands: %s.`,
			strings.Join(postgres.MigrationCommands, ", ")),
		Args: cobra.ArbitraryArgs,
		RunE: runMigrate,
	}
}

func runMigrate(cmd *cobra.Command, args []string) error {
	command := "up"
	if len(args) > 0 {
		command, args = args[0], args[1:]
	}

	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}

	db, err := openDatabase(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := postgres.Migrate(cmd.Context(), db, log, command, args...); err != nil {
		return err
	}

	cmd.Printf("migration %q completed\n", command)
	return nil
}
