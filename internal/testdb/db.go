//go:build integration

package testdb

import (
	"context"
	"database/sql"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/phrazzld/booking-api/internal/platform/logger"
	"github.com/phrazzld/booking-api/internal/platform/postgres"
	"github.com/phrazzld/booking-api/internal/redact"
	"github.com/stretchr/testify/require"
)

// TestTimeout bounds connection and migration work done by the helpers.
const TestTimeout = 10 * time.Second

// databaseURLVars are checked in order by GetTestDatabaseURL.
var databaseURLVars = []string{"BOOKING_TEST_DB_URL", "DATABASE_URL", "BOOKING_DATABASE_URL"}

// migrateOnce guards schema setup so parallel packages share one migration run per process.
var migrateOnce sync.Once
var migrateErr error

// GetTestDatabaseURL returns the first non-empty database URL variable, or "".
func GetTestDatabaseURL() string {
	for _, name := range databaseURLVars {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// GetTestDBWithT opens the test database, applies all migrations and
// registers cleanup. The test is skipped when no database is configured.
func GetTestDBWithT(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		t.Skip("no test database configured - set BOOKING_TEST_DB_URL or DATABASE_URL")
	}

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	db, err := postgres.Open(ctx, dbURL, postgres.PoolConfig{
		MaxOpenConns:    5,
		MaxIdleConns:    2,
		ConnMaxLifetime: 2 * time.Minute,
	})
	require.NoError(t, err, "failed to connect to %s", redact.String(dbURL))

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("warning: failed to close test database: %v", err)
		}
	})

	SetupTestDatabaseSchema(t, db)
	return db
}

// SetupTestDatabaseSchema runs the embedded migrations up to the latest version.
func SetupTestDatabaseSchema(t *testing.T, db *sql.DB) {
	t.Helper()

	migrateOnce.Do(func() {
		log, _ := logger.NewTestLogger(t)
		ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
		defer cancel()
		migrateErr = postgres.Migrate(ctx, db, log, "up")
	})
	require.NoError(t, migrateErr, "failed to migrate test database")
}
