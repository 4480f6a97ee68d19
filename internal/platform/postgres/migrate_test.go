package postgres

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(migrationsFS, migrationsDir+"/*.sql")
	require.NoError(t, err)
	require.Len(t, files, 2)

	for _, name := range files {
		raw, err := fs.ReadFile(migrationsFS, name)
		require.NoError(t, err)
		content := string(raw)
		assert.Contains(t, content, "-- +goose Up", name)
		assert.Contains(t, content, "-- +goose Down", name)
	}

	services, err := fs.ReadFile(migrationsFS, migrationsDir+"/00002_create_appointment_services.sql")
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(services), "ON appointment_services (shop_id)"))
}

func TestMigrateRejectsUnknownCommand(t *testing.T) {
	err := Migrate(context.Background(), nil, nil, "drop-everything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown migration command")
}
