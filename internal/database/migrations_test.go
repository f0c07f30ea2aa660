package database

import (
	"io/fs"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	entries, err := fs.ReadDir(migrationFiles, "migrations")
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}

	assert.Contains(t, names, "000001_create_kv_state.up.sql")
	assert.Contains(t, names, "000001_create_kv_state.down.sql")
	assert.Equal(t, 0, len(names)%2)
}

func TestUpMigrationCreatesStateTable(t *testing.T) {
	data, err := fs.ReadFile(migrationFiles, "migrations/000001_create_kv_state.up.sql")
	require.NoError(t, err)

	assert.Contains(t, string(data), "CREATE TABLE IF NOT EXISTS kv_state")
}

func TestNewMigrationRunner_InvalidURL(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	_, err := NewMigrationRunner("notascheme://nowhere", logger)
	assert.Error(t, err)
}
