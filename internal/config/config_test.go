package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/senior-care-guide/internal/domain"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestNewManager_Defaults(t *testing.T) {
	m, err := NewManager(writeConfig(t, "environment: development\n"))
	require.NoError(t, err)

	cfg := m.GetConfig()
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "en", cfg.Server.DefaultLanguage)
	assert.Equal(t, domain.StorageSQLite, cfg.Storage.Backend)
	assert.Equal(t, 3*time.Second, cfg.Storage.Timeout)
	assert.Equal(t, uint32(3), cfg.Breaker.FailureThreshold)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 512, cfg.Cache.MaxItems)
	assert.Equal(t, "senior-care-guide", cfg.MCP.ServerName)
	assert.NoError(t, m.Validate())
	assert.True(t, m.IsDevelopment())
	assert.False(t, m.IsProduction())
}

func TestNewManager_FileValues(t *testing.T) {
	path := writeConfig(t, `
environment: production
server:
  port: 9090
  default_language: zh
storage:
  backend: redis
  redis_url: redis://cache:6379/1
  key_prefix: "family:"
logging:
  level: debug
  format: text
`)

	m, err := NewManager(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, m.GetServerConfig().Port)
	assert.Equal(t, "zh", m.GetServerConfig().DefaultLanguage)
	assert.Equal(t, domain.StorageRedis, m.GetStorageConfig().Backend)
	assert.Equal(t, "family:", m.GetStorageConfig().KeyPrefix)
	assert.True(t, m.IsProduction())
	assert.NoError(t, m.Validate())
}

func TestNewManager_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SCG_SERVER_PORT", "7070")
	t.Setenv("SCG_STORAGE_BACKEND", "memory")

	m, err := NewManager(writeConfig(t, "server:\n  port: 9090\n"))
	require.NoError(t, err)

	assert.Equal(t, 7070, m.GetServerConfig().Port)
	assert.Equal(t, domain.StorageMemory, m.GetStorageConfig().Backend)
}

func TestNewManager_MissingExplicitFile(t *testing.T) {
	_, err := NewManager(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestManager_Reload(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9000\n")
	m, err := NewManager(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 9001\n"), 0644))
	require.NoError(t, m.Reload())

	assert.Equal(t, 9001, m.GetServerConfig().Port)
}

func TestManager_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Config)
		wantErr string
	}{
		{"bad port", func(c *domain.Config) { c.Server.Port = 0 }, "invalid server port"},
		{"bad language", func(c *domain.Config) { c.Server.DefaultLanguage = "fr" }, "invalid default language"},
		{"unknown backend", func(c *domain.Config) { c.Storage.Backend = "etcd" }, "invalid storage backend"},
		{"postgres without url", func(c *domain.Config) {
			c.Storage.Backend = domain.StoragePostgres
			c.Storage.PostgresURL = ""
		}, "postgres url is required"},
		{"sqlite without path", func(c *domain.Config) { c.Storage.SQLitePath = "" }, "sqlite path is required"},
		{"zero rate", func(c *domain.Config) { c.RateLimit.RequestsPerSecond = 0 }, "rate limit"},
		{"bad level", func(c *domain.Config) { c.Logging.Level = "loud" }, "invalid log level"},
		{"bad format", func(c *domain.Config) { c.Logging.Format = "xml" }, "invalid log format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewManager(writeConfig(t, "environment: test\n"))
			require.NoError(t, err)

			tt.mutate(m.GetConfig())

			err = m.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestManager_ImplementsConfigManager(t *testing.T) {
	var _ domain.ConfigManager = (*Manager)(nil)
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("debug", "text", "stderr")
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)

	logger, err = NewLogger("nonsense", "json", "")
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	path := filepath.Join(t.TempDir(), "app.log")
	logger, err = NewLogger("info", "json", path)
	require.NoError(t, err)
	logger.Info("hello")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)

	_, err = NewLogger("info", "json", filepath.Join(t.TempDir(), "missing", "dir", "app.log"))
	assert.Error(t, err)
}
