// Package config provides configuration management for the care guide.
// This file contains the lightweight configuration for local, single-user use.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/senior-care-guide/internal/i18n"
)

// LiteConfig is a simplified configuration for the CLI and the stdio MCP
// server. It requires no external databases and uses sensible defaults.
type LiteConfig struct {
	// Data storage
	DataDir string // Base directory for data files

	// Cache settings
	CacheMaxItems int // Maximum recommendations kept in memory

	// Language used when nothing has been saved yet
	Language i18n.Language

	// Logging
	LogLevel  string // Log level: debug, info, warn, error
	LogFormat string // Log format: json, text
}

// DefaultLiteConfig returns a configuration with sensible defaults.
func DefaultLiteConfig() *LiteConfig {
	homeDir, _ := os.UserHomeDir()
	dataDir := filepath.Join(homeDir, ".senior-care-guide")

	return &LiteConfig{
		DataDir:       dataDir,
		CacheMaxItems: 256,
		Language:      i18n.DefaultLanguage,
		LogLevel:      "warn",
		LogFormat:     "text",
	}
}

// LoadLiteConfig loads configuration from environment variables.
// Falls back to defaults if not set.
func LoadLiteConfig() *LiteConfig {
	cfg := DefaultLiteConfig()

	if v := os.Getenv("SCG_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}

	if v := os.Getenv("SCG_CACHE_MAX_ITEMS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.CacheMaxItems = n
		}
	}

	if v := os.Getenv("SCG_LANG"); v != "" {
		if lang, err := i18n.ParseLanguage(v); err == nil {
			cfg.Language = lang
		}
	}

	if v := os.Getenv("SCG_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("SCG_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}

	return cfg
}

// StatePath returns the path to the session SQLite database.
func (c *LiteConfig) StatePath() string {
	return filepath.Join(c.DataDir, "state.db")
}

// ExportDir returns the directory for JSON exports.
func (c *LiteConfig) ExportDir() string {
	return filepath.Join(c.DataDir, "exports")
}

// EnsureDataDir creates the data directory if it doesn't exist.
func (c *LiteConfig) EnsureDataDir() error {
	if err := os.MkdirAll(c.DataDir, 0755); err != nil {
		return err
	}
	return os.MkdirAll(c.ExportDir(), 0755)
}
