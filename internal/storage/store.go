// Package storage persists the session state in a small key-value store.
// Two independent keys are used: one for the assessment and waitlist, one for
// the language preference. Backends are interchangeable behind Store.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/senior-care-guide/internal/database"
	"github.com/senior-care-guide/internal/domain"
)

// Keys of the persisted state.
const (
	StateKey    = "scg_v1"
	LanguageKey = "scg_lang"
)

// Store defines the key-value operations every backend provides.
type Store interface {
	// Get returns the value stored under key, or an error wrapping
	// domain.ErrNotFound when the key has never been written.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend's resources.
	Close() error
}

// Open builds the store selected by cfg.Backend. Remote backends are wrapped
// in a circuit breaker so a failing database cannot stall the session.
func Open(ctx context.Context, cfg domain.StorageConfig, breaker domain.BreakerConfig, logger *logrus.Logger) (Store, error) {
	switch cfg.Backend {
	case domain.StorageMemory:
		return NewMemoryStore(), nil

	case domain.StorageSQLite, "":
		return NewSQLiteStore(cfg.SQLitePath)

	case domain.StoragePostgres:
		if cfg.Migrate {
			if err := database.MigrateUp(ctx, cfg.PostgresURL, logger); err != nil {
				return nil, fmt.Errorf("failed to migrate state schema: %w", err)
			}
		}
		store, err := NewPostgresStoreFromURL(ctx, cfg.PostgresURL, cfg.PoolSize)
		if err != nil {
			return nil, err
		}
		return NewBreakerStore("postgres", withTimeout(store, cfg.Timeout), breaker, logger), nil

	case domain.StorageRedis:
		store, err := NewRedisStore(ctx, cfg.RedisURL, cfg.KeyPrefix, cfg.PoolSize)
		if err != nil {
			return nil, err
		}
		return NewBreakerStore("redis", withTimeout(store, cfg.Timeout), breaker, logger), nil

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// timeoutStore bounds every call to the wrapped store.
type timeoutStore struct {
	Store
	timeout time.Duration
}

func withTimeout(s Store, timeout time.Duration) Store {
	if timeout <= 0 {
		return s
	}
	return &timeoutStore{Store: s, timeout: timeout}
}

func (t *timeoutStore) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.Store.Get(ctx, key)
}

func (t *timeoutStore) Set(ctx context.Context, key string, value []byte) error {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.Store.Set(ctx, key, value)
}

func (t *timeoutStore) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.Store.Delete(ctx, key)
}

func notFound(key string) error {
	return fmt.Errorf("key %q: %w", key, domain.ErrNotFound)
}
