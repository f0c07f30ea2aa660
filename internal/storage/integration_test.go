package storage

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/senior-care-guide/internal/domain"
)

func TestPostgresStore_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Skipf("PostgreSQL container unavailable: %v", err)
	}
	defer func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate PostgreSQL container: %v", err)
		}
	}()

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	store, err := Open(ctx, domain.StorageConfig{
		Backend:     domain.StoragePostgres,
		PostgresURL: dsn,
		Migrate:     true,
		Timeout:     5 * time.Second,
	}, domain.BreakerConfig{}, quietLogger())
	require.NoError(t, err)
	defer store.Close()

	runStoreContract(t, store)

	require.NoError(t, SaveState(ctx, store, sampleState()))
	got, err := LoadState(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, sampleState(), got)
}

func TestRedisStore_Integration(t *testing.T) {
	redisURL := os.Getenv("TEST_REDIS_URL")
	if redisURL == "" {
		t.Skip("TEST_REDIS_URL not set, skipping Redis tests")
	}

	ctx := context.Background()
	prefix := "scg-test-" + time.Now().Format("150405.000000") + ":"

	store, err := NewRedisStore(ctx, redisURL, prefix, 2)
	require.NoError(t, err)
	defer func() {
		store.Delete(ctx, StateKey)
		store.Delete(ctx, LanguageKey)
		store.Close()
	}()

	runStoreContract(t, store)
	require.NoError(t, store.Set(ctx, LanguageKey, []byte("zh")))

	// The prefix is applied to the stored key.
	opts, err := redis.ParseURL(redisURL)
	require.NoError(t, err)
	raw := redis.NewClient(opts)
	defer raw.Close()

	val, err := raw.Get(ctx, prefix+LanguageKey).Result()
	require.NoError(t, err)
	assert.Equal(t, "zh", val)
}
