package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/senior-care-guide/internal/domain"
)

func TestBreakerStore_PassesThrough(t *testing.T) {
	store := NewBreakerStore("test", NewMemoryStore(), domain.BreakerConfig{}, quietLogger())

	runStoreContract(t, store)
	assert.Equal(t, gobreaker.StateClosed, store.State())
}

func TestBreakerStore_NotFoundDoesNotTrip(t *testing.T) {
	store := NewBreakerStore("test", NewMemoryStore(), domain.BreakerConfig{FailureThreshold: 1}, quietLogger())

	for i := 0; i < 5; i++ {
		_, err := store.Get(context.Background(), "absent")
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	}
	assert.Equal(t, gobreaker.StateClosed, store.State())
}

func TestBreakerStore_OpensAfterConsecutiveFailures(t *testing.T) {
	backend := &failingStore{err: errors.New("timeout")}
	store := NewBreakerStore("test", backend, domain.BreakerConfig{
		FailureThreshold: 2,
		Timeout:          time.Minute,
	}, quietLogger())
	ctx := context.Background()

	require.Error(t, store.Set(ctx, StateKey, []byte("x")))
	require.Error(t, store.Set(ctx, StateKey, []byte("x")))
	assert.Equal(t, gobreaker.StateOpen, store.State())

	err := store.Set(ctx, StateKey, []byte("x"))
	assert.True(t, errors.Is(err, gobreaker.ErrOpenState))

	_, err = store.Get(ctx, StateKey)
	assert.True(t, errors.Is(err, gobreaker.ErrOpenState))
}

func TestWithTimeout(t *testing.T) {
	mem := NewMemoryStore()

	assert.Same(t, mem, withTimeout(mem, 0))

	wrapped := withTimeout(mem, time.Second)
	require.IsType(t, &timeoutStore{}, wrapped)
	runStoreContract(t, wrapped)
}
