package storage

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/senior-care-guide/internal/domain"
)

// BreakerStore guards a remote store with a circuit breaker. While the
// breaker is open, calls fail fast with gobreaker.ErrOpenState.
type BreakerStore struct {
	store   Store
	breaker *gobreaker.CircuitBreaker
}

// NewBreakerStore wraps store with a breaker named name.
func NewBreakerStore(name string, store Store, cfg domain.BreakerConfig, logger *logrus.Logger) *BreakerStore {
	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = 3
	}
	maxRequests := cfg.MaxRequests
	if maxRequests == 0 {
		maxRequests = 1
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: maxRequests,
		Interval:    cfg.Interval,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		// A missing key is an answer, not a failure.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, domain.ErrNotFound)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			if logger == nil {
				return
			}
			logger.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Storage circuit breaker changed state")
		},
	}

	return &BreakerStore{
		store:   store,
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

// State reports the current breaker state.
func (b *BreakerStore) State() gobreaker.State {
	return b.breaker.State()
}

func (b *BreakerStore) Get(ctx context.Context, key string) ([]byte, error) {
	result, err := b.breaker.Execute(func() (interface{}, error) {
		return b.store.Get(ctx, key)
	})
	if err != nil {
		return nil, err
	}
	return result.([]byte), nil
}

func (b *BreakerStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := b.breaker.Execute(func() (interface{}, error) {
		return nil, b.store.Set(ctx, key, value)
	})
	return err
}

func (b *BreakerStore) Delete(ctx context.Context, key string) error {
	_, err := b.breaker.Execute(func() (interface{}, error) {
		return nil, b.store.Delete(ctx, key)
	})
	return err
}

func (b *BreakerStore) Close() error {
	return b.store.Close()
}
