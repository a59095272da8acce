package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/ongesperanza/ngo-system/internal/core/domain"
	"github.com/ongesperanza/ngo-system/internal/metrics"
)

// kvClient is the subset of redis.Client the collection store uses.
type kvClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// CollectionStore persists whole entity collections as JSON lists, one Redis
// string key per collection. Append is a read-modify-write of the full list
// and is intentionally not atomic: two writers can read the same pre-append
// state and overwrite each other (lost update). The system is single-operator
// by design, so this is an accepted limitation rather than something to fix
// with WATCH/MULTI.
//
// An optional fixed latency is applied to every operation, emulating the
// network delay the original storage layer simulated.
type CollectionStore struct {
	client  kvClient
	latency time.Duration
}

func NewCollectionStore(client *redis.Client, latency time.Duration) *CollectionStore {
	return &CollectionStore{client: client, latency: latency}
}

// delay blocks for the configured artificial latency, honoring cancellation.
func (s *CollectionStore) delay(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}
	t := time.NewTimer(s.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// fetchCollection returns the persisted list under key, or a copy of
// fallback when nothing has ever been written there. The copy matters: the
// fallback is a long-lived seed slice shared across requests, and callers
// mutate the elements they get back. The fallback is never persisted;
// absence of stored data is not an error.
func fetchCollection[T any](ctx context.Context, s *CollectionStore, key string, fallback []T) ([]T, error) {
	timer := prometheus.NewTimer(metrics.StoreOperationDuration.WithLabelValues("fetch", key))
	defer timer.ObserveDuration()

	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	raw, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.StoreFallbackTotal.WithLabelValues(key).Inc()
		return append([]T(nil), fallback...), nil
	}
	if err != nil {
		metrics.StoreErrorsTotal.WithLabelValues("fetch").Inc()
		return nil, fmt.Errorf("%w: get %s: %v", domain.ErrStoreFailure, key, err)
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		metrics.StoreErrorsTotal.WithLabelValues("fetch").Inc()
		return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrStoreFailure, key, err)
	}
	return items, nil
}

// appendItem reads the current persisted list (empty when absent — the seed
// fallback never enters storage through this path), appends item, and writes
// the full list back.
func appendItem[T any](ctx context.Context, s *CollectionStore, key string, item T) error {
	timer := prometheus.NewTimer(metrics.StoreOperationDuration.WithLabelValues("append", key))
	defer timer.ObserveDuration()

	if err := s.delay(ctx); err != nil {
		return err
	}

	var items []T
	raw, err := s.client.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		// first write for this collection
	case err != nil:
		metrics.StoreErrorsTotal.WithLabelValues("append").Inc()
		return fmt.Errorf("%w: get %s: %v", domain.ErrStoreFailure, key, err)
	default:
		if err := json.Unmarshal(raw, &items); err != nil {
			metrics.StoreErrorsTotal.WithLabelValues("append").Inc()
			return fmt.Errorf("%w: decode %s: %v", domain.ErrStoreFailure, key, err)
		}
	}

	items = append(items, item)
	data, err := json.Marshal(items)
	if err != nil {
		metrics.StoreErrorsTotal.WithLabelValues("append").Inc()
		return fmt.Errorf("%w: encode %s: %v", domain.ErrStoreFailure, key, err)
	}

	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		metrics.StoreErrorsTotal.WithLabelValues("append").Inc()
		return fmt.Errorf("%w: set %s: %v", domain.ErrStoreFailure, key, err)
	}
	return nil
}
