// Package cache memoizes successful lookups for a bounded time. Failed lookups are never stored.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/UnknownOlympus/exodus/internal/metrics"
)

// DefaultTTL is the lifetime of a cached success.
const DefaultTTL = 5 * time.Minute

// Store is a byte-oriented key/value store with per-entry expiry.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Memo wraps a Store with check-then-fetch-then-store semantics.
type Memo struct {
	store   Store
	ttl     time.Duration
	log     *slog.Logger
	metrics *metrics.Metrics
}

// NewMemo creates a Memo. A non-positive ttl falls back to DefaultTTL.
func NewMemo(store Store, ttl time.Duration, log *slog.Logger, m *metrics.Metrics) *Memo {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Memo{store: store, ttl: ttl, log: log, metrics: m}
}

// TTL returns the lifetime applied to stored entries.
func (m *Memo) TTL() time.Duration { return m.ttl }

// Key builds a cache key from an operation name and its parameters.
func Key(operation string, params any) (string, error) {
	raw, err := json.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("failed to encode cache key for %s: %w", operation, err)
	}

	return "exodus:" + operation + ":" + string(raw), nil
}

// Remember returns the cached value for key or calls fetch and stores its result on success.
// Store errors degrade to a direct fetch.
func Remember[T any](ctx context.Context, memo *Memo, key string, fetch func(context.Context) (T, error)) (T, error) {
	return RememberFor(ctx, memo, key, memo.ttl, fetch)
}

// RememberFor is Remember with an explicit ttl.
func RememberFor[T any](
	ctx context.Context,
	memo *Memo,
	key string,
	ttl time.Duration,
	fetch func(context.Context) (T, error),
) (T, error) {
	raw, ok, err := memo.store.Get(ctx, key)
	switch {
	case err != nil:
		memo.log.WarnContext(ctx, "Cache read failed, fetching directly", "key", key, "error", err)
		memo.observe("error")
	case ok:
		var value T
		if err = json.Unmarshal(raw, &value); err == nil {
			memo.observe("hit")
			return value, nil
		}
		memo.log.WarnContext(ctx, "Discarding undecodable cache entry", "key", key, "error", err)
		memo.observe("error")
	default:
		memo.observe("miss")
	}

	value, err := fetch(ctx)
	if err != nil {
		return value, err
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		memo.log.WarnContext(ctx, "Failed to encode value for cache", "key", key, "error", err)
		return value, nil
	}
	if err = memo.store.Set(ctx, key, encoded, ttl); err != nil {
		memo.log.WarnContext(ctx, "Cache write failed", "key", key, "error", err)
	}

	return value, nil
}

func (m *Memo) observe(result string) {
	if m.metrics != nil {
		m.metrics.CacheLookups.WithLabelValues(result).Inc()
	}
}
