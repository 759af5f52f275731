package cache_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/UnknownOlympus/exodus/internal/cache"
	"github.com/UnknownOlympus/exodus/internal/metrics"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Expiry(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	clock := clockwork.NewFakeClock()
	store := cache.NewMemoryStore(clock)

	require.NoError(t, store.Set(ctx, "k", []byte("v"), time.Minute))

	value, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("v"), value)

	clock.Advance(59 * time.Second)
	_, ok, _ = store.Get(ctx, "k")
	assert.True(t, ok)

	clock.Advance(time.Second)
	_, ok, _ = store.Get(ctx, "k")
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	store := cache.NewMemoryStore(clockwork.NewFakeClock())

	original := []byte("abc")
	require.NoError(t, store.Set(ctx, "k", original, time.Minute))
	original[0] = 'x'

	value, _, _ := store.Get(ctx, "k")
	value[1] = 'y'

	again, _, _ := store.Get(ctx, "k")
	assert.Equal(t, []byte("abc"), again)
}

func TestRemember(t *testing.T) {
	t.Parallel()

	t.Run("success is cached until ttl", func(t *testing.T) {
		t.Parallel()
		clock := clockwork.NewFakeClock()
		m := metrics.NewMetricsForTesting()
		memo := cache.NewMemo(cache.NewMemoryStore(clock), time.Minute, slog.Default(), m)
		calls := 0
		fetch := func(context.Context) ([]string, error) {
			calls++
			return []string{"a", "b"}, nil
		}

		for range 3 {
			got, err := cache.Remember(t.Context(), memo, "key", fetch)
			require.NoError(t, err)
			assert.Equal(t, []string{"a", "b"}, got)
		}
		assert.Equal(t, 1, calls)
		assert.InDelta(t, 2, testutil.ToFloat64(m.CacheLookups.WithLabelValues("hit")), 0)

		clock.Advance(time.Minute)
		_, err := cache.Remember(t.Context(), memo, "key", fetch)
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("failure is never cached", func(t *testing.T) {
		t.Parallel()
		store := cache.NewMemoryStore(clockwork.NewFakeClock())
		memo := cache.NewMemo(store, time.Minute, slog.Default(), nil)
		calls := 0
		fetch := func(context.Context) (int, error) {
			calls++
			if calls == 1 {
				return 0, assert.AnError
			}
			return 42, nil
		}

		_, err := cache.Remember(t.Context(), memo, "key", fetch)
		require.ErrorIs(t, err, assert.AnError)
		assert.Equal(t, 0, store.Len())

		got, err := cache.Remember(t.Context(), memo, "key", fetch)
		require.NoError(t, err)
		assert.Equal(t, 42, got)
		assert.Equal(t, 2, calls)
	})

	t.Run("store failure degrades to direct fetch", func(t *testing.T) {
		t.Parallel()
		memo := cache.NewMemo(brokenStore{}, 0, slog.Default(), nil)

		got, err := cache.Remember(t.Context(), memo, "key", func(context.Context) (string, error) { return "ok", nil })

		require.NoError(t, err)
		assert.Equal(t, "ok", got)
		assert.Equal(t, cache.DefaultTTL, memo.TTL())
	})
}

func TestKey(t *testing.T) {
	t.Parallel()

	a, err := cache.Key("page", map[string]any{"table": "t", "max": 10})
	require.NoError(t, err)
	b, err := cache.Key("page", map[string]any{"max": 10, "table": "t"})
	require.NoError(t, err)
	c, err := cache.Key("page", map[string]any{"table": "t", "max": 11})
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)

	_, err = cache.Key("bad", func() {})
	require.Error(t, err)
}

func TestRedisStore(t *testing.T) {
	t.Parallel()
	ctx := t.Context()

	t.Run("hit", func(t *testing.T) {
		t.Parallel()
		store := cache.NewRedisStore(&fakeRedis{get: redis.NewStringResult("payload", nil)})

		value, ok, err := store.Get(ctx, "k")

		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, []byte("payload"), value)
	})

	t.Run("miss", func(t *testing.T) {
		t.Parallel()
		store := cache.NewRedisStore(&fakeRedis{get: redis.NewStringResult("", redis.Nil)})

		_, ok, err := store.Get(ctx, "k")

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("read error", func(t *testing.T) {
		t.Parallel()
		store := cache.NewRedisStore(&fakeRedis{get: redis.NewStringResult("", assert.AnError)})

		_, _, err := store.Get(ctx, "k")

		require.ErrorIs(t, err, assert.AnError)
	})

	t.Run("set passes ttl", func(t *testing.T) {
		t.Parallel()
		client := &fakeRedis{set: redis.NewStatusResult("OK", nil)}
		store := cache.NewRedisStore(client)

		require.NoError(t, store.Set(ctx, "k", []byte("v"), time.Minute))
		assert.Equal(t, time.Minute, client.lastTTL)
	})

	t.Run("set error", func(t *testing.T) {
		t.Parallel()
		store := cache.NewRedisStore(&fakeRedis{set: redis.NewStatusResult("", assert.AnError)})

		require.ErrorIs(t, store.Set(ctx, "k", []byte("v"), time.Minute), assert.AnError)
	})
}

type fakeRedis struct {
	get     *redis.StringCmd
	set     *redis.StatusCmd
	lastTTL time.Duration
}

func (f *fakeRedis) Get(context.Context, string) *redis.StringCmd { return f.get }

func (f *fakeRedis) Set(_ context.Context, _ string, _ any, ttl time.Duration) *redis.StatusCmd {
	f.lastTTL = ttl
	return f.set
}

type brokenStore struct{}

func (brokenStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("connection refused")
}

func (brokenStore) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("connection refused")
}
