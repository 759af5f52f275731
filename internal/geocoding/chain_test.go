package geocoding_test

import (
	"fmt"
	"log/slog"
	"testing"

	"github.com/UnknownOlympus/exodus/internal/geocoding"
	"github.com/UnknownOlympus/exodus/internal/metrics"
	"github.com/UnknownOlympus/exodus/internal/models"
	"github.com/UnknownOlympus/exodus/internal/registry"
	"github.com/UnknownOlympus/exodus/test/mocks"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalProvider(t *testing.T) {
	t.Parallel()
	provider := geocoding.NewLocalProvider(registry.DefaultSafeZones())

	point, err := provider.Geocode(t.Context(), "Denver, CO")
	require.NoError(t, err)
	assert.InDelta(t, 39.7392, point.Latitude, 0.001)

	_, err = provider.Geocode(t.Context(), "123 Elm St, Springfield")
	require.ErrorIs(t, err, models.ErrNotFound)
}

func TestLocality(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "new york", geocoding.Locality("New York, NY 10001"))
	assert.Equal(t, "boston", geocoding.Locality("  Boston "))
	assert.Empty(t, geocoding.Locality(""))
}

func TestChain(t *testing.T) {
	ctx := t.Context()
	logger := slog.Default()
	point := &models.GeoPoint{Latitude: 35.0, Longitude: -80.0}

	t.Run("first match wins", func(t *testing.T) {
		first := mocks.NewProvider(t)
		second := mocks.NewProvider(t)
		first.On("Geocode", ctx, "addr").Return(point, nil).Once()

		got, err := geocoding.NewChain(logger, first, second).Geocode(ctx, "addr")

		require.NoError(t, err)
		assert.Equal(t, point, got)
	})

	t.Run("miss falls through", func(t *testing.T) {
		first := mocks.NewProvider(t)
		second := mocks.NewProvider(t)
		first.On("Geocode", ctx, "addr").Return(nil, models.ErrNotFound).Once()
		second.On("Geocode", ctx, "addr").Return(point, nil).Once()

		got, err := geocoding.NewChain(logger, first, second).Geocode(ctx, "addr")

		require.NoError(t, err)
		assert.Equal(t, point, got)
	})

	t.Run("all miss is not found", func(t *testing.T) {
		first := mocks.NewProvider(t)
		first.On("Geocode", ctx, "addr").Return(nil, models.ErrNotFound).Once()

		_, err := geocoding.NewChain(logger, first).Geocode(ctx, "addr")

		require.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("outage is reported over a miss", func(t *testing.T) {
		first := mocks.NewProvider(t)
		second := mocks.NewProvider(t)
		outage := fmt.Errorf("%w: status 503", models.ErrUnavailable)
		first.On("Geocode", ctx, "addr").Return(nil, models.ErrNotFound).Once()
		second.On("Geocode", ctx, "addr").Return(nil, outage).Once()

		_, err := geocoding.NewChain(logger, first, second).Geocode(ctx, "addr")

		require.ErrorIs(t, err, models.ErrUnavailable)
		require.NotErrorIs(t, err, models.ErrNotFound)
	})
}

func TestInstrumented(t *testing.T) {
	ctx := t.Context()
	m := metrics.NewMetricsForTesting()
	inner := mocks.NewProvider(t)
	provider := geocoding.NewInstrumented(inner, "nominatim", m)

	inner.On("Geocode", ctx, "miss").Return(nil, models.ErrNotFound).Once()
	inner.On("Geocode", ctx, "down").Return(nil, models.ErrUnavailable).Once()

	_, _ = provider.Geocode(ctx, "miss")
	_, _ = provider.Geocode(ctx, "down")

	assert.InDelta(t, 1, testutil.ToFloat64(m.ProviderErrors.WithLabelValues("nominatim")), 0)
}
