package geocoding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/UnknownOlympus/exodus/internal/metrics"
	"github.com/UnknownOlympus/exodus/internal/models"
)

// Chain tries providers in order and returns the first match.
type Chain struct {
	providers []Provider
	log       *slog.Logger
}

// NewChain creates a Chain.
func NewChain(log *slog.Logger, providers ...Provider) *Chain {
	return &Chain{providers: providers, log: log}
}

// Geocode returns the first provider's match. When every provider misses the result is
// models.ErrNotFound; when any of them failed otherwise, that failure is reported instead.
func (c *Chain) Geocode(ctx context.Context, address string) (*models.GeoPoint, error) {
	var failures []error

	for idx, provider := range c.providers {
		point, err := provider.Geocode(ctx, address)
		if err == nil {
			return point, nil
		}
		if ctx.Err() != nil {
			return nil, fmt.Errorf("geocoding cancelled: %w", ctx.Err())
		}

		c.log.DebugContext(ctx, "Geocoding provider missed, trying next", "provider", idx, "error", err)
		if !errors.Is(err, models.ErrNotFound) {
			failures = append(failures, err)
		}
	}

	if len(failures) > 0 {
		return nil, errors.Join(failures...)
	}

	return nil, fmt.Errorf("%w: no provider could geocode %q", models.ErrNotFound, address)
}

// Instrumented records request duration and errors of a provider.
type Instrumented struct {
	next    Provider
	name    string
	metrics *metrics.Metrics
}

// NewInstrumented wraps next with metrics labelled name.
func NewInstrumented(next Provider, name string, m *metrics.Metrics) *Instrumented {
	return &Instrumented{next: next, name: name, metrics: m}
}

func (i *Instrumented) Geocode(ctx context.Context, address string) (*models.GeoPoint, error) {
	start := time.Now()
	point, err := i.next.Geocode(ctx, address)
	i.metrics.RequestSeconds.WithLabelValues(i.name).Observe(time.Since(start).Seconds())

	if err != nil && !errors.Is(err, models.ErrNotFound) {
		i.metrics.ProviderErrors.WithLabelValues(i.name).Inc()
	}

	return point, err
}
