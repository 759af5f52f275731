package routing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/UnknownOlympus/exodus/internal/geo"
	"github.com/UnknownOlympus/exodus/internal/metrics"
	"github.com/UnknownOlympus/exodus/internal/models"
	"golang.org/x/sync/errgroup"
)

// DefaultTimeout bounds a single live routing call.
const DefaultTimeout = 15 * time.Second

// AllProfiles lists every profile in presentation order.
//
//nolint:gochecknoglobals // fixed order
var AllProfiles = []models.Profile{
	models.ProfileDrive, models.ProfileTransit, models.ProfileHybrid, models.ProfileWalk,
}

// Estimate is the outcome for one profile: a live route, or a heuristic one with the reason.
type Estimate struct {
	Route    models.RouteResult `json:"route"`
	Fallback bool               `json:"fallback"`
	Err      error              `json:"-"`
}

// Resolver computes routes for several profiles independently.
type Resolver struct {
	router  Router
	log     *slog.Logger
	metrics *metrics.Metrics
	name    string
	timeout time.Duration
}

// NewResolver creates a Resolver. A nil router makes every profile heuristic.
func NewResolver(router Router, name string, timeout time.Duration, log *slog.Logger, m *metrics.Metrics) *Resolver {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Resolver{router: router, name: name, timeout: timeout, log: log, metrics: m}
}

// Resolve returns one estimate per requested profile. Drive and walk are asked of the
// router concurrently; any failure there, and every transit or hybrid request, falls back
// to the heuristic policy. The locality picks the walk-to-stop time.
func (r *Resolver) Resolve(
	ctx context.Context,
	origin, destination models.GeoPoint,
	profiles []models.Profile,
	locality string,
) map[models.Profile]Estimate {
	straightMi := geo.DistanceMiles(origin, destination)
	results := make([]Estimate, len(profiles))

	var group errgroup.Group
	for idx, profile := range profiles {
		group.Go(func() error {
			results[idx] = r.resolveOne(ctx, origin, destination, profile, straightMi, locality)
			return nil
		})
	}
	_ = group.Wait()

	out := make(map[models.Profile]Estimate, len(profiles))
	for idx, profile := range profiles {
		out[profile] = results[idx]
	}

	return out
}

func (r *Resolver) resolveOne(
	ctx context.Context,
	origin, destination models.GeoPoint,
	profile models.Profile,
	straightMi float64,
	locality string,
) Estimate {
	if r.router == nil || profile == models.ProfileTransit || profile == models.ProfileHybrid {
		return Estimate{Route: EstimateRoute(profile, straightMi, locality), Fallback: true}
	}

	reqCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	route, err := r.router.Route(reqCtx, origin, destination, profile)
	if r.metrics != nil {
		r.metrics.RequestSeconds.WithLabelValues(r.name).Observe(time.Since(start).Seconds())
	}

	if err == nil && route != nil {
		return Estimate{Route: *route}
	}
	if err == nil {
		err = fmt.Errorf("%w: empty route", models.ErrUnavailable)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		err = fmt.Errorf("%w: routing timed out: %w", models.ErrUnavailable, err)
	}

	r.log.WarnContext(ctx, "Live routing unavailable, using estimate", "profile", profile, "error", err)
	if r.metrics != nil {
		r.metrics.ProviderErrors.WithLabelValues(r.name).Inc()
		r.metrics.RouteFallbacks.WithLabelValues(string(profile)).Inc()
	}

	return Estimate{Route: EstimateRoute(profile, straightMi, locality), Fallback: true, Err: err}
}
