// Package routing computes routes per transport profile and falls back to fixed heuristic
// estimates whenever the routing service cannot answer.
package routing

import (
	"context"
	"math"
	"net/http"

	"github.com/UnknownOlympus/exodus/internal/models"
)

// MetersToMiles converts metres to statute miles.
const MetersToMiles = 0.000621371

// Router computes a live route for a single drive or walk profile.
type Router interface {
	Route(ctx context.Context, origin, destination models.GeoPoint, profile models.Profile) (*models.RouteResult, error)
}

// HTTPClient defines the interface for making HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// round1 rounds half to even at one decimal.
func round1(v float64) float64 {
	return math.RoundToEven(v*10) / 10 //nolint:mnd // one decimal
}
