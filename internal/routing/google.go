package routing

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"regexp"
	"strings"

	"github.com/UnknownOlympus/exodus/internal/models"
	"googlemaps.github.io/maps"
)

// DirectionsClient is the part of the Google Maps client used for routing.
type DirectionsClient interface {
	Directions(ctx context.Context, r *maps.DirectionsRequest) ([]maps.Route, []maps.GeocodedWaypoint, error)
}

// ErrGoogleNoRoute is returned when the Directions API finds no route.
var ErrGoogleNoRoute = fmt.Errorf("%w: google directions returned no routes", models.ErrUnavailable)

//nolint:gochecknoglobals // compiled once
var tagRe = regexp.MustCompile(`<[^>]*>`)

// GoogleRouter routes through the Google Maps Directions API.
type GoogleRouter struct {
	client DirectionsClient
	log    *slog.Logger
}

// NewGoogleRouter creates a GoogleRouter over an existing client.
func NewGoogleRouter(client DirectionsClient, log *slog.Logger) *GoogleRouter {
	return &GoogleRouter{client: client, log: log}
}

func (g *GoogleRouter) Route(
	ctx context.Context,
	origin, destination models.GeoPoint,
	profile models.Profile,
) (*models.RouteResult, error) {
	var mode maps.Mode
	switch profile {
	case models.ProfileDrive:
		mode = maps.TravelModeDriving
	case models.ProfileWalk:
		mode = maps.TravelModeWalking
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProfile, profile)
	}

	routes, _, err := g.client.Directions(ctx, &maps.DirectionsRequest{
		Origin:      latLng(origin),
		Destination: latLng(destination),
		Mode:        mode,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get directions: %w", models.ErrUnavailable, err)
	}
	if len(routes) == 0 {
		return nil, ErrGoogleNoRoute
	}

	route := routes[0]
	result := &models.RouteResult{Profile: profile}

	var meters, minutes float64
	for _, leg := range route.Legs {
		meters += float64(leg.Distance.Meters)
		minutes += leg.Duration.Minutes()
		for _, step := range leg.Steps {
			text := strings.TrimSpace(html.UnescapeString(tagRe.ReplaceAllString(step.HTMLInstructions, " ")))
			text = strings.Join(strings.Fields(text), " ")
			if text == "" {
				continue
			}
			result.Steps = append(result.Steps, models.Step{
				Instruction: text,
				DistanceMi:  float64(step.Distance.Meters) * MetersToMiles,
			})
		}
	}

	result.DistanceMi = round1(meters * MetersToMiles)
	result.DurationMin = round1(minutes)

	points, err := route.OverviewPolyline.Decode()
	if err != nil {
		g.log.WarnContext(ctx, "Failed to decode overview polyline", "error", err)
	}
	for _, p := range points {
		result.Geometry = append(result.Geometry, models.GeoPoint{Latitude: p.Lat, Longitude: p.Lng})
	}

	return result, nil
}

func latLng(p models.GeoPoint) string {
	return fmt.Sprintf("%f,%f", p.Latitude, p.Longitude)
}
