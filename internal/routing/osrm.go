package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/UnknownOlympus/exodus/internal/models"
	"golang.org/x/time/rate"
)

// OSRMBaseURL is the public OSRM demo server.
const OSRMBaseURL = "http://router.project-osrm.org"

// Common errors for the OSRM router.
var (
	ErrOSRMBadCode           = fmt.Errorf("%w: osrm returned a non-Ok code", models.ErrUnavailable)
	ErrOSRMNoRoute           = fmt.Errorf("%w: osrm returned no routes", models.ErrUnavailable)
	ErrUnsupportedProfile    = errors.New("profile has no live routing")
	errOSRMMalformedGeometry = fmt.Errorf("%w: osrm geometry is malformed", models.ErrUnavailable)
)

// OSRMRouter queries an OSRM server.
type OSRMRouter struct {
	client  HTTPClient
	baseURL string
	limiter *rate.Limiter
	log     *slog.Logger
}

type osrmResponse struct {
	Code   string      `json:"code"`
	Routes []osrmRoute `json:"routes"`
}

type osrmRoute struct {
	Distance float64 `json:"distance"` // metres
	Duration float64 `json:"duration"` // seconds
	Geometry struct {
		Coordinates [][]float64 `json:"coordinates"` // [lon, lat]
	} `json:"geometry"`
	Legs []struct {
		Steps []osrmStep `json:"steps"`
	} `json:"legs"`
}

type osrmStep struct {
	Distance float64 `json:"distance"`
	Name     string  `json:"name"`
	Maneuver struct {
		Instruction string `json:"instruction"`
		Type        string `json:"type"`
		Modifier    string `json:"modifier"`
	} `json:"maneuver"`
}

// NewOSRMRouter creates a router against baseURL ("" means the public server).
func NewOSRMRouter(baseURL string, timeout time.Duration, log *slog.Logger) *OSRMRouter {
	return NewOSRMRouterWithClient(&http.Client{Timeout: timeout}, baseURL, nil, log)
}

// NewOSRMRouterWithClient allows injecting custom HTTP client and limiter.
func NewOSRMRouterWithClient(client HTTPClient, baseURL string, limiter *rate.Limiter, log *slog.Logger) *OSRMRouter {
	if baseURL == "" {
		baseURL = OSRMBaseURL
	}
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}

	return &OSRMRouter{client: client, baseURL: strings.TrimRight(baseURL, "/"), limiter: limiter, log: log}
}

// Route requests a full-overview GeoJSON route with steps.
func (r *OSRMRouter) Route(
	ctx context.Context,
	origin, destination models.GeoPoint,
	profile models.Profile,
) (*models.RouteResult, error) {
	osrmProfile, err := osrmProfileFor(profile)
	if err != nil {
		return nil, err
	}

	if err = r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit exceeded: %w", err)
	}

	reqURL, err := url.Parse(fmt.Sprintf("%s/route/v1/%s/%f,%f;%f,%f", r.baseURL, osrmProfile,
		origin.Longitude, origin.Latitude, destination.Longitude, destination.Latitude))
	if err != nil {
		return nil, fmt.Errorf("failed to build route URL: %w", err)
	}

	query := reqURL.Query()
	query.Set("overview", "full")
	query.Set("geometries", "geojson")
	query.Set("steps", "true")
	reqURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute route request: %w", models.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %w", models.ErrUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: osrm returned status %d", models.ErrUnavailable, resp.StatusCode)
	}

	var decoded osrmResponse
	if err = json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("%w: failed to decode osrm response: %w", models.ErrUnavailable, err)
	}
	if decoded.Code != "Ok" {
		return nil, fmt.Errorf("%w: %q", ErrOSRMBadCode, decoded.Code)
	}
	if len(decoded.Routes) == 0 {
		return nil, ErrOSRMNoRoute
	}

	return toRouteResult(decoded.Routes[0], profile)
}

func toRouteResult(route osrmRoute, profile models.Profile) (*models.RouteResult, error) {
	geometry := make([]models.GeoPoint, 0, len(route.Geometry.Coordinates))
	for _, pair := range route.Geometry.Coordinates {
		if len(pair) < 2 { //nolint:mnd // lon, lat
			return nil, errOSRMMalformedGeometry
		}
		geometry = append(geometry, models.GeoPoint{Latitude: pair[1], Longitude: pair[0]})
	}

	var steps []models.Step
	for _, leg := range route.Legs {
		for _, step := range leg.Steps {
			instruction := step.Maneuver.Instruction
			if instruction == "" {
				instruction = describeManeuver(step.Maneuver.Type, step.Maneuver.Modifier, step.Name)
			}
			if instruction == "" {
				continue
			}
			steps = append(steps, models.Step{Instruction: instruction, DistanceMi: step.Distance * MetersToMiles})
		}
	}

	const secondsPerMinute = 60

	return &models.RouteResult{
		Profile:     profile,
		DistanceMi:  round1(route.Distance * MetersToMiles),
		DurationMin: round1(route.Duration / secondsPerMinute),
		Geometry:    geometry,
		Steps:       steps,
	}, nil
}

// describeManeuver renders an instruction for servers that omit maneuver.instruction.
func describeManeuver(kind, modifier, road string) string {
	var text string
	switch kind {
	case "":
		return ""
	case "depart":
		text = "Head " + modifier
	case "arrive":
		return "Arrive at destination"
	case "turn", "end of road", "fork", "ramp", "on ramp", "off ramp":
		text = "Turn " + modifier
	case "merge":
		text = "Merge " + modifier
	case "roundabout", "rotary":
		text = "Enter the roundabout"
	default:
		text = "Continue " + modifier
	}

	text = strings.TrimSpace(text)
	if road != "" {
		text += " onto " + road
	}

	return text
}

func osrmProfileFor(profile models.Profile) (string, error) {
	switch profile {
	case models.ProfileDrive:
		return "car", nil
	case models.ProfileWalk:
		return "foot", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedProfile, profile)
	}
}
