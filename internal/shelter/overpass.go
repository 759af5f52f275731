package shelter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/UnknownOlympus/exodus/internal/models"
	"golang.org/x/time/rate"
)

// Overpass defaults.
const (
	DefaultRadiusM = 15000
	DefaultTimeout = 12 * time.Second
	overpassAgent  = "Exodus-Evacuation-Planner/1.0"
	serverTimeoutS = 10
)

// DefaultEndpoints lists the public Overpass interpreters in priority order.
func DefaultEndpoints() []string {
	return []string{
		"https://overpass-api.de/api/interpreter",
		"https://api.letsopen.de/api/interpreter",
	}
}

// ErrNoEndpoint is returned when every Overpass endpoint failed.
var ErrNoEndpoint = fmt.Errorf("%w: all overpass endpoints failed", models.ErrUnavailable)

// HTTPClient defines the interface for making HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// OverpassClient queries OpenStreetMap facilities around a point.
type OverpassClient struct {
	client    HTTPClient
	endpoints []string
	limiter   *rate.Limiter
	log       *slog.Logger
}

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

type overpassElement struct {
	ID     int64    `json:"id"`
	Lat    *float64 `json:"lat"`
	Lon    *float64 `json:"lon"`
	Center *struct {
		Lat *float64 `json:"lat"`
		Lon *float64 `json:"lon"`
	} `json:"center"`
	Tags map[string]string `json:"tags"`
}

// NewOverpassClient creates a client over the given endpoints (empty means the defaults).
func NewOverpassClient(endpoints []string, timeout time.Duration, log *slog.Logger) *OverpassClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return NewOverpassClientWithClient(&http.Client{Timeout: timeout}, endpoints, rate.NewLimiter(1, 1), log)
}

// NewOverpassClientWithClient allows injecting custom HTTP client and limiter.
func NewOverpassClientWithClient(
	client HTTPClient,
	endpoints []string,
	limiter *rate.Limiter,
	log *slog.Logger,
) *OverpassClient {
	if len(endpoints) == 0 {
		endpoints = DefaultEndpoints()
	}
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}

	return &OverpassClient{client: client, endpoints: endpoints, limiter: limiter, log: log}
}

// Facilities returns shelters, social facilities and hospitals within radiusM metres of
// center. Endpoints are tried in order and the first success wins.
func (oc *OverpassClient) Facilities(
	ctx context.Context,
	center models.GeoPoint,
	radiusM int,
) ([]models.Facility, error) {
	if radiusM <= 0 {
		radiusM = DefaultRadiusM
	}
	query := BuildQuery(center, radiusM)

	var lastErr error
	for _, endpoint := range oc.endpoints {
		facilities, err := oc.query(ctx, endpoint, query)
		if err == nil {
			oc.log.DebugContext(ctx, "Overpass query succeeded", "endpoint", endpoint, "count", len(facilities))
			return facilities, nil
		}
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %w", models.ErrUnavailable, ctx.Err())
		}

		oc.log.WarnContext(ctx, "Overpass endpoint failed", "endpoint", endpoint, "error", err)
		lastErr = err
	}

	return nil, fmt.Errorf("%w: %w", ErrNoEndpoint, lastErr)
}

func (oc *OverpassClient) query(ctx context.Context, endpoint, query string) ([]models.Facility, error) {
	if err := oc.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit exceeded: %w", err)
	}

	form := url.Values{"data": {query}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", overpassAgent)

	resp, err := oc.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var decoded overpassResponse
	if err = json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	facilities := make([]models.Facility, 0, len(decoded.Elements))
	for _, elem := range decoded.Elements {
		facilities = append(facilities, models.Facility{ID: elem.ID, Point: elem.point(), Tags: elem.Tags})
	}

	return facilities, nil
}

// point uses node coordinates, or the center of an area-shaped element.
func (e overpassElement) point() *models.GeoPoint {
	if e.Lat != nil && e.Lon != nil {
		return &models.GeoPoint{Latitude: *e.Lat, Longitude: *e.Lon}
	}
	if e.Center != nil && e.Center.Lat != nil && e.Center.Lon != nil {
		return &models.GeoPoint{Latitude: *e.Center.Lat, Longitude: *e.Center.Lon}
	}

	return nil
}

// BuildQuery renders the Overpass QL query for shelters around center.
func BuildQuery(center models.GeoPoint, radiusM int) string {
	around := fmt.Sprintf("(around:%d,%s,%s)", radiusM,
		strconv.FormatFloat(center.Latitude, 'f', -1, 64),
		strconv.FormatFloat(center.Longitude, 'f', -1, 64))

	var b strings.Builder
	fmt.Fprintf(&b, "[out:json][timeout:%d];(", serverTimeoutS)
	b.WriteString(`node["amenity"="shelter"]` + around + ";")
	b.WriteString(`node["social_facility"]` + around + ";")
	b.WriteString(`node["amenity"="hospital"]` + around + ";")
	b.WriteString(`way["amenity"="shelter"]` + around + ";")
	b.WriteString(`way["social_facility"]` + around + ";")
	b.WriteString(");out center;")

	return b.String()
}
