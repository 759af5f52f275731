package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/UnknownOlympus/exodus/internal/models"
	"golang.org/x/time/rate"
)

// CensusBaseURL is the US Census Bureau one-line address endpoint.
const CensusBaseURL = "https://geocoding.geo.census.gov/geocoder/locations/onelineaddress"

// CensusProvider implements geocoding using the US Census Bureau geocoder. It only knows
// US addresses, so the country restriction is implicit.
type CensusProvider struct {
	client    HTTPClient
	baseURL   string
	benchmark string
	log       *slog.Logger
	limiter   *rate.Limiter
}

// Common errors for Census provider.
var (
	ErrCensusEmptyResponse = fmt.Errorf("%w: census geocoder returned no address matches", models.ErrNotFound)
	ErrCensusEmptyAddress  = errors.New("census provider got empty address")
)

type censusResponse struct {
	Result struct {
		AddressMatches []struct {
			MatchedAddress string `json:"matchedAddress"`
			Coordinates    struct {
				X float64 `json:"x"` // longitude
				Y float64 `json:"y"` // latitude
			} `json:"coordinates"`
		} `json:"addressMatches"`
	} `json:"result"`
}

// NewCensusProvider creates a new Census geocoding provider.
func NewCensusProvider(rateLimit int, log *slog.Logger) *CensusProvider {
	const timeout = 10 * time.Second

	return NewCensusProviderWithClient(&http.Client{Timeout: timeout}, newLimiter(rateLimit), log)
}

// NewCensusProviderWithClient allows injecting custom HTTP client.
func NewCensusProviderWithClient(client HTTPClient, limiter *rate.Limiter, log *slog.Logger) *CensusProvider {
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}

	return &CensusProvider{
		client:    client,
		baseURL:   CensusBaseURL,
		benchmark: "Public_AR_Current",
		log:       log,
		limiter:   limiter,
	}
}

// Geocode converts address into a point using the Census geocoder.
func (cp *CensusProvider) Geocode(ctx context.Context, address string) (*models.GeoPoint, error) {
	if address == "" {
		return nil, fmt.Errorf("%w: %w", models.ErrNotFound, ErrCensusEmptyAddress)
	}

	if err := cp.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit exceeded: %w", err)
	}

	cp.log.DebugContext(ctx, "Geocoding using Census", "address", address)

	reqURL, err := url.Parse(cp.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	query := reqURL.Query()
	query.Set("address", address)
	query.Set("benchmark", cp.benchmark)
	query.Set("format", "json")
	reqURL.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := cp.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute geocoding request: %w", models.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %w", models.ErrUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		cp.log.ErrorContext(ctx, "Census API error", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("%w: census API returned status %d", models.ErrUnavailable, resp.StatusCode)
	}

	var result censusResponse
	if err = json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode census response: %w", models.ErrUnavailable, err)
	}

	matches := result.Result.AddressMatches
	if len(matches) == 0 {
		return nil, ErrCensusEmptyResponse
	}

	point := models.GeoPoint{Latitude: matches[0].Coordinates.Y, Longitude: matches[0].Coordinates.X}
	if err = point.Validate(); err != nil {
		return nil, err
	}

	cp.log.DebugContext(ctx, "Census found result", "matched", matches[0].MatchedAddress)

	return &point, nil
}
