package incidents

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/UnknownOlympus/exodus/internal/models"
	"golang.org/x/time/rate"
)

// NCDOTBaseURL is the NC DOT TIMS traffic API.
const NCDOTBaseURL = "https://eapps.ncdot.gov/services/traffic-prod/v1"

const ncdotAgent = "Exodus-Evacuation-Planner/1.0"

// HTTPClient defines the interface for making HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// NCDOTClient reads county incidents from NC DOT TIMS. No API key is required.
type NCDOTClient struct {
	client  HTTPClient
	baseURL string
	limiter *rate.Limiter
	log     *slog.Logger
}

// NewNCDOTClient creates a client against baseURL ("" means the public API).
func NewNCDOTClient(baseURL string, timeout time.Duration, log *slog.Logger) *NCDOTClient {
	return NewNCDOTClientWithClient(&http.Client{Timeout: timeout}, baseURL, nil, log)
}

// NewNCDOTClientWithClient allows injecting custom HTTP client and limiter.
func NewNCDOTClientWithClient(client HTTPClient, baseURL string, limiter *rate.Limiter, log *slog.Logger) *NCDOTClient {
	if baseURL == "" {
		baseURL = NCDOTBaseURL
	}
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}

	return &NCDOTClient{client: client, baseURL: strings.TrimRight(baseURL, "/"), limiter: limiter, log: log}
}

// CountyIncidents returns the normalized incidents of a TIMS county. A body that is not a
// JSON array is read as no incidents.
func (c *NCDOTClient) CountyIncidents(ctx context.Context, countyID int) ([]models.Incident, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit exceeded: %w", err)
	}

	reqURL := fmt.Sprintf("%s/counties/%d/incidents", c.baseURL, countyID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", ncdotAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %w", models.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: ncdot returned status %d", models.ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %w", models.ErrUnavailable, err)
	}

	var decoded any
	if err = json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("%w: failed to decode incidents: %w", models.ErrUnavailable, err)
	}

	records, ok := decoded.([]any)
	if !ok {
		c.log.DebugContext(ctx, "Incident feed did not return a list", "county_id", countyID)
		return []models.Incident{}, nil
	}

	incidents := make([]models.Incident, 0, len(records))
	for _, record := range records {
		if fields, isMap := record.(map[string]any); isMap {
			incidents = append(incidents, Normalize(fields))
		}
	}

	return incidents, nil
}
