package incidents

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/UnknownOlympus/exodus/internal/cache"
	"github.com/UnknownOlympus/exodus/internal/models"
)

// DefaultTTL is how long a county feed is reused.
const DefaultTTL = 120 * time.Second

// Errors for addresses without a live feed.
var (
	ErrNoFeed        = fmt.Errorf("%w: no live incident feed for this state", models.ErrNotFound)
	ErrUnknownCounty = fmt.Errorf("%w: county lookup not available for this address", models.ErrNotFound)
)

// CountySource returns incidents by county id.
type CountySource interface {
	CountyIncidents(ctx context.Context, countyID int) ([]models.Incident, error)
}

// Report is the live incident list of one county.
type Report struct {
	State     string            `json:"state"`
	County    string            `json:"county"`
	Incidents []models.Incident `json:"incidents"`
}

// Feed resolves the jurisdiction of an address and returns its live incidents.
// Only North Carolina publishes an open feed.
type Feed struct {
	source CountySource
	memo   *cache.Memo
	ttl    time.Duration
	log    *slog.Logger
}

// NewFeed creates a Feed. A nil memo disables caching; a non-positive ttl uses DefaultTTL.
func NewFeed(source CountySource, memo *cache.Memo, ttl time.Duration, log *slog.Logger) *Feed {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Feed{source: source, memo: memo, ttl: ttl, log: log}
}

// ForAddress returns the incidents for the county of address. Addresses outside North
// Carolina return ErrNoFeed and unknown cities return ErrUnknownCounty.
func (f *Feed) ForAddress(ctx context.Context, address string) (*Report, error) {
	state, ok := StateFromAddress(address)
	if !ok || state != "NC" {
		return nil, fmt.Errorf("%w: %q", ErrNoFeed, state)
	}

	county, ok := CountyForAddress(address)
	if !ok {
		return nil, ErrUnknownCounty
	}
	countyID, ok := CountyID(county)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCounty, county)
	}

	incidents, err := f.countyIncidents(ctx, countyID)
	if err != nil {
		return nil, err
	}

	f.log.DebugContext(ctx, "Fetched live incidents", "county", county, "count", len(incidents))

	return &Report{State: state, County: county, Incidents: incidents}, nil
}

func (f *Feed) countyIncidents(ctx context.Context, countyID int) ([]models.Incident, error) {
	if f.memo == nil {
		return f.source.CountyIncidents(ctx, countyID)
	}

	key := "exodus:ncdot_incidents:" + strconv.Itoa(countyID)

	return cache.RememberFor(ctx, f.memo, key, f.ttl, func(ctx context.Context) ([]models.Incident, error) {
		return f.source.CountyIncidents(ctx, countyID)
	})
}
