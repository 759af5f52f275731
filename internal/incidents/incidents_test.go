package incidents_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/UnknownOlympus/exodus/internal/cache"
	"github.com/UnknownOlympus/exodus/internal/incidents"
	"github.com/UnknownOlympus/exodus/internal/models"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockHTTPClient struct {
	doFunc func(req *http.Request) (*http.Response, error)
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return m.doFunc(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     make(http.Header),
	}
}

type countingSource struct {
	calls     int
	lastID    int
	incidents []models.Incident
	err       error
}

func (c *countingSource) CountyIncidents(_ context.Context, countyID int) ([]models.Incident, error) {
	c.calls++
	c.lastID = countyID
	return c.incidents, c.err
}

func TestStateFromAddress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		address string
		want    string
		ok      bool
	}{
		{"Charlotte, NC", "NC", true},
		{"123 Main St, Portland, OR 97201", "OR", true},
		{"in charlotte, nc", "NC", true},
		{"Paris, France", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := incidents.StateFromAddress(tt.address)
		assert.Equal(t, tt.ok, ok, tt.address)
		assert.Equal(t, tt.want, got, tt.address)
	}
}

func TestCountyLookup(t *testing.T) {
	t.Parallel()

	county, ok := incidents.CountyForAddress(" Mint Hill , NC")
	require.True(t, ok)
	assert.Equal(t, "mecklenburg", county)

	id, ok := incidents.CountyID(county)
	require.True(t, ok)
	assert.Equal(t, 56, id)

	id, ok = incidents.CountyID("Cumberland")
	require.True(t, ok)
	assert.Equal(t, 23, id)

	_, ok = incidents.CountyForAddress("Boone, NC")
	assert.False(t, ok)
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	t.Run("checks every synonym", func(t *testing.T) {
		got := incidents.Normalize(map[string]any{
			"Description": "Vehicle fire",
			"Roadway":     "I-77 N",
			"Severity":    float64(3),
			"status":      "Active",
		})
		assert.Equal(t, models.Incident{Title: "Vehicle fire", Road: "I-77 N", Severity: "3", Status: "Active"}, got)
	})

	t.Run("earlier synonym wins, empty values are skipped", func(t *testing.T) {
		got := incidents.Normalize(map[string]any{
			"title":       "",
			"Title":       "Lane closure",
			"description": "ignored",
			"road":        nil,
			"Road":        "US-74",
		})
		assert.Equal(t, "Lane closure", got.Title)
		assert.Equal(t, "US-74", got.Road)
	})

	t.Run("missing title defaults", func(t *testing.T) {
		got := incidents.Normalize(map[string]any{})
		assert.Equal(t, models.Incident{Title: "Incident"}, got)
	})
}

func TestNCDOTClient_CountyIncidents(t *testing.T) {
	t.Parallel()

	t.Run("normalizes a list", func(t *testing.T) {
		t.Parallel()
		client := &mockHTTPClient{doFunc: func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "http://tims.local/v1/counties/56/incidents", req.URL.String())
			return jsonResponse(http.StatusOK, `[{"title":"Crash","road":"I-85"},{"Description":"Debris"},"junk"]`), nil
		}}
		nc := incidents.NewNCDOTClientWithClient(client, "http://tims.local/v1/", nil, slog.Default())

		got, err := nc.CountyIncidents(t.Context(), 56)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Crash", got[0].Title)
		assert.Equal(t, "Debris", got[1].Title)
	})

	t.Run("non-list body is empty", func(t *testing.T) {
		t.Parallel()
		client := &mockHTTPClient{doFunc: func(_ *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusOK, `{"message":"maintenance"}`), nil
		}}
		nc := incidents.NewNCDOTClientWithClient(client, "", nil, slog.Default())

		got, err := nc.CountyIncidents(t.Context(), 81)

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("server error is unavailable", func(t *testing.T) {
		t.Parallel()
		client := &mockHTTPClient{doFunc: func(_ *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusServiceUnavailable, ""), nil
		}}
		nc := incidents.NewNCDOTClientWithClient(client, "", nil, slog.Default())

		_, err := nc.CountyIncidents(t.Context(), 81)

		require.ErrorIs(t, err, models.ErrUnavailable)
	})
}

func TestFeed_ForAddress(t *testing.T) {
	t.Parallel()

	t.Run("north carolina city", func(t *testing.T) {
		t.Parallel()
		source := &countingSource{incidents: []models.Incident{{Title: "Crash"}}}
		feed := incidents.NewFeed(source, nil, 0, slog.Default())

		report, err := feed.ForAddress(t.Context(), "Raleigh, NC")

		require.NoError(t, err)
		assert.Equal(t, 81, source.lastID)
		assert.Equal(t, "wake", report.County)
		assert.Equal(t, "NC", report.State)
		assert.Len(t, report.Incidents, 1)
	})

	t.Run("other states have no feed", func(t *testing.T) {
		t.Parallel()
		source := &countingSource{}
		feed := incidents.NewFeed(source, nil, 0, slog.Default())

		_, err := feed.ForAddress(t.Context(), "Los Angeles, CA")

		require.ErrorIs(t, err, incidents.ErrNoFeed)
		require.ErrorIs(t, err, models.ErrNotFound)
		assert.Zero(t, source.calls)
	})

	t.Run("unknown city", func(t *testing.T) {
		t.Parallel()
		feed := incidents.NewFeed(&countingSource{}, nil, 0, slog.Default())

		_, err := feed.ForAddress(t.Context(), "Boone, NC")

		require.ErrorIs(t, err, incidents.ErrUnknownCounty)
	})

	t.Run("successes are cached until the ttl passes", func(t *testing.T) {
		t.Parallel()
		clock := clockwork.NewFakeClock()
		memo := cache.NewMemo(cache.NewMemoryStore(clock), 0, slog.Default(), nil)
		source := &countingSource{incidents: []models.Incident{{Title: "Crash"}}}
		feed := incidents.NewFeed(source, memo, 0, slog.Default())

		_, err := feed.ForAddress(t.Context(), "Durham, NC")
		require.NoError(t, err)
		_, err = feed.ForAddress(t.Context(), "Durham, NC")
		require.NoError(t, err)
		assert.Equal(t, 1, source.calls)

		clock.Advance(incidents.DefaultTTL + 1)
		_, err = feed.ForAddress(t.Context(), "Durham, NC")
		require.NoError(t, err)
		assert.Equal(t, 2, source.calls)
	})

	t.Run("failures are not cached", func(t *testing.T) {
		t.Parallel()
		memo := cache.NewMemo(cache.NewMemoryStore(clockwork.NewFakeClock()), 0, slog.Default(), nil)
		source := &countingSource{err: models.ErrUnavailable}
		feed := incidents.NewFeed(source, memo, 0, slog.Default())

		_, err := feed.ForAddress(t.Context(), "Durham, NC")
		require.ErrorIs(t, err, models.ErrUnavailable)
		_, err = feed.ForAddress(t.Context(), "Durham, NC")
		require.ErrorIs(t, err, models.ErrUnavailable)
		assert.Equal(t, 2, source.calls)
	})
}
