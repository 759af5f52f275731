package routing_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/UnknownOlympus/exodus/internal/models"
	"github.com/UnknownOlympus/exodus/internal/routing"
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

const osrmOK = `{
	"code": "Ok",
	"routes": [{
		"distance": 16093.4,
		"duration": 1230,
		"geometry": {"coordinates": [[-118.2, 34.0], [-118.3, 34.1]]},
		"legs": [{"steps": [
			{"distance": 500, "name": "Main St", "maneuver": {"type": "depart", "modifier": "north"}},
			{"distance": 0, "name": "", "maneuver": {"instruction": "You have arrived", "type": "arrive"}}
		]}]
	}]
}`

func TestOSRMRouter_Route(t *testing.T) {
	origin := models.GeoPoint{Latitude: 34.0, Longitude: -118.2}
	dest := models.GeoPoint{Latitude: 34.1, Longitude: -118.3}

	t.Run("successful drive route", func(t *testing.T) {
		var gotURL string
		client := &mockHTTPClient{doFunc: func(req *http.Request) (*http.Response, error) {
			gotURL = req.URL.String()
			return jsonResponse(http.StatusOK, osrmOK), nil
		}}
		router := routing.NewOSRMRouterWithClient(client, "http://osrm.local/", nil, slog.Default())

		route, err := router.Route(t.Context(), origin, dest, models.ProfileDrive)

		require.NoError(t, err)
		assert.Contains(t, gotURL, "http://osrm.local/route/v1/car/-118.200000,34.000000;-118.300000,34.100000")
		assert.Contains(t, gotURL, "geometries=geojson")
		assert.Contains(t, gotURL, "overview=full")
		assert.Contains(t, gotURL, "steps=true")
		assert.InDelta(t, 10.0, route.DistanceMi, 1e-9)
		assert.InDelta(t, 20.5, route.DurationMin, 1e-9)
		require.Len(t, route.Geometry, 2)
		assert.InDelta(t, 34.1, route.Geometry[1].Latitude, 1e-9)
		assert.InDelta(t, -118.3, route.Geometry[1].Longitude, 1e-9)
		require.Len(t, route.Steps, 2)
		assert.Equal(t, "Head north onto Main St", route.Steps[0].Instruction)
		assert.Equal(t, "You have arrived", route.Steps[1].Instruction)
	})

	t.Run("walk uses foot profile", func(t *testing.T) {
		client := &mockHTTPClient{doFunc: func(req *http.Request) (*http.Response, error) {
			assert.Contains(t, req.URL.Path, "/route/v1/foot/")
			return jsonResponse(http.StatusOK, osrmOK), nil
		}}
		router := routing.NewOSRMRouterWithClient(client, "", nil, slog.Default())

		route, err := router.Route(t.Context(), origin, dest, models.ProfileWalk)

		require.NoError(t, err)
		assert.Equal(t, models.ProfileWalk, route.Profile)
	})

	t.Run("non-Ok code", func(t *testing.T) {
		client := &mockHTTPClient{doFunc: func(_ *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusOK, `{"code":"NoRoute","routes":[]}`), nil
		}}
		router := routing.NewOSRMRouterWithClient(client, "", nil, slog.Default())

		_, err := router.Route(t.Context(), origin, dest, models.ProfileDrive)

		require.ErrorIs(t, err, routing.ErrOSRMBadCode)
		require.ErrorIs(t, err, models.ErrUnavailable)
	})

	t.Run("no routes", func(t *testing.T) {
		client := &mockHTTPClient{doFunc: func(_ *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusOK, `{"code":"Ok","routes":[]}`), nil
		}}
		router := routing.NewOSRMRouterWithClient(client, "", nil, slog.Default())

		_, err := router.Route(t.Context(), origin, dest, models.ProfileDrive)

		require.ErrorIs(t, err, routing.ErrOSRMNoRoute)
	})

	t.Run("server error", func(t *testing.T) {
		client := &mockHTTPClient{doFunc: func(_ *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusBadGateway, "bad gateway"), nil
		}}
		router := routing.NewOSRMRouterWithClient(client, "", nil, slog.Default())

		_, err := router.Route(t.Context(), origin, dest, models.ProfileDrive)

		require.ErrorIs(t, err, models.ErrUnavailable)
	})

	t.Run("transport error", func(t *testing.T) {
		client := &mockHTTPClient{doFunc: func(_ *http.Request) (*http.Response, error) {
			return nil, context.DeadlineExceeded
		}}
		router := routing.NewOSRMRouterWithClient(client, "", nil, slog.Default())

		_, err := router.Route(t.Context(), origin, dest, models.ProfileDrive)

		require.ErrorIs(t, err, models.ErrUnavailable)
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("transit is not routed live", func(t *testing.T) {
		client := &mockHTTPClient{doFunc: func(_ *http.Request) (*http.Response, error) {
			t.Fatal("no request expected")
			return nil, nil //nolint:nilnil // unreachable
		}}
		router := routing.NewOSRMRouterWithClient(client, "", nil, slog.Default())

		_, err := router.Route(t.Context(), origin, dest, models.ProfileTransit)

		require.ErrorIs(t, err, routing.ErrUnsupportedProfile)
	})
}
