package routing_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/UnknownOlympus/exodus/internal/models"
	"github.com/UnknownOlympus/exodus/internal/routing"
	"github.com/UnknownOlympus/exodus/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"
)

func TestGoogleRouter_Route(t *testing.T) {
	origin := models.GeoPoint{Latitude: 34.0, Longitude: -118.2}
	dest := models.GeoPoint{Latitude: 34.1, Longitude: -118.3}

	t.Run("successful walk route", func(t *testing.T) {
		client := mocks.NewDirectionsClient(t)
		router := routing.NewGoogleRouter(client, slog.Default())

		route := maps.Route{
			Legs: []*maps.Leg{{
				Distance: maps.Distance{Meters: 3219},
				Duration: 40 * time.Minute,
				Steps: []*maps.Step{
					{HTMLInstructions: "Head <b>north</b> on <b>Main St</b>", Distance: maps.Distance{Meters: 1609}},
					{HTMLInstructions: "<div></div>", Distance: maps.Distance{Meters: 10}},
				},
			}},
			OverviewPolyline: maps.Polyline{Points: maps.Encode([]maps.LatLng{
				{Lat: 34.0, Lng: -118.2},
				{Lat: 34.1, Lng: -118.3},
			})},
		}
		client.On("Directions", mock.Anything, mock.MatchedBy(func(r *maps.DirectionsRequest) bool {
			return r.Mode == maps.TravelModeWalking && r.Origin == "34.000000,-118.200000"
		})).Return([]maps.Route{route}, nil).Once()

		result, err := router.Route(t.Context(), origin, dest, models.ProfileWalk)

		require.NoError(t, err)
		assert.InDelta(t, 2.0, result.DistanceMi, 1e-9)
		assert.InDelta(t, 40.0, result.DurationMin, 1e-9)
		require.Len(t, result.Steps, 1)
		assert.Equal(t, "Head north on Main St", result.Steps[0].Instruction)
		require.Len(t, result.Geometry, 2)
		assert.InDelta(t, 34.1, result.Geometry[1].Latitude, 1e-5)
	})

	t.Run("api error", func(t *testing.T) {
		client := mocks.NewDirectionsClient(t)
		router := routing.NewGoogleRouter(client, slog.Default())
		client.On("Directions", mock.Anything, mock.Anything).Return(nil, assert.AnError).Once()

		_, err := router.Route(t.Context(), origin, dest, models.ProfileDrive)

		require.ErrorIs(t, err, assert.AnError)
		require.ErrorIs(t, err, models.ErrUnavailable)
	})

	t.Run("no routes", func(t *testing.T) {
		client := mocks.NewDirectionsClient(t)
		router := routing.NewGoogleRouter(client, slog.Default())
		client.On("Directions", mock.Anything, mock.Anything).Return(nil, nil).Once()

		_, err := router.Route(t.Context(), origin, dest, models.ProfileDrive)

		require.ErrorIs(t, err, routing.ErrGoogleNoRoute)
	})

	t.Run("hybrid is not routed live", func(t *testing.T) {
		client := mocks.NewDirectionsClient(t)
		router := routing.NewGoogleRouter(client, slog.Default())

		_, err := router.Route(t.Context(), origin, dest, models.ProfileHybrid)

		require.ErrorIs(t, err, routing.ErrUnsupportedProfile)
	})
}
