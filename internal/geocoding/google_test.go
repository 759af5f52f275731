package geocoding_test

import (
	"log/slog"
	"testing"

	"github.com/UnknownOlympus/exodus/internal/geocoding"
	"github.com/UnknownOlympus/exodus/internal/models"
	"github.com/UnknownOlympus/exodus/test/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"
)

func googleRequest(address string) *maps.GeocodingRequest {
	return &maps.GeocodingRequest{
		Address:    address,
		Components: map[maps.Component]string{maps.ComponentCountry: "us"},
	}
}

func TestGeocode(t *testing.T) {
	mockClient := mocks.NewGoogleAPIClient(t)
	provider := geocoding.NewGoogleProvider(mockClient, slog.Default())
	ctx := t.Context()

	t.Run("api returns error", func(t *testing.T) {
		address := "some invalid place"

		mockClient.On("Geocode", ctx, googleRequest(address)).Return(nil, assert.AnError).Once()

		_, err := provider.Geocode(ctx, address)

		require.ErrorIs(t, err, assert.AnError)
		require.ErrorIs(t, err, models.ErrUnavailable)
	})

	t.Run("api return empty response", func(t *testing.T) {
		address := "some unknown place"

		mockClient.On("Geocode", ctx, googleRequest(address)).Return(nil, nil).Once()

		point, err := provider.Geocode(ctx, address)

		require.Nil(t, point)
		require.ErrorIs(t, err, geocoding.ErrEmptyResponse)
		require.ErrorIs(t, err, models.ErrNotFound)
	})

	t.Run("successfull geocoding", func(t *testing.T) {
		address := "1600 Pennsylvania Ave NW, Washington, DC"
		mockReponse := []maps.GeocodingResult{
			{Geometry: maps.AddressGeometry{Location: maps.LatLng{Lat: 38.8977, Lng: -77.0365}}},
		}

		mockClient.On("Geocode", ctx, googleRequest(address)).Return(mockReponse, nil).Once()

		point, err := provider.Geocode(ctx, address)

		require.NoError(t, err)
		require.InEpsilon(t, 38.8977, point.Latitude, 0.0001)
		require.InEpsilon(t, -77.0365, point.Longitude, 0.0001)
	})
}
