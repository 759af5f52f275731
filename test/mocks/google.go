package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"googlemaps.github.io/maps"
)

// GoogleAPIClient mocks geocoding.GoogleAPIClient.
type GoogleAPIClient struct {
	mock.Mock
}

func (m *GoogleAPIClient) Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error) {
	args := m.Called(ctx, r)

	var results []maps.GeocodingResult
	if v := args.Get(0); v != nil {
		results = v.([]maps.GeocodingResult)
	}

	return results, args.Error(1)
}

// NewGoogleAPIClient creates a GoogleAPIClient whose expectations are asserted on cleanup.
func NewGoogleAPIClient(t TestingT) *GoogleAPIClient {
	m := &GoogleAPIClient{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// DirectionsClient mocks routing.DirectionsClient.
type DirectionsClient struct {
	mock.Mock
}

func (m *DirectionsClient) Directions(
	ctx context.Context,
	r *maps.DirectionsRequest,
) ([]maps.Route, []maps.GeocodedWaypoint, error) {
	args := m.Called(ctx, r)

	var routes []maps.Route
	if v := args.Get(0); v != nil {
		routes = v.([]maps.Route)
	}

	return routes, nil, args.Error(1)
}

// NewDirectionsClient creates a DirectionsClient whose expectations are asserted on cleanup.
func NewDirectionsClient(t TestingT) *DirectionsClient {
	m := &DirectionsClient{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
