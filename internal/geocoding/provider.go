package geocoding

import (
	"context"
	"net/http"

	"github.com/UnknownOlympus/exodus/internal/models"
)

// Provider is an interface that defines a method for geocoding an address.
// The Geocode method takes a context and an address string as input,
// and returns the corresponding point or an error wrapping models.ErrNotFound
// or models.ErrUnavailable.
type Provider interface {
	Geocode(ctx context.Context, address string) (*models.GeoPoint, error)
}

// HTTPClient defines the interface for making HTTP requests.
// This allows for easy mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// CountryCode restricts every remote lookup to the United States.
const CountryCode = "us"
