package models

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

// GeoPoint represents a geographical point in decimal degrees.
type GeoPoint struct {
	Latitude  float64 `json:"lat" validate:"latitude"`  // Latitude in [-90, 90].
	Longitude float64 `json:"lon" validate:"longitude"` // Longitude in [-180, 180].
}

//nolint:gochecknoglobals // validator caches struct metadata, one instance per process
var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validate reports ErrDataIntegrity when the point lies outside the valid coordinate ranges.
func (p GeoPoint) Validate() error {
	validateOnce.Do(func() { validate = validator.New() })

	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: invalid point (%f, %f): %w", ErrDataIntegrity, p.Latitude, p.Longitude, err)
	}

	return nil
}

// Offset returns the point shifted by the given number of degrees.
func (p GeoPoint) Offset(dLat, dLon float64) GeoPoint {
	return GeoPoint{Latitude: p.Latitude + dLat, Longitude: p.Longitude + dLon}
}

// Key formats the point as a stable "lat,lon" key with four decimals.
func (p GeoPoint) Key() string {
	return fmt.Sprintf("%.4f,%.4f", p.Latitude, p.Longitude)
}
