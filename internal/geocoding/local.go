package geocoding

import (
	"context"
	"fmt"
	"strings"

	"github.com/UnknownOlympus/exodus/internal/models"
)

// Gazetteer is a lookup of well-known place names.
type Gazetteer interface {
	Lookup(name string) (models.SafeZone, bool)
}

// LocalProvider resolves addresses whose locality is a known city without any network call.
// The locality is the first comma-separated part of the address.
type LocalProvider struct {
	places Gazetteer
}

// NewLocalProvider creates a LocalProvider over places.
func NewLocalProvider(places Gazetteer) *LocalProvider {
	return &LocalProvider{places: places}
}

func (lp *LocalProvider) Geocode(_ context.Context, address string) (*models.GeoPoint, error) {
	locality := Locality(address)
	if zone, ok := lp.places.Lookup(locality); ok {
		point := zone.Point
		return &point, nil
	}

	return nil, fmt.Errorf("%w: %q is not a known city", models.ErrNotFound, locality)
}

// Locality returns the lowercased first comma-separated part of an address.
func Locality(address string) string {
	first, _, _ := strings.Cut(address, ",")
	return strings.ToLower(strings.TrimSpace(first))
}
