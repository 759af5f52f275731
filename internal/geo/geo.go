// Package geo holds the great-circle helpers every other component builds on.
package geo

import (
	"math"

	"github.com/UnknownOlympus/exodus/internal/models"
)

const (
	// EarthRadiusKm is the mean Earth radius used by Distance.
	EarthRadiusKm = 6371.0
	// KmToMiles converts kilometres to statute miles.
	KmToMiles = 0.621371

	degreesPerSector = 45.0
	fullCircle       = 360.0
	halfCircle       = 180.0
)

// directions is indexed by round(bearing/45) mod 8.
//
//nolint:gochecknoglobals // fixed compass table
var directions = [...]string{
	"North", "Northeast", "East", "Southeast", "South", "Southwest", "West", "Northwest",
}

// Distance returns the haversine distance between a and b in kilometres.
func Distance(a, b models.GeoPoint) float64 {
	lat1, lat2 := radians(a.Latitude), radians(b.Latitude)
	dLat := lat2 - lat1
	dLon := radians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// DistanceMiles returns Distance converted to miles.
func DistanceMiles(a, b models.GeoPoint) float64 {
	return Distance(a, b) * KmToMiles
}

// Bearing returns the initial compass bearing from a to b in [0, 360).
func Bearing(a, b models.GeoPoint) float64 {
	lat1, lat2 := radians(a.Latitude), radians(b.Latitude)
	dLon := radians(b.Longitude - a.Longitude)

	x := math.Sin(dLon) * math.Cos(lat2)
	y := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	return normalize(degrees(math.Atan2(x, y)))
}

// EvacuationDirection returns the evacuation heading: the threat-to-subject bearing turned
// by 180 degrees, with its compass label.
func EvacuationDirection(threat, subject models.GeoPoint) (string, float64) {
	bearing := normalize(Bearing(threat, subject) + halfCircle)

	return CompassLabel(bearing), bearing
}

// CompassLabel maps a bearing onto one of the eight compass points. Exact sector
// boundaries round half to even.
func CompassLabel(bearing float64) string {
	idx := int(math.RoundToEven(normalize(bearing)/degreesPerSector)) % len(directions)

	return directions[idx]
}

func normalize(deg float64) float64 {
	deg = math.Mod(deg, fullCircle)
	if deg < 0 {
		deg += fullCircle
	}
	if deg >= fullCircle {
		deg = 0
	}

	return deg
}

func radians(deg float64) float64 { return deg * math.Pi / halfCircle }

func degrees(rad float64) float64 { return rad * halfCircle / math.Pi }
