package geo

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/UnknownOlympus/exodus/internal/models"
)

//nolint:gochecknoglobals // compiled once
var pointRe = regexp.MustCompile(`(?i)POINT\s*\(\s*([-0-9.]+)\s+([-0-9.]+)\s*\)`)

// ParsePointWKT parses a WKT or EWKT point such as "SRID=4326;POINT(-118.2 34.0)".
// WKT stores longitude first.
func ParsePointWKT(wkt string) (models.GeoPoint, error) {
	text := strings.TrimSpace(wkt)
	if idx := strings.Index(text, ";"); idx >= 0 && strings.HasPrefix(strings.ToUpper(text), "SRID=") {
		text = text[idx+1:]
	}

	match := pointRe.FindStringSubmatch(text)
	if match == nil {
		return models.GeoPoint{}, fmt.Errorf("%w: not a WKT point: %q", models.ErrDataIntegrity, wkt)
	}

	lon, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return models.GeoPoint{}, fmt.Errorf("%w: invalid longitude %q", models.ErrDataIntegrity, match[1])
	}
	lat, err := strconv.ParseFloat(match[2], 64)
	if err != nil {
		return models.GeoPoint{}, fmt.Errorf("%w: invalid latitude %q", models.ErrDataIntegrity, match[2])
	}

	point := models.GeoPoint{Latitude: lat, Longitude: lon}
	if err = point.Validate(); err != nil {
		return models.GeoPoint{}, err
	}

	return point, nil
}
