package planner

import (
	"math"
	"slices"
	"strings"

	"github.com/UnknownOlympus/exodus/internal/geo"
	"github.com/UnknownOlympus/exodus/internal/models"
)

// DefaultThreatRadiusMi is the search radius for nearby threats.
const DefaultThreatRadiusMi = 100.0

const unnamedThreat = "Satellite Detection"

// Threat is a known hazard such as an active fire.
type Threat struct {
	Name  string           `json:"name"`
	Point *models.GeoPoint `json:"point,omitempty"`
	Acres float64          `json:"acres"`
}

// NearbyThreat is a threat within range of an origin.
type NearbyThreat struct {
	Threat
	DistanceMi float64 `json:"distance_mi"`
	Urgency    Urgency `json:"urgency"`
}

// NearbyThreats lists threats strictly closer than radiusMi to origin, nearest first. The
// distance is rounded to 0.1 mi and the urgency tier is applied to it. Threats without a
// location are skipped.
func NearbyThreats(origin models.GeoPoint, threats []Threat, radiusMi float64) []NearbyThreat {
	if radiusMi <= 0 {
		radiusMi = DefaultThreatRadiusMi
	}

	nearby := make([]NearbyThreat, 0)
	for _, threat := range threats {
		if threat.Point == nil {
			continue
		}

		distance := geo.DistanceMiles(origin, *threat.Point)
		if distance >= radiusMi {
			continue
		}
		if strings.TrimSpace(threat.Name) == "" {
			threat.Name = unnamedThreat
		}
		if math.IsNaN(threat.Acres) || threat.Acres < 0 {
			threat.Acres = 0
		}

		rounded := math.RoundToEven(distance*10) / 10 //nolint:mnd // one decimal
		nearby = append(nearby, NearbyThreat{Threat: threat, DistanceMi: rounded, Urgency: UrgencyFor(rounded)})
	}

	slices.SortStableFunc(nearby, func(a, b NearbyThreat) int {
		switch {
		case a.DistanceMi < b.DistanceMi:
			return -1
		case a.DistanceMi > b.DistanceMi:
			return 1
		default:
			return 0
		}
	})

	return nearby
}
