package models

// SafeZone is a named city-level destination candidate.
type SafeZone struct {
	Name  string   `json:"name"`
	Point GeoPoint `json:"point"`
}

// Highway is a named corridor approximated by an ordered list of path samples.
type Highway struct {
	Code   string     `json:"code"`   // Short designation, e.g. "I-95".
	Name   string     `json:"name"`   // Full name, e.g. "Interstate 95".
	States []string   `json:"states"` // Two-letter state codes the corridor crosses.
	Path   []GeoPoint `json:"path"`
}

// HasState reports whether the highway crosses the given state.
func (h Highway) HasState(state string) bool {
	for _, s := range h.States {
		if s == state {
			return true
		}
	}

	return false
}

// ZoneCandidate is a safe zone paired with its distance from the query origin.
type ZoneCandidate struct {
	Name       string   `json:"name"`
	DistanceKm float64  `json:"distance_km"`
	Point      GeoPoint `json:"point"`
}

// HighwayMatch is the nearest highway vertex to the query origin.
type HighwayMatch struct {
	Name       string   `json:"name"`
	DistanceKm float64  `json:"distance_km"`
	Point      GeoPoint `json:"point"`
}
