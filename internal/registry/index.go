// Package registry holds the immutable safe-zone and highway tables and the nearest-candidate
// searches over them. Indexes are built once and are safe for concurrent reads.
package registry

import (
	"slices"
	"strings"

	"github.com/UnknownOlympus/exodus/internal/geo"
	"github.com/UnknownOlympus/exodus/internal/models"
)

// SafeZoneIndex searches an ordered list of safe zones.
type SafeZoneIndex struct {
	zones  []models.SafeZone
	byName map[string]int
}

// NewSafeZoneIndex builds an index over a private copy of zones. Later duplicates of a name
// overwrite the point but keep the first position.
func NewSafeZoneIndex(zones []models.SafeZone) *SafeZoneIndex {
	idx := &SafeZoneIndex{
		zones:  make([]models.SafeZone, 0, len(zones)),
		byName: make(map[string]int, len(zones)),
	}

	for _, zone := range zones {
		key := strings.ToLower(zone.Name)
		if pos, ok := idx.byName[key]; ok {
			idx.zones[pos].Point = zone.Point
			continue
		}
		idx.byName[key] = len(idx.zones)
		idx.zones = append(idx.zones, zone)
	}

	return idx
}

// DefaultSafeZones returns the index over the built-in US destination table.
func DefaultSafeZones() *SafeZoneIndex {
	return NewSafeZoneIndex(safeZones)
}

// Len returns the number of zones in the index.
func (s *SafeZoneIndex) Len() int { return len(s.zones) }

// Lookup finds a zone by case-insensitive name.
func (s *SafeZoneIndex) Lookup(name string) (models.SafeZone, bool) {
	pos, ok := s.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return models.SafeZone{}, false
	}

	return s.zones[pos], true
}

// Nearest returns up to topN zones at least excludeRadiusKm away from origin, closest first.
// Equal distances keep registry order. An empty result is not an error.
func (s *SafeZoneIndex) Nearest(origin models.GeoPoint, excludeRadiusKm float64, topN int) []models.ZoneCandidate {
	if topN <= 0 {
		return []models.ZoneCandidate{}
	}

	candidates := make([]models.ZoneCandidate, 0, len(s.zones))
	for _, zone := range s.zones {
		dist := geo.Distance(origin, zone.Point)
		if dist < excludeRadiusKm {
			continue
		}
		candidates = append(candidates, models.ZoneCandidate{Name: zone.Name, DistanceKm: dist, Point: zone.Point})
	}

	slices.SortStableFunc(candidates, func(a, b models.ZoneCandidate) int {
		switch {
		case a.DistanceKm < b.DistanceKm:
			return -1
		case a.DistanceKm > b.DistanceKm:
			return 1
		default:
			return 0
		}
	})

	if len(candidates) > topN {
		candidates = candidates[:topN]
	}

	return candidates
}

// HighwayIndex searches highway path samples.
type HighwayIndex struct {
	highways []models.Highway
}

// NewHighwayIndex builds an index over a private copy of highways.
func NewHighwayIndex(highways []models.Highway) *HighwayIndex {
	copied := make([]models.Highway, len(highways))
	for i, hwy := range highways {
		hwy.States = slices.Clone(hwy.States)
		hwy.Path = slices.Clone(hwy.Path)
		copied[i] = hwy
	}

	return &HighwayIndex{highways: copied}
}

// DefaultHighways returns the index over the built-in interstate table.
func DefaultHighways() *HighwayIndex {
	return NewHighwayIndex(highways)
}

// Nearest returns the highway vertex closest to origin. When state is not empty only
// highways crossing that state are considered and there is no fallback to the full set.
// The boolean is false when nothing qualifies.
func (h *HighwayIndex) Nearest(origin models.GeoPoint, state string) (models.HighwayMatch, bool) {
	state = strings.ToUpper(strings.TrimSpace(state))

	var (
		best  models.HighwayMatch
		found bool
	)

	for _, hwy := range h.highways {
		if state != "" && !hwy.HasState(state) {
			continue
		}
		for _, vertex := range hwy.Path {
			dist := geo.Distance(origin, vertex)
			if !found || dist < best.DistanceKm {
				best = models.HighwayMatch{Name: hwy.Code, DistanceKm: dist, Point: vertex}
				found = true
			}
		}
	}

	return best, found
}
