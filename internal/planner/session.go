package planner

import (
	"maps"

	"github.com/UnknownOlympus/exodus/internal/models"
	"github.com/UnknownOlympus/exodus/internal/routing"
)

// Session carries what a user has resolved so far between trip computations: the last
// address, its coordinates, the chosen destination and the routes already computed per
// destination key.
type Session struct {
	Address      string                                         `json:"address"`
	Origin       *models.GeoPoint                               `json:"origin,omitempty"`
	SelectedZone int                                            `json:"selected_zone"`
	Routes       map[string]map[models.Profile]routing.Estimate `json:"routes,omitempty"`
}

// Clone returns a deep copy of s.
func (s Session) Clone() Session {
	out := s
	if s.Origin != nil {
		origin := *s.Origin
		out.Origin = &origin
	}
	if s.Routes != nil {
		out.Routes = make(map[string]map[models.Profile]routing.Estimate, len(s.Routes))
		for key, routes := range s.Routes {
			out.Routes[key] = maps.Clone(routes)
		}
	}

	return out
}

// cachedRoutes returns the routes stored for destination when every profile is present.
func (s Session) cachedRoutes(
	destination models.GeoPoint,
	profiles []models.Profile,
) (map[models.Profile]routing.Estimate, bool) {
	routes, ok := s.Routes[destination.Key()]
	if !ok {
		return nil, false
	}
	for _, profile := range profiles {
		if _, found := routes[profile]; !found {
			return nil, false
		}
	}

	return routes, true
}
