package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/UnknownOlympus/exodus/internal/incidents"
	"github.com/UnknownOlympus/exodus/internal/models"
	"github.com/UnknownOlympus/exodus/internal/routing"
	"github.com/UnknownOlympus/exodus/internal/shelter"
	"golang.org/x/sync/errgroup"
)

// Geocoder resolves a free-text address.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*models.GeoPoint, error)
}

// ShelterFinder lists shelters around a destination.
type ShelterFinder interface {
	Aggregate(ctx context.Context, destination models.GeoPoint) shelter.Catalog
}

// RouteResolver computes routes per profile.
type RouteResolver interface {
	Resolve(
		ctx context.Context,
		origin, destination models.GeoPoint,
		profiles []models.Profile,
		locality string,
	) map[models.Profile]routing.Estimate
}

// IncidentFeed returns live incidents for the jurisdiction of an address.
type IncidentFeed interface {
	ForAddress(ctx context.Context, address string) (*incidents.Report, error)
}

// TripRequest is one user interaction with the trip planner.
type TripRequest struct {
	Address      string
	SelectedZone int
	Threats      []Threat
	ThreatRadius float64
}

// Trip is everything needed to leave for the selected destination. Destination is nil when
// no safe zone qualifies; Incidents is nil when no live feed covers the address.
type Trip struct {
	Address     string                              `json:"address"`
	Origin      models.GeoPoint                     `json:"origin"`
	Threats     []NearbyThreat                      `json:"threats"`
	Zones       []models.ZoneCandidate              `json:"zones"`
	Destination *models.ZoneCandidate               `json:"destination,omitempty"`
	Shelters    shelter.Catalog                     `json:"shelters,omitempty"`
	Routes      map[models.Profile]routing.Estimate `json:"routes,omitempty"`
	Incidents   *incidents.Report                   `json:"incidents,omitempty"`
}

// TripPlanner orchestrates geocoding, destination choice, shelters, routes and incidents.
type TripPlanner struct {
	geocoder  Geocoder
	zones     ZoneFinder
	shelters  ShelterFinder
	routes    RouteResolver
	incidents IncidentFeed
	log       *slog.Logger
}

// NewTripPlanner creates a TripPlanner. A nil incident feed disables live incidents.
func NewTripPlanner(
	geocoder Geocoder,
	zones ZoneFinder,
	shelters ShelterFinder,
	routes RouteResolver,
	feed IncidentFeed,
	log *slog.Logger,
) *TripPlanner {
	return &TripPlanner{
		geocoder:  geocoder,
		zones:     zones,
		shelters:  shelters,
		routes:    routes,
		incidents: feed,
		log:       log,
	}
}

// Plan computes a trip for req and returns it with the updated session. The given session is
// never modified. Only a failed geocode of a new address is an error; shelters, routes and
// incidents degrade to their fallbacks.
func (tp *TripPlanner) Plan(ctx context.Context, session Session, req TripRequest) (*Trip, Session, error) {
	next := session.Clone()
	address := strings.TrimSpace(req.Address)
	if address == "" {
		return nil, session, fmt.Errorf("%w: empty address", models.ErrNotFound)
	}

	if address != next.Address || next.Origin == nil {
		origin, err := tp.geocoder.Geocode(ctx, address)
		if err != nil {
			return nil, session, fmt.Errorf("failed to geocode %q: %w", address, err)
		}
		next = Session{Address: address, Origin: origin}
	}
	next.SelectedZone = req.SelectedZone

	trip := &Trip{
		Address: address,
		Origin:  *next.Origin,
		Threats: NearbyThreats(*next.Origin, req.Threats, req.ThreatRadius),
		Zones:   tp.zones.Nearest(*next.Origin, ExclusionKm, TopZones),
	}

	if len(trip.Zones) == 0 {
		tp.log.InfoContext(ctx, "No safe zone qualifies", "address", address)
		next.SelectedZone = 0
		trip.Incidents = tp.liveIncidents(ctx, address)
		return trip, next, nil
	}

	next.SelectedZone = min(max(next.SelectedZone, 0), len(trip.Zones)-1)
	destination := trip.Zones[next.SelectedZone]
	trip.Destination = &destination

	cached, haveRoutes := next.cachedRoutes(destination.Point, routing.AllProfiles)

	var group errgroup.Group
	group.Go(func() error {
		trip.Shelters = tp.shelters.Aggregate(ctx, destination.Point)
		return nil
	})
	if !haveRoutes {
		group.Go(func() error {
			trip.Routes = tp.routes.Resolve(ctx, *next.Origin, destination.Point, routing.AllProfiles, address)
			return nil
		})
	}
	group.Go(func() error {
		trip.Incidents = tp.liveIncidents(ctx, address)
		return nil
	})
	_ = group.Wait()

	if err := ctx.Err(); err != nil {
		return nil, session, fmt.Errorf("trip planning abandoned: %w", err)
	}

	if haveRoutes {
		trip.Routes = cached
	} else {
		if next.Routes == nil {
			next.Routes = make(map[string]map[models.Profile]routing.Estimate)
		}
		next.Routes[destination.Point.Key()] = trip.Routes
	}

	return trip, next, nil
}

func (tp *TripPlanner) liveIncidents(ctx context.Context, address string) *incidents.Report {
	if tp.incidents == nil {
		return nil
	}

	report, err := tp.incidents.ForAddress(ctx, address)
	switch {
	case err == nil:
		return report
	case errors.Is(err, models.ErrNotFound):
		tp.log.DebugContext(ctx, "No live incident feed", "address", address, "reason", err)
	default:
		tp.log.WarnContext(ctx, "Live incidents unavailable", "address", address, "error", err)
	}

	return nil
}
