// Package planner turns a subject location and a threat into an evacuation plan and drives
// the full trip flow: geocoding, destination choice, shelters, routes and incidents.
package planner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/UnknownOlympus/exodus/internal/geo"
	"github.com/UnknownOlympus/exodus/internal/metrics"
	"github.com/UnknownOlympus/exodus/internal/models"
	"github.com/go-playground/validator/v10"
)

// Planning policy.
const (
	TopZones        = 5
	ExclusionKm     = 100.0
	HighUrgencyKm   = 15.0
	MediumUrgencyKm = 40.0
)

// Placeholder labels for missing plan parts.
const (
	NoHighwayLabel     = "No major highway nearby"
	NoDestinationLabel = "Consult local authorities"
)

// Urgency is a coarse tier derived from the distance to the threat.
type Urgency string

const (
	UrgencyHigh   Urgency = "HIGH"
	UrgencyMedium Urgency = "MEDIUM"
	UrgencyLow    Urgency = "LOW"
)

// UrgencyFor returns the tier for a distance: below 15 is HIGH, below 40 is MEDIUM.
func UrgencyFor(distance float64) Urgency {
	switch {
	case distance < HighUrgencyKm:
		return UrgencyHigh
	case distance < MediumUrgencyKm:
		return UrgencyMedium
	default:
		return UrgencyLow
	}
}

// ZoneFinder finds safe zones outside an exclusion radius.
type ZoneFinder interface {
	Nearest(origin models.GeoPoint, excludeRadiusKm float64, topN int) []models.ZoneCandidate
}

// HighwayFinder finds the nearest highway, optionally restricted to a state.
type HighwayFinder interface {
	Nearest(origin models.GeoPoint, state string) (models.HighwayMatch, bool)
}

// Request describes one plan computation.
type Request struct {
	Subject    models.GeoPoint `json:"subject"`
	Threat     models.GeoPoint `json:"threat"`
	ThreatName string          `json:"threat_name" validate:"max=255"`
	State      string          `json:"state,omitempty"` // highway filter; an unknown state finds no highway
}

// Plan is the evacuation guidance for one subject and threat. Highway and PrimaryZone are
// nil when nothing qualifies.
type Plan struct {
	ThreatName        string                 `json:"threat_name"`
	Direction         string                 `json:"evacuation_direction"`
	BearingDeg        float64                `json:"evacuation_bearing"`
	FireDistanceKm    float64                `json:"fire_distance_km"`
	FireDistanceMi    float64                `json:"fire_distance_mi"`
	Highway           *models.HighwayMatch   `json:"highway,omitempty"`
	HighwayDistanceMi *float64               `json:"highway_distance_mi,omitempty"`
	PrimaryZone       *models.ZoneCandidate  `json:"safe_zone,omitempty"`
	ZoneDistanceMi    *float64               `json:"safe_zone_distance_mi,omitempty"`
	Alternates        []models.ZoneCandidate `json:"safe_zone_alternatives"`
	TotalDistanceKm   float64                `json:"total_distance_km"`
	TotalDistanceMi   float64                `json:"total_distance_mi"`
	Urgency           Urgency                `json:"urgency"`
}

// HighwayName returns the highway name or the no-highway placeholder.
func (p *Plan) HighwayName() string {
	if p.Highway == nil {
		return NoHighwayLabel
	}

	return p.Highway.Name
}

// DestinationName returns the primary safe zone name or the placeholder.
func (p *Plan) DestinationName() string {
	if p.PrimaryZone == nil {
		return NoDestinationLabel
	}

	return p.PrimaryZone.Name
}

// Planner computes evacuation plans over the static registries.
type Planner struct {
	zones    ZoneFinder
	highways HighwayFinder
	validate *validator.Validate
	log      *slog.Logger
	metrics  *metrics.Metrics
}

// NewPlanner creates a Planner.
func NewPlanner(zones ZoneFinder, highways HighwayFinder, log *slog.Logger, m *metrics.Metrics) *Planner {
	return &Planner{
		zones:    zones,
		highways: highways,
		validate: validator.New(),
		log:      log,
		metrics:  m,
	}
}

// Plan computes the plan for req. It fails only on invalid input.
func (p *Planner) Plan(ctx context.Context, req Request) (*Plan, error) {
	if err := p.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: invalid plan request: %w", models.ErrDataIntegrity, err)
	}

	fireKm := geo.Distance(req.Subject, req.Threat)
	direction, bearing := geo.EvacuationDirection(req.Threat, req.Subject)

	plan := &Plan{
		ThreatName:     req.ThreatName,
		Direction:      direction,
		BearingDeg:     bearing,
		FireDistanceKm: fireKm,
		FireDistanceMi: fireKm * geo.KmToMiles,
		Alternates:     []models.ZoneCandidate{},
		Urgency:        UrgencyFor(fireKm),
	}

	if highway, ok := p.highways.Nearest(req.Subject, req.State); ok {
		plan.Highway = &highway
		plan.HighwayDistanceMi = miles(highway.DistanceKm)
	}

	zones := p.zones.Nearest(req.Subject, ExclusionKm, TopZones)
	if len(zones) > 0 {
		primary := zones[0]
		plan.PrimaryZone = &primary
		plan.ZoneDistanceMi = miles(primary.DistanceKm)
		plan.Alternates = append(plan.Alternates, zones[1:]...)
	}

	switch {
	case plan.Highway != nil && plan.PrimaryZone != nil:
		plan.TotalDistanceKm = plan.Highway.DistanceKm + geo.Distance(plan.Highway.Point, plan.PrimaryZone.Point)
	case plan.PrimaryZone != nil:
		plan.TotalDistanceKm = plan.PrimaryZone.DistanceKm
	}
	plan.TotalDistanceMi = plan.TotalDistanceKm * geo.KmToMiles

	if p.metrics != nil {
		p.metrics.PlansComputed.WithLabelValues(string(plan.Urgency)).Inc()
	}
	p.log.DebugContext(ctx, "Computed evacuation plan",
		"threat", req.ThreatName,
		"urgency", plan.Urgency,
		"direction", plan.Direction,
		"destination", plan.DestinationName(),
		"highway", plan.HighwayName(),
	)

	return plan, nil
}

func miles(km float64) *float64 {
	mi := km * geo.KmToMiles
	return &mi
}
