package models

// Profile is a transport mode a route is computed for.
type Profile string

const (
	ProfileDrive   Profile = "drive"
	ProfileWalk    Profile = "walk"
	ProfileTransit Profile = "transit"
	ProfileHybrid  Profile = "hybrid" // drive to a transit hub, then ride
)

// Step is a single turn-by-turn instruction.
type Step struct {
	Instruction string  `json:"instruction"`
	DistanceMi  float64 `json:"distance_mi"`
}

// RouteResult is a computed or estimated route for one profile.
type RouteResult struct {
	Profile     Profile    `json:"profile"`
	DistanceMi  float64    `json:"distance_mi"`
	DurationMin float64    `json:"duration_min"`
	Geometry    []GeoPoint `json:"geometry,omitempty"`
	Steps       []Step     `json:"steps,omitempty"`
}
