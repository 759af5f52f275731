package routing

import (
	"math"
	"strings"

	"github.com/UnknownOlympus/exodus/internal/models"
)

// Heuristic policy for estimates when live routing is unavailable.
const (
	driveDetourFactor = 1.3
	driveSpeedMph     = 45.0
	walkDetourFactor  = 1.2
	walkSpeedMph      = 3.5
	transitSpeedMph   = 30.0
	transitBufferMin  = 10.0
	defaultWalkToStop = 15
	hubDriveMin       = 10.0
	hybridBufferMin   = 5.0
	hybridHubMiles    = 5.0
	minutesPerHour    = 60.0
)

// transitWalkMinutes is the typical walk to the nearest stop in large US cities.
//
//nolint:gochecknoglobals // fixed policy table
var transitWalkMinutes = map[string]int{
	"new york": 5, "chicago": 8, "los angeles": 12, "houston": 15,
	"phoenix": 18, "philadelphia": 10, "san antonio": 20, "san diego": 14,
	"dallas": 16, "san jose": 12, "austin": 18, "san francisco": 7,
	"columbus": 15, "indianapolis": 18, "seattle": 9, "denver": 12,
	"washington": 8, "nashville": 20, "boston": 7, "charlotte": 14,
	"portland": 10, "miami": 12, "atlanta": 11, "detroit": 16,
	"minneapolis": 10, "tampa": 22, "orlando": 25, "pittsburgh": 14,
	"cleveland": 13, "raleigh": 18, "new orleans": 15, "baltimore": 11,
}

// WalkToStopMinutes returns the walk-to-stop time for the locality of an address.
// The locality is the first comma-separated part; unknown places get 15 minutes.
func WalkToStopMinutes(address string) int {
	first, _, _ := strings.Cut(address, ",")
	if mins, ok := transitWalkMinutes[strings.ToLower(strings.TrimSpace(first))]; ok {
		return mins
	}

	return defaultWalkToStop
}

// EstimateRoute synthesizes a route from the straight-line distance in miles. The locality
// only matters for transit and hybrid profiles.
func EstimateRoute(profile models.Profile, straightMi float64, locality string) models.RouteResult {
	result := models.RouteResult{Profile: profile}

	switch profile {
	case models.ProfileDrive:
		result.DistanceMi = round1(straightMi * driveDetourFactor)
		result.DurationMin = math.RoundToEven(result.DistanceMi / driveSpeedMph * minutesPerHour)
	case models.ProfileWalk:
		result.DistanceMi = round1(straightMi * walkDetourFactor)
		result.DurationMin = math.RoundToEven(result.DistanceMi / walkSpeedMph * minutesPerHour)
	case models.ProfileTransit:
		result.DistanceMi = round1(straightMi)
		result.DurationMin = float64(WalkToStopMinutes(locality)) + transitRideMinutes(straightMi) + transitBufferMin
	case models.ProfileHybrid:
		ride := transitRideMinutes(straightMi)
		if straightMi > hybridHubMiles {
			ride = transitRideMinutes(straightMi - hybridHubMiles)
		}
		result.DistanceMi = round1(straightMi)
		result.DurationMin = hubDriveMin + ride + hybridBufferMin
	}

	return result
}

func transitRideMinutes(miles float64) float64 {
	return math.RoundToEven(miles / transitSpeedMph * minutesPerHour)
}
