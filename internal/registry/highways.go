package registry

import "github.com/UnknownOlympus/exodus/internal/models"

// highways approximates the major interstate corridors by a handful of path samples each.
//
//nolint:gochecknoglobals,lll // static table
var highways = []models.Highway{
	{
		Code:   "I-5",
		Name:   "Interstate 5",
		States: []string{"CA", "OR", "WA"},
		Path: []models.GeoPoint{
			{Latitude: 32.5, Longitude: -117.1},
			{Latitude: 34.0, Longitude: -118.2},
			{Latitude: 37.8, Longitude: -122.4},
			{Latitude: 45.5, Longitude: -122.7},
			{Latitude: 47.6, Longitude: -122.3},
		},
	},
	{
		Code:   "I-10",
		Name:   "Interstate 10",
		States: []string{"CA", "AZ", "NM", "TX"},
		Path: []models.GeoPoint{
			{Latitude: 34.0, Longitude: -118.2},
			{Latitude: 33.4, Longitude: -112.1},
			{Latitude: 31.8, Longitude: -106.4},
			{Latitude: 29.4, Longitude: -98.5},
		},
	},
	{
		Code:   "I-15",
		Name:   "Interstate 15",
		States: []string{"CA", "NV", "UT"},
		Path: []models.GeoPoint{
			{Latitude: 32.7, Longitude: -117.2},
			{Latitude: 34.1, Longitude: -117.3},
			{Latitude: 36.2, Longitude: -115.1},
			{Latitude: 40.8, Longitude: -111.9},
		},
	},
	{
		Code:   "I-40",
		Name:   "Interstate 40",
		States: []string{"CA", "AZ", "NM", "TX", "OK", "AR", "TN", "NC"},
		Path: []models.GeoPoint{
			{Latitude: 34.9, Longitude: -114.6},
			{Latitude: 35.2, Longitude: -111.7},
			{Latitude: 35.1, Longitude: -106.6},
			{Latitude: 35.2, Longitude: -97.5},
			{Latitude: 35.3, Longitude: -92.3},
			{Latitude: 35.7, Longitude: -84.6},
			{Latitude: 35.2, Longitude: -79.8},
		},
	},
	{
		Code:   "I-80",
		Name:   "Interstate 80",
		States: []string{"CA", "NV", "UT", "WY", "NE", "IA", "IL", "IN", "OH", "PA", "NJ", "NY"},
		Path: []models.GeoPoint{
			{Latitude: 37.8, Longitude: -122.3},
			{Latitude: 39.5, Longitude: -119.8},
			{Latitude: 40.8, Longitude: -111.9},
			{Latitude: 41.1, Longitude: -104.8},
			{Latitude: 41.0, Longitude: -99.5},
			{Latitude: 41.9, Longitude: -87.6},
			{Latitude: 40.7, Longitude: -85.9},
			{Latitude: 41.0, Longitude: -81.5},
			{Latitude: 40.7, Longitude: -74.0},
		},
	},
	{
		Code:   "I-95",
		Name:   "Interstate 95",
		States: []string{"FL", "GA", "SC", "NC", "VA", "MD", "DE", "PA", "NJ", "NY", "CT", "RI", "MA", "NH", "ME"},
		Path: []models.GeoPoint{
			{Latitude: 25.8, Longitude: -80.2},
			{Latitude: 30.3, Longitude: -81.7},
			{Latitude: 32.1, Longitude: -81.1},
			{Latitude: 33.9, Longitude: -78.9},
			{Latitude: 35.8, Longitude: -78.6},
			{Latitude: 36.9, Longitude: -76.3},
			{Latitude: 38.9, Longitude: -77.0},
			{Latitude: 40.7, Longitude: -74.0},
			{Latitude: 42.4, Longitude: -71.1},
			{Latitude: 43.4, Longitude: -69.8},
		},
	},
	{
		Code:   "I-85",
		Name:   "Interstate 85",
		States: []string{"AL", "GA", "SC", "NC", "VA"},
		Path: []models.GeoPoint{
			{Latitude: 32.4, Longitude: -85.5},
			{Latitude: 33.7, Longitude: -84.4},
			{Latitude: 34.9, Longitude: -82.4},
			{Latitude: 35.7, Longitude: -80.8},
			{Latitude: 36.9, Longitude: -79.8},
		},
	},
	{
		Code:   "I-75",
		Name:   "Interstate 75",
		States: []string{"FL", "GA", "TN", "KY", "OH", "MI"},
		Path: []models.GeoPoint{
			{Latitude: 25.8, Longitude: -80.2},
			{Latitude: 33.7, Longitude: -84.4},
			{Latitude: 36.2, Longitude: -86.8},
			{Latitude: 39.1, Longitude: -84.5},
			{Latitude: 41.5, Longitude: -83.5},
			{Latitude: 42.3, Longitude: -83.0},
		},
	},
	{
		Code:   "I-65",
		Name:   "Interstate 65",
		States: []string{"AL", "TN", "KY", "IN"},
		Path: []models.GeoPoint{
			{Latitude: 32.3, Longitude: -86.9},
			{Latitude: 36.2, Longitude: -86.8},
			{Latitude: 38.2, Longitude: -85.8},
			{Latitude: 39.8, Longitude: -86.2},
		},
	},
	{
		Code:   "I-35",
		Name:   "Interstate 35",
		States: []string{"TX", "OK", "KS", "MO", "IA", "MN"},
		Path: []models.GeoPoint{
			{Latitude: 28.5, Longitude: -97.8},
			{Latitude: 35.5, Longitude: -97.5},
			{Latitude: 37.7, Longitude: -97.3},
			{Latitude: 39.1, Longitude: -94.6},
			{Latitude: 41.9, Longitude: -93.6},
			{Latitude: 44.9, Longitude: -93.2},
		},
	},
	{
		Code:   "I-90",
		Name:   "Interstate 90",
		States: []string{"WA", "ID", "MT", "WY", "SD", "MN", "WI", "IL", "IN", "OH", "PA", "NY", "MA"},
		Path: []models.GeoPoint{
			{Latitude: 47.6, Longitude: -122.3},
			{Latitude: 46.5, Longitude: -117.0},
			{Latitude: 46.8, Longitude: -110.4},
			{Latitude: 44.3, Longitude: -104.8},
			{Latitude: 44.1, Longitude: -100.2},
			{Latitude: 43.9, Longitude: -94.8},
			{Latitude: 43.0, Longitude: -89.4},
			{Latitude: 41.9, Longitude: -87.6},
			{Latitude: 41.5, Longitude: -81.5},
			{Latitude: 42.3, Longitude: -71.1},
		},
	},
	{
		Code:   "I-20",
		Name:   "Interstate 20",
		States: []string{"TX", "LA", "MS", "AL", "GA", "SC"},
		Path: []models.GeoPoint{
			{Latitude: 32.8, Longitude: -96.8},
			{Latitude: 31.3, Longitude: -93.6},
			{Latitude: 32.3, Longitude: -90.1},
			{Latitude: 32.4, Longitude: -87.3},
			{Latitude: 33.7, Longitude: -84.4},
			{Latitude: 34.0, Longitude: -81.0},
		},
	},
}
