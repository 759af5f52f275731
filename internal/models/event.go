package models

import "time"

// GeoEvent is a wildfire or other hazard event read from the row store.
type GeoEvent struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Active      bool      `json:"active"`
	Point       GeoPoint  `json:"point"`
	DateCreated time.Time `json:"date_created"`
}

// EvacZone is an official evacuation zone linked to a geo event.
type EvacZone struct {
	UID         string   `json:"uid"`
	DisplayName string   `json:"display_name"`
	Region      string   `json:"region"`
	Status      string   `json:"status"`
	Point       GeoPoint `json:"point"`
}
