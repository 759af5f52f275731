package models

// Shelter source tags.
const (
	SourceLive    = "live"
	SourceCurated = "curated"
)

// ShelterRecord is a single shelter or support facility.
type ShelterRecord struct {
	Name     string    `json:"name"`
	Point    *GeoPoint `json:"point,omitempty"`
	Category string    `json:"category"`
	Phone    string    `json:"phone"`
	ADA      bool      `json:"ada"`
	Source   string    `json:"source"`
	Address  string    `json:"address,omitempty"`
	Note     string    `json:"note,omitempty"`
	Website  string    `json:"website,omitempty"`
}

// Facility is a raw point of interest returned by a live POI query.
type Facility struct {
	ID    int64             `json:"id"`
	Point *GeoPoint         `json:"point,omitempty"`
	Tags  map[string]string `json:"tags"`
}
