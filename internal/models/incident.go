package models

// Incident is a normalized record from a live incident feed.
type Incident struct {
	Title    string `json:"title"`
	Road     string `json:"road"`
	Severity string `json:"severity"`
	Status   string `json:"status"`
}
