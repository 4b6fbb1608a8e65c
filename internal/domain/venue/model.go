package venue

import "time"

// Venue is a pitch booked for exactly one match and deleted with it.
type Venue struct {
	ID           string
	Name         string
	Address      string
	PricePerHour *float64
	CreatedAt    time.Time
}

// Candidate is a search result from the places provider, not yet booked.
type Candidate struct {
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
}
