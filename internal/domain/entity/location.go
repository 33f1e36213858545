package entity

import "time"

// Location is a physical place a provider operates from. Coordinates is an
// opaque JSON string with lat/lng, stored as supplied.
type Location struct {
	ID          int       `json:"id"`
	Country     string    `json:"country"`
	City        string    `json:"city"`
	Address     string    `json:"address"`
	Coordinates string    `json:"coordinates"`
	CreatedAt   time.Time `json:"createdAt"`
}
