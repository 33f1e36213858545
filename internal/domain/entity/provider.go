package entity

import "time"

// Provider is a seller or store at which product prices are observed.
// ProviderType is a free-form classifier (SUPERMARKET, ONLINE, MARKET, ...).
type Provider struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	ProviderType string    `json:"providerType"`
	LocationID   int       `json:"locationId"`
	CreatedAt    time.Time `json:"createdAt"`
}
