// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User represents an account known to the service. The ID is assigned by the
// external identity provider and is treated as opaque; the service never
// creates users itself, it only reads the synced rows.
type User struct {
	ID              string    `json:"id"`              // Identity-provider subject, primary key.
	Email           string    `json:"email"`           // Contact email synced from the provider.
	FirstName       string    `json:"firstName"`       // Given name, may be empty.
	LastName        string    `json:"lastName"`        // Family name, may be empty.
	ProfileImageURL string    `json:"profileImageUrl"` // Avatar URL, may be empty.
	Role            Role      `json:"role"`            // GENERAL or ADMIN; gates mutating endpoints.
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
