package entity

import "time"

// WatchlistEntry marks a product a user wants to track. One logical entry
// exists per (user, product) pair.
type WatchlistEntry struct {
	ID        int       `json:"id"`
	UserID    string    `json:"userId"`
	ProductID int       `json:"productId"`
	CreatedAt time.Time `json:"createdAt"`
}
