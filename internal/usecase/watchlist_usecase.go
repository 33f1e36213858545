package usecase

import (
	"context"

	"pricewatch/internal/domain/entity"
)

// WatchlistUsecase manages per-user product watchlists. The owning user is
// always the authenticated caller; there is no cross-user access.
type WatchlistUsecase interface {
	// GetWatchlist returns the caller's watchlist entries.
	GetWatchlist(ctx context.Context, userID string) ([]*entity.WatchlistEntry, error)

	// AddToWatchlist puts a product on the caller's watchlist. Adding a
	// product that is already present returns the existing entry.
	AddToWatchlist(ctx context.Context, userID string, productID int) (*entity.WatchlistEntry, error)

	// RemoveFromWatchlist takes a product off the caller's watchlist.
	// Removing a product that is not present succeeds.
	RemoveFromWatchlist(ctx context.Context, userID string, productID int) error
}
