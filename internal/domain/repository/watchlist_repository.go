package repository

import (
	"context"

	"pricewatch/internal/domain/entity"

	"github.com/pkg/errors"
)

// Watchlist sentinel errors.
var (
	ErrWatchlistEntryNotFound  = errors.New("watchlist entry not found")
	ErrDuplicateWatchlistEntry = errors.New("watchlist entry already exists")
)

// WatchlistRepository manages per-user watchlists.
type WatchlistRepository interface {
	// FindByUser returns every watchlist entry owned by the user.
	FindByUser(ctx context.Context, userID string) ([]*entity.WatchlistEntry, error)

	// FindByUserAndProduct retrieves the entry for an exact (user, product)
	// pair.
	FindByUserAndProduct(ctx context.Context, userID string, productID int) (*entity.WatchlistEntry, error)

	// Add persists a new entry. Returns ErrDuplicateWatchlistEntry when the
	// (user, product) pair already exists.
	Add(ctx context.Context, entry *entity.WatchlistEntry) (*entity.WatchlistEntry, error)

	// Remove deletes by the exact (user, product) pair. Removing a pair
	// that does not exist is not an error.
	Remove(ctx context.Context, userID string, productID int) error
}
