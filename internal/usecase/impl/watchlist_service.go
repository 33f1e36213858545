package impl

import (
	"context"

	"pricewatch/internal/domain/entity"
	"pricewatch/internal/domain/repository"
	"pricewatch/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type watchlistService struct {
	watchlistRepo repository.WatchlistRepository
}

// WatchlistServiceParams holds dependencies for WatchlistService, injected by Fx.
type WatchlistServiceParams struct {
	fx.In

	WatchlistRepo repository.WatchlistRepository
}

// NewWatchlistService creates a new watchlist service instance
func NewWatchlistService(params WatchlistServiceParams) usecase.WatchlistUsecase {
	return &watchlistService{
		watchlistRepo: params.WatchlistRepo,
	}
}

// GetWatchlist returns the caller's watchlist entries.
func (s *watchlistService) GetWatchlist(ctx context.Context, userID string) ([]*entity.WatchlistEntry, error) {
	entries, err := s.watchlistRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get watchlist")
	}

	return entries, nil
}

// AddToWatchlist puts a product on the caller's watchlist. A product that
// is already present yields the existing entry, keeping the operation
// idempotent.
func (s *watchlistService) AddToWatchlist(ctx context.Context, userID string, productID int) (*entity.WatchlistEntry, error) {
	entry := &entity.WatchlistEntry{
		UserID:    userID,
		ProductID: productID,
	}

	created, err := s.watchlistRepo.Add(ctx, entry)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateWatchlistEntry) {
			existing, findErr := s.watchlistRepo.FindByUserAndProduct(ctx, userID, productID)
			if findErr != nil {
				return nil, errors.Wrap(findErr, "failed to load existing watchlist entry")
			}

			return existing, nil
		}

		return nil, errors.Wrap(err, "failed to add to watchlist")
	}

	return created, nil
}

// RemoveFromWatchlist takes a product off the caller's watchlist. Removing
// a product that is not present succeeds.
func (s *watchlistService) RemoveFromWatchlist(ctx context.Context, userID string, productID int) error {
	if err := s.watchlistRepo.Remove(ctx, userID, productID); err != nil {
		return errors.Wrap(err, "failed to remove from watchlist")
	}

	return nil
}
