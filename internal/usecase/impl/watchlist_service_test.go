package impl

import (
	"context"
	"testing"

	"pricewatch/internal/domain/entity"
	"pricewatch/internal/domain/repository"
	mockRepo "pricewatch/internal/mocks/repository"
	"pricewatch/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWatchlistServiceForTest(t *testing.T) (usecase.WatchlistUsecase, *mockRepo.MockWatchlistRepository) {
	t.Helper()

	watchlistRepo := mockRepo.NewMockWatchlistRepository(t)
	service := NewWatchlistService(WatchlistServiceParams{
		WatchlistRepo: watchlistRepo,
	})

	return service, watchlistRepo
}

func TestWatchlistService_GetWatchlist(t *testing.T) {
	service, watchlistRepo := newWatchlistServiceForTest(t)
	ctx := context.Background()

	expected := []*entity.WatchlistEntry{{ID: 1, UserID: "user-1", ProductID: 11}}

	watchlistRepo.EXPECT().
		FindByUser(ctx, "user-1").
		Return(expected, nil)

	entries, err := service.GetWatchlist(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, expected, entries)
}

func TestWatchlistService_AddToWatchlist_NewEntry(t *testing.T) {
	service, watchlistRepo := newWatchlistServiceForTest(t)
	ctx := context.Background()

	watchlistRepo.EXPECT().
		Add(ctx, &entity.WatchlistEntry{UserID: "user-1", ProductID: 11}).
		Return(&entity.WatchlistEntry{ID: 1, UserID: "user-1", ProductID: 11}, nil)

	entry, err := service.AddToWatchlist(ctx, "user-1", 11)
	require.NoError(t, err)
	assert.Equal(t, 1, entry.ID)
}

func TestWatchlistService_AddToWatchlist_DuplicateReturnsExistingEntry(t *testing.T) {
	service, watchlistRepo := newWatchlistServiceForTest(t)
	ctx := context.Background()

	existing := &entity.WatchlistEntry{ID: 1, UserID: "user-1", ProductID: 11}

	watchlistRepo.EXPECT().
		Add(ctx, &entity.WatchlistEntry{UserID: "user-1", ProductID: 11}).
		Return(nil, repository.ErrDuplicateWatchlistEntry)

	watchlistRepo.EXPECT().
		FindByUserAndProduct(ctx, "user-1", 11).
		Return(existing, nil)

	entry, err := service.AddToWatchlist(ctx, "user-1", 11)
	require.NoError(t, err)
	assert.Equal(t, existing, entry)
}

func TestWatchlistService_RemoveFromWatchlist(t *testing.T) {
	service, watchlistRepo := newWatchlistServiceForTest(t)
	ctx := context.Background()

	watchlistRepo.EXPECT().
		Remove(ctx, "user-1", 11).
		Return(nil)

	err := service.RemoveFromWatchlist(ctx, "user-1", 11)
	require.NoError(t, err)
}
