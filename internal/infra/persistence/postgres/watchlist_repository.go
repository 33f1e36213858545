package postgres

import (
	"context"

	"pricewatch/internal/domain/entity"
	domainerrors "pricewatch/internal/domain/errors"
	"pricewatch/internal/domain/repository"
	"pricewatch/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// watchlistRepository implements the repository.WatchlistRepository interface using GORM.
type watchlistRepository struct {
	db *gorm.DB
}

// NewWatchlistRepository is the constructor for watchlistRepository.
func NewWatchlistRepository(db *gorm.DB) repository.WatchlistRepository {
	return &watchlistRepository{db: db}
}

// FindByUser returns a user's watchlist entries, newest first.
func (repo *watchlistRepository) FindByUser(ctx context.Context, userID string) ([]*entity.WatchlistEntry, error) {
	var entryMs []model.WatchlistModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entryMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list watchlist entries")
	}

	entries := make([]*entity.WatchlistEntry, 0, len(entryMs))
	for i := range entryMs {
		entries = append(entries, toWatchlistDomain(&entryMs[i]))
	}

	return entries, nil
}

// FindByUserAndProduct retrieves a single watchlist entry.
func (repo *watchlistRepository) FindByUserAndProduct(ctx context.Context, userID string, productID int) (*entity.WatchlistEntry, error) {
	var entryM model.WatchlistModel
	err := repo.db.WithContext(ctx).
		First(&entryM, "user_id = ? AND product_id = ?", userID, productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWatchlistEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find watchlist entry")
	}

	return toWatchlistDomain(&entryM), nil
}

// Add persists a new watchlist entry. A duplicate (user, product) pair maps
// to ErrDuplicateWatchlistEntry so the caller can decide idempotency.
func (repo *watchlistRepository) Add(ctx context.Context, entry *entity.WatchlistEntry) (*entity.WatchlistEntry, error) {
	entryM := fromWatchlistDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, repository.ErrDuplicateWatchlistEntry
		}
		if isForeignKeyConstraintViolation(err) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("product does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("missing required watchlist fields")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to add watchlist entry")
	}

	return toWatchlistDomain(entryM), nil
}

// Remove deletes the entry for the (user, product) pair. Deleting a pair
// that is not present is not an error.
func (repo *watchlistRepository) Remove(ctx context.Context, userID string, productID int) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.WatchlistModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove watchlist entry")
	}

	return nil
}

// --- Mapper Functions ---

func toWatchlistDomain(data *model.WatchlistModel) *entity.WatchlistEntry {
	if data == nil {
		return nil
	}

	return &entity.WatchlistEntry{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		CreatedAt: data.CreatedAt,
	}
}

func fromWatchlistDomain(data *entity.WatchlistEntry) *model.WatchlistModel {
	if data == nil {
		return nil
	}

	return &model.WatchlistModel{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
	}
}
