package repository

import (
	"context"

	"pricewatch/internal/domain/entity"
)

// ProviderRepository provides access to sellers/stores.
type ProviderRepository interface {
	// FindAll returns every provider.
	FindAll(ctx context.Context) ([]*entity.Provider, error)

	// Create persists a new provider and returns the stored row.
	Create(ctx context.Context, provider *entity.Provider) (*entity.Provider, error)
}
