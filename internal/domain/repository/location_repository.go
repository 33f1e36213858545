package repository

import (
	"context"

	"pricewatch/internal/domain/entity"
)

// LocationRepository provides access to provider locations.
type LocationRepository interface {
	// FindAll returns every location.
	FindAll(ctx context.Context) ([]*entity.Location, error)

	// Create persists a new location and returns the stored row.
	Create(ctx context.Context, location *entity.Location) (*entity.Location, error)
}
