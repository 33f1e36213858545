package usecase

import (
	"context"

	"pricewatch/internal/domain/entity"
)

// CreateLocationInput carries the fields of a new location.
type CreateLocationInput struct {
	Country     string `json:"country" validate:"required"`
	City        string `json:"city" validate:"required"`
	Address     string `json:"address"`
	Coordinates string `json:"coordinates"`
}

// CreateProviderInput carries the fields of a new provider.
type CreateProviderInput struct {
	Name         string `json:"name" validate:"required"`
	ProviderType string `json:"type" validate:"required"`
	LocationID   int    `json:"locationId" validate:"required"`
}

// ProviderUsecase manages sellers and the locations they operate from.
type ProviderUsecase interface {
	// ListProviders returns every provider.
	ListProviders(ctx context.Context) ([]*entity.Provider, error)

	// CreateProvider adds a new provider at an existing location.
	CreateProvider(ctx context.Context, input *CreateProviderInput) (*entity.Provider, error)

	// ListLocations returns every location.
	ListLocations(ctx context.Context) ([]*entity.Location, error)

	// CreateLocation adds a new location.
	CreateLocation(ctx context.Context, input *CreateLocationInput) (*entity.Location, error)
}
