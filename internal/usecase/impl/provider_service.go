package impl

import (
	"context"

	"pricewatch/internal/domain/entity"
	"pricewatch/internal/domain/repository"
	"pricewatch/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type providerService struct {
	providerRepo repository.ProviderRepository
	locationRepo repository.LocationRepository
}

// ProviderServiceParams holds dependencies for ProviderService, injected by Fx.
type ProviderServiceParams struct {
	fx.In

	ProviderRepo repository.ProviderRepository
	LocationRepo repository.LocationRepository
}

// NewProviderService creates a new provider service instance
func NewProviderService(params ProviderServiceParams) usecase.ProviderUsecase {
	return &providerService{
		providerRepo: params.ProviderRepo,
		locationRepo: params.LocationRepo,
	}
}

// ListProviders returns every provider.
func (s *providerService) ListProviders(ctx context.Context) ([]*entity.Provider, error) {
	providers, err := s.providerRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list providers")
	}

	return providers, nil
}

// CreateProvider adds a new provider at an existing location.
func (s *providerService) CreateProvider(ctx context.Context, input *usecase.CreateProviderInput) (*entity.Provider, error) {
	provider := &entity.Provider{
		Name:         input.Name,
		ProviderType: input.ProviderType,
		LocationID:   input.LocationID,
	}

	created, err := s.providerRepo.Create(ctx, provider)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create provider")
	}

	return created, nil
}

// ListLocations returns every location.
func (s *providerService) ListLocations(ctx context.Context) ([]*entity.Location, error) {
	locations, err := s.locationRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list locations")
	}

	return locations, nil
}

// CreateLocation adds a new location.
func (s *providerService) CreateLocation(ctx context.Context, input *usecase.CreateLocationInput) (*entity.Location, error) {
	location := &entity.Location{
		Country:     input.Country,
		City:        input.City,
		Address:     input.Address,
		Coordinates: input.Coordinates,
	}

	created, err := s.locationRepo.Create(ctx, location)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create location")
	}

	return created, nil
}
