package impl

import (
	"context"
	"testing"

	"pricewatch/internal/domain/entity"
	mockRepo "pricewatch/internal/mocks/repository"
	"pricewatch/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProviderServiceForTest(t *testing.T) (usecase.ProviderUsecase, *mockRepo.MockProviderRepository, *mockRepo.MockLocationRepository) {
	t.Helper()

	providerRepo := mockRepo.NewMockProviderRepository(t)
	locationRepo := mockRepo.NewMockLocationRepository(t)
	service := NewProviderService(ProviderServiceParams{
		ProviderRepo: providerRepo,
		LocationRepo: locationRepo,
	})

	return service, providerRepo, locationRepo
}

func TestProviderService_ListProviders(t *testing.T) {
	service, providerRepo, _ := newProviderServiceForTest(t)
	ctx := context.Background()

	expected := []*entity.Provider{{ID: 3, Name: "FreshMart", LocationID: 2}}

	providerRepo.EXPECT().
		FindAll(ctx).
		Return(expected, nil)

	providers, err := service.ListProviders(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, providers)
}

func TestProviderService_CreateProvider(t *testing.T) {
	service, providerRepo, _ := newProviderServiceForTest(t)
	ctx := context.Background()

	providerRepo.EXPECT().
		Create(ctx, &entity.Provider{Name: "FreshMart", ProviderType: "supermarket", LocationID: 2}).
		Return(&entity.Provider{ID: 3, Name: "FreshMart", ProviderType: "supermarket", LocationID: 2}, nil)

	provider, err := service.CreateProvider(ctx, &usecase.CreateProviderInput{
		Name:         "FreshMart",
		ProviderType: "supermarket",
		LocationID:   2,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, provider.ID)
}

func TestProviderService_ListLocations(t *testing.T) {
	service, _, locationRepo := newProviderServiceForTest(t)
	ctx := context.Background()

	expected := []*entity.Location{{ID: 2, Country: "Portugal", City: "Lisbon"}}

	locationRepo.EXPECT().
		FindAll(ctx).
		Return(expected, nil)

	locations, err := service.ListLocations(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, locations)
}

func TestProviderService_CreateLocation(t *testing.T) {
	service, _, locationRepo := newProviderServiceForTest(t)
	ctx := context.Background()

	locationRepo.EXPECT().
		Create(ctx, &entity.Location{Country: "Portugal", City: "Lisbon"}).
		Return(&entity.Location{ID: 2, Country: "Portugal", City: "Lisbon"}, nil)

	location, err := service.CreateLocation(ctx, &usecase.CreateLocationInput{
		Country: "Portugal",
		City:    "Lisbon",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, location.ID)
}
