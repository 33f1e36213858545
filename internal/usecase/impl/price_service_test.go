package impl

import (
	"context"
	"testing"
	"time"

	"pricewatch/config"
	"pricewatch/internal/domain/entity"
	domainerrors "pricewatch/internal/domain/errors"
	mockRepo "pricewatch/internal/mocks/repository"
	"pricewatch/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPriceServiceForTest(t *testing.T, cfg *config.Config) (*priceService, *mockRepo.MockPriceRepository) {
	t.Helper()

	priceRepo := mockRepo.NewMockPriceRepository(t)
	service := NewPriceService(PriceServiceParams{
		PriceRepo: priceRepo,
		Config:    cfg,
	}).(*priceService)

	return service, priceRepo
}

func TestPriceService_ListPrices_VariantFilterPassedThrough(t *testing.T) {
	service, priceRepo := newPriceServiceForTest(t, nil)
	ctx := context.Background()

	variantID := 3
	expected := []*entity.Price{{ID: 1, ProductID: 11, VariantID: &variantID}}

	priceRepo.EXPECT().
		FindByProduct(ctx, 11, &variantID).
		Return(expected, nil)

	prices, err := service.ListPrices(ctx, 11, &variantID)
	require.NoError(t, err)
	assert.Equal(t, expected, prices)
}

func TestPriceService_GetPriceHistory_DefaultWindow(t *testing.T) {
	service, priceRepo := newPriceServiceForTest(t, nil)
	ctx := context.Background()

	fixed := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return fixed }

	priceRepo.EXPECT().
		FindHistory(ctx, 11, fixed.AddDate(0, 0, -30)).
		Return([]*entity.Price{}, nil)

	prices, err := service.GetPriceHistory(ctx, 11, nil)
	require.NoError(t, err)
	assert.Empty(t, prices)
}

func TestPriceService_GetPriceHistory_ConfiguredWindow(t *testing.T) {
	cfg := &config.Config{PriceHistory: &config.PriceHistoryConfig{DefaultDays: 14}}
	service, priceRepo := newPriceServiceForTest(t, cfg)
	ctx := context.Background()

	fixed := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return fixed }

	priceRepo.EXPECT().
		FindHistory(ctx, 11, fixed.AddDate(0, 0, -14)).
		Return([]*entity.Price{}, nil)

	_, err := service.GetPriceHistory(ctx, 11, nil)
	require.NoError(t, err)
}

func TestPriceService_GetPriceHistory_ExplicitDaysOverrideDefault(t *testing.T) {
	service, priceRepo := newPriceServiceForTest(t, nil)
	ctx := context.Background()

	fixed := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return fixed }

	days := 7
	priceRepo.EXPECT().
		FindHistory(ctx, 11, fixed.AddDate(0, 0, -7)).
		Return([]*entity.Price{}, nil)

	_, err := service.GetPriceHistory(ctx, 11, &days)
	require.NoError(t, err)
}

func TestPriceService_GetPriceHistory_NonPositiveDaysFallBackToDefault(t *testing.T) {
	service, priceRepo := newPriceServiceForTest(t, nil)
	ctx := context.Background()

	fixed := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return fixed }

	days := 0
	priceRepo.EXPECT().
		FindHistory(ctx, 11, fixed.AddDate(0, 0, -30)).
		Return([]*entity.Price{}, nil)

	_, err := service.GetPriceHistory(ctx, 11, &days)
	require.NoError(t, err)
}

func TestPriceService_CreatePrice_StoresFinalPriceVerbatim(t *testing.T) {
	service, priceRepo := newPriceServiceForTest(t, nil)
	ctx := context.Background()

	variantID := 3

	var captured *entity.Price
	priceRepo.EXPECT().
		Create(ctx, mock.Anything).
		Run(func(ctx context.Context, price *entity.Price) {
			captured = price
		}).
		Return(&entity.Price{ID: 1}, nil)

	_, err := service.CreatePrice(ctx, &usecase.CreatePriceInput{
		ProductID:     11,
		VariantID:     &variantID,
		ProviderID:    3,
		OriginalPrice: "4.00",
		Discount:      "12.5",
		FinalPrice:    "3.50",
		SkuID:         "SKU-123",
	})
	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.True(t, captured.OriginalPrice.Equal(decimal.RequireFromString("4.00")))
	assert.True(t, captured.Discount.Equal(decimal.RequireFromString("12.5")))
	// Final price is never recomputed from original and discount.
	assert.Equal(t, "3.50", captured.FinalPrice.StringFixed(2))
	assert.Equal(t, &variantID, captured.VariantID)
}

func TestPriceService_CreatePrice_EmptyDiscountDefaultsToZero(t *testing.T) {
	service, priceRepo := newPriceServiceForTest(t, nil)
	ctx := context.Background()

	var captured *entity.Price
	priceRepo.EXPECT().
		Create(ctx, mock.Anything).
		Run(func(ctx context.Context, price *entity.Price) {
			captured = price
		}).
		Return(&entity.Price{ID: 1}, nil)

	_, err := service.CreatePrice(ctx, &usecase.CreatePriceInput{
		ProductID:     11,
		ProviderID:    3,
		OriginalPrice: "4.00",
		FinalPrice:    "4.00",
	})
	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.True(t, captured.Discount.IsZero())
}

func TestPriceService_CreatePrice_RejectsMalformedDecimal(t *testing.T) {
	service, _ := newPriceServiceForTest(t, nil)
	ctx := context.Background()

	price, err := service.CreatePrice(ctx, &usecase.CreatePriceInput{
		ProductID:     11,
		ProviderID:    3,
		OriginalPrice: "four euros",
		FinalPrice:    "3.50",
	})
	require.Error(t, err)
	assert.Nil(t, price)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
