package impl

import (
	"context"
	"time"

	"pricewatch/config"
	"pricewatch/internal/domain/entity"
	domainerrors "pricewatch/internal/domain/errors"
	"pricewatch/internal/domain/repository"
	"pricewatch/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const defaultPriceHistoryDays = 30

type priceService struct {
	priceRepo repository.PriceRepository
	config    *config.Config

	// now is swapped out in tests
	now func() time.Time
}

// PriceServiceParams holds dependencies for PriceService, injected by Fx.
type PriceServiceParams struct {
	fx.In

	PriceRepo repository.PriceRepository
	Config    *config.Config
}

// NewPriceService creates a new price service instance
func NewPriceService(params PriceServiceParams) usecase.PriceUsecase {
	return &priceService{
		priceRepo: params.PriceRepo,
		config:    params.Config,
		now:       time.Now,
	}
}

// ListPrices returns prices for a product, optionally narrowed to a variant.
func (s *priceService) ListPrices(ctx context.Context, productID int, variantID *int) ([]*entity.Price, error) {
	prices, err := s.priceRepo.FindByProduct(ctx, productID, variantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list prices")
	}

	return prices, nil
}

// GetPriceHistory returns prices recorded within the trailing day window.
func (s *priceService) GetPriceHistory(ctx context.Context, productID int, days *int) ([]*entity.Price, error) {
	window := s.historyDays()
	if days != nil && *days > 0 {
		window = *days
	}

	since := s.now().AddDate(0, 0, -window)

	prices, err := s.priceRepo.FindHistory(ctx, productID, since)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get price history")
	}

	return prices, nil
}

// CreatePrice appends a new observation. The final price is stored exactly
// as supplied, never recomputed from the original price and discount.
func (s *priceService) CreatePrice(ctx context.Context, input *usecase.CreatePriceInput) (*entity.Price, error) {
	originalPrice, err := decimal.NewFromString(input.OriginalPrice)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("originalPrice is not a valid decimal")
	}

	discount := decimal.Zero
	if input.Discount != "" {
		discount, err = decimal.NewFromString(input.Discount)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("discount is not a valid decimal")
		}
	}

	finalPrice, err := decimal.NewFromString(input.FinalPrice)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("finalPrice is not a valid decimal")
	}

	price := &entity.Price{
		ProductID:     input.ProductID,
		VariantID:     input.VariantID,
		ProviderID:    input.ProviderID,
		OriginalPrice: originalPrice,
		Discount:      discount,
		FinalPrice:    finalPrice,
		SkuID:         input.SkuID,
	}

	created, err := s.priceRepo.Create(ctx, price)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create price")
	}

	return created, nil
}

func (s *priceService) historyDays() int {
	if s.config != nil && s.config.PriceHistory != nil && s.config.PriceHistory.DefaultDays > 0 {
		return s.config.PriceHistory.DefaultDays
	}

	return defaultPriceHistoryDays
}
