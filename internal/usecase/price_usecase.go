package usecase

import (
	"context"

	"pricewatch/internal/domain/entity"
)

// CreatePriceInput carries a new price observation. Monetary fields arrive
// as decimal strings so scale survives the trip from JSON.
type CreatePriceInput struct {
	ProductID     int    `json:"productId" validate:"required"`
	VariantID     *int   `json:"variantId"`
	ProviderID    int    `json:"providerId" validate:"required"`
	OriginalPrice string `json:"originalPrice" validate:"required"`
	Discount      string `json:"discount"`
	FinalPrice    string `json:"finalPrice" validate:"required"`
	SkuID         string `json:"skuId"`
}

// PriceUsecase manages the append-only price log. All listings come back
// newest first.
type PriceUsecase interface {
	// ListPrices returns prices for a product, optionally narrowed to a
	// variant.
	ListPrices(ctx context.Context, productID int, variantID *int) ([]*entity.Price, error)

	// GetPriceHistory returns prices recorded within the trailing window of
	// the given number of days. A nil days falls back to the configured
	// default.
	GetPriceHistory(ctx context.Context, productID int, days *int) ([]*entity.Price, error)

	// CreatePrice appends a new observation. The final price is stored as
	// supplied, never recomputed from the original price and discount.
	CreatePrice(ctx context.Context, input *CreatePriceInput) (*entity.Price, error)
}
