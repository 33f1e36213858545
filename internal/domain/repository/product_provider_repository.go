package repository

import (
	"context"

	"pricewatch/internal/domain/entity"
)

// ProductProviderRepository manages the product/provider SKU junction.
type ProductProviderRepository interface {
	// Create persists a new product-provider link and returns the stored row.
	Create(ctx context.Context, link *entity.ProductProvider) (*entity.ProductProvider, error)
}
