package repository

import (
	"context"

	"pricewatch/internal/domain/entity"
)

// VariantRepository provides access to product variants.
type VariantRepository interface {
	// FindByProduct returns every variant of a product.
	FindByProduct(ctx context.Context, productID int) ([]*entity.Variant, error)

	// Create persists a new variant and returns the stored row.
	Create(ctx context.Context, variant *entity.Variant) (*entity.Variant, error)
}
