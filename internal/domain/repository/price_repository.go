package repository

import (
	"context"
	"time"

	"pricewatch/internal/domain/entity"
)

// PriceRepository provides access to the append-only price observations.
// Every multi-row query returns rows ordered by timestamp descending; the
// price-history chart depends on that ordering.
type PriceRepository interface {
	// FindByProduct returns all prices for a product, optionally narrowed
	// to a single variant.
	FindByProduct(ctx context.Context, productID int, variantID *int) ([]*entity.Price, error)

	// FindHistory returns prices for a product with timestamp >= since.
	FindHistory(ctx context.Context, productID int, since time.Time) ([]*entity.Price, error)

	// Create appends a new price observation and returns the stored row
	// with its generated id and defaulted timestamp.
	Create(ctx context.Context, price *entity.Price) (*entity.Price, error)
}
