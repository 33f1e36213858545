package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Price is one observation of a product's price at a provider, optionally
// narrowed to a variant. Rows are append-only: history is the full set
// ordered by Timestamp descending, and no row is ever updated or deleted.
//
// Money fields are fixed-point decimals (numeric(10,2); discount
// numeric(5,2) as a percentage). FinalPrice is supplied by the caller and
// persisted verbatim; this layer never recomputes it from the discount.
type Price struct {
	ID            int             `json:"id"`
	ProductID     int             `json:"productId"`
	VariantID     *int            `json:"variantId"`
	ProviderID    int             `json:"providerId"`
	OriginalPrice decimal.Decimal `json:"originalPrice"`
	Discount      decimal.Decimal `json:"discount"`
	FinalPrice    decimal.Decimal `json:"finalPrice"`
	SkuID         string          `json:"skuId"`
	Timestamp     time.Time       `json:"timestamp"`
}
