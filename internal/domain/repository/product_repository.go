package repository

import (
	"context"

	"pricewatch/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrProductNotFound is returned when a product lookup misses.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository provides access to catalog products.
//
// FindAll applies at most one filter: when subcategoryID is set it alone
// determines membership; otherwise categoryID applies if set; otherwise all
// products are returned. Filters are never combined.
type ProductRepository interface {
	FindAll(ctx context.Context, categoryID, subcategoryID *int) ([]*entity.Product, error)

	// FindByID retrieves a single product by id.
	FindByID(ctx context.Context, id int) (*entity.Product, error)

	// Create persists a new product and returns the stored row.
	Create(ctx context.Context, product *entity.Product) (*entity.Product, error)

	// Update applies the non-nil fields of patch to the product and returns
	// the updated row. Unspecified fields keep their stored values.
	Update(ctx context.Context, id int, patch *entity.ProductPatch) (*entity.Product, error)
}
