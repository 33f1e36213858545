package repository

import (
	"context"

	"pricewatch/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrSubcategoryNotFound is returned when a subcategory lookup misses.
var ErrSubcategoryNotFound = errors.New("subcategory not found")

// SubcategoryRepository provides access to second-level catalog groupings.
type SubcategoryRepository interface {
	// FindAll returns subcategories, optionally narrowed to one category.
	FindAll(ctx context.Context, categoryID *int) ([]*entity.Subcategory, error)

	// FindByID retrieves a single subcategory by id.
	FindByID(ctx context.Context, id int) (*entity.Subcategory, error)

	// Create persists a new subcategory and returns the stored row.
	Create(ctx context.Context, subcategory *entity.Subcategory) (*entity.Subcategory, error)
}
