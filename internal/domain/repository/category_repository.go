package repository

import (
	"context"

	"pricewatch/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrCategoryNotFound is returned when a category lookup misses.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository provides access to top-level catalog categories.
type CategoryRepository interface {
	// FindAll returns every category.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// FindByID retrieves a single category by id.
	FindByID(ctx context.Context, id int) (*entity.Category, error)

	// Create persists a new category and returns the stored row with its
	// generated id and creation timestamp.
	Create(ctx context.Context, category *entity.Category) (*entity.Category, error)
}
