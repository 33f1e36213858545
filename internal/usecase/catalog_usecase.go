package usecase

import (
	"context"

	"pricewatch/internal/domain/entity"
)

// CreateCategoryInput carries the fields of a new top-level category.
type CreateCategoryInput struct {
	Name  string `json:"name" validate:"required"`
	Slug  string `json:"slug" validate:"required"`
	Image string `json:"image"`
}

// CreateSubcategoryInput carries the fields of a new subcategory.
type CreateSubcategoryInput struct {
	Name       string `json:"name" validate:"required"`
	Slug       string `json:"slug" validate:"required"`
	Image      string `json:"image"`
	CategoryID int    `json:"categoryId" validate:"required"`
}

// CatalogUsecase manages the category taxonomy.
type CatalogUsecase interface {
	// ListCategories returns every category.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// GetCategory retrieves a single category by id.
	GetCategory(ctx context.Context, id int) (*entity.Category, error)

	// CreateCategory adds a new top-level category.
	CreateCategory(ctx context.Context, input *CreateCategoryInput) (*entity.Category, error)

	// ListSubcategories returns subcategories, optionally narrowed to one
	// parent category.
	ListSubcategories(ctx context.Context, categoryID *int) ([]*entity.Subcategory, error)

	// CreateSubcategory adds a new subcategory under an existing category.
	CreateSubcategory(ctx context.Context, input *CreateSubcategoryInput) (*entity.Subcategory, error)
}
