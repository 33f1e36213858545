package usecase

import (
	"context"

	"pricewatch/internal/domain/entity"
)

// CreateProductInput carries the fields of a new product.
type CreateProductInput struct {
	Name          string `json:"name" validate:"required"`
	Description   string `json:"description"`
	Image         string `json:"image"`
	CategoryID    int    `json:"categoryId" validate:"required"`
	SubcategoryID int    `json:"subcategoryId" validate:"required"`
	Brand         string `json:"brand"`
}

// UpdateProductInput is a partial update; nil fields are left untouched.
type UpdateProductInput struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	Image         *string `json:"image"`
	CategoryID    *int    `json:"categoryId"`
	SubcategoryID *int    `json:"subcategoryId"`
	Brand         *string `json:"brand"`
}

// CreateVariantInput carries the fields of a new product variant.
type CreateVariantInput struct {
	ProductID   int    `json:"productId" validate:"required"`
	Color       string `json:"color"`
	Unit        string `json:"unit"`
	Quantity    string `json:"quantity"`
	Description string `json:"description"`
}

// CreateProductProviderInput links a product to a provider under a SKU.
type CreateProductProviderInput struct {
	ProductID  int    `json:"productId" validate:"required"`
	ProviderID int    `json:"providerId" validate:"required"`
	SkuID      string `json:"skuId" validate:"required"`
}

// ProductUsecase manages products, their variants and provider links.
//
// ListProducts applies at most one taxonomy filter: a subcategory filter
// wins over a category filter when both are supplied.
type ProductUsecase interface {
	ListProducts(ctx context.Context, categoryID, subcategoryID *int) ([]*entity.Product, error)

	// GetProduct retrieves a single product by id.
	GetProduct(ctx context.Context, id int) (*entity.Product, error)

	// CreateProduct adds a new product after verifying the subcategory
	// belongs to the chosen category.
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)

	// UpdateProduct applies a partial update. Taxonomy consistency is
	// re-verified whenever either taxonomy field changes.
	UpdateProduct(ctx context.Context, id int, input *UpdateProductInput) (*entity.Product, error)

	// ListVariants returns every variant of a product.
	ListVariants(ctx context.Context, productID int) ([]*entity.Variant, error)

	// CreateVariant adds a new variant to a product.
	CreateVariant(ctx context.Context, input *CreateVariantInput) (*entity.Variant, error)

	// LinkProvider records that a provider sells a product under a SKU.
	LinkProvider(ctx context.Context, input *CreateProductProviderInput) (*entity.ProductProvider, error)
}
