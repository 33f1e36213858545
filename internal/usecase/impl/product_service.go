package impl

import (
	"context"

	"pricewatch/internal/domain/entity"
	domainerrors "pricewatch/internal/domain/errors"
	"pricewatch/internal/domain/repository"
	"pricewatch/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type productService struct {
	productRepo         repository.ProductRepository
	subcategoryRepo     repository.SubcategoryRepository
	variantRepo         repository.VariantRepository
	productProviderRepo repository.ProductProviderRepository
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo         repository.ProductRepository
	SubcategoryRepo     repository.SubcategoryRepository
	VariantRepo         repository.VariantRepository
	ProductProviderRepo repository.ProductProviderRepository
}

// NewProductService creates a new product service instance
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo:         params.ProductRepo,
		subcategoryRepo:     params.SubcategoryRepo,
		variantRepo:         params.VariantRepo,
		productProviderRepo: params.ProductProviderRepo,
	}
}

// ListProducts returns products narrowed by at most one taxonomy filter.
func (s *productService) ListProducts(ctx context.Context, categoryID, subcategoryID *int) ([]*entity.Product, error) {
	products, err := s.productRepo.FindAll(ctx, categoryID, subcategoryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// GetProduct retrieves a single product by id.
func (s *productService) GetProduct(ctx context.Context, id int) (*entity.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to get product")
	}

	return product, nil
}

// CreateProduct adds a new product after verifying the subcategory belongs
// to the chosen category.
func (s *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	if err := s.verifyTaxonomy(ctx, input.CategoryID, input.SubcategoryID); err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:          input.Name,
		Description:   input.Description,
		Image:         input.Image,
		CategoryID:    input.CategoryID,
		SubcategoryID: input.SubcategoryID,
		Brand:         input.Brand,
	}

	created, err := s.productRepo.Create(ctx, product)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	return created, nil
}

// UpdateProduct applies a partial update. When either taxonomy field
// changes, consistency is re-verified against the values that will be
// stored.
func (s *productService) UpdateProduct(ctx context.Context, id int, input *usecase.UpdateProductInput) (*entity.Product, error) {
	current, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product for update")
	}

	if input.CategoryID != nil || input.SubcategoryID != nil {
		categoryID := current.CategoryID
		if input.CategoryID != nil {
			categoryID = *input.CategoryID
		}
		subcategoryID := current.SubcategoryID
		if input.SubcategoryID != nil {
			subcategoryID = *input.SubcategoryID
		}

		if err := s.verifyTaxonomy(ctx, categoryID, subcategoryID); err != nil {
			return nil, err
		}
	}

	patch := &entity.ProductPatch{
		Name:          input.Name,
		Description:   input.Description,
		Image:         input.Image,
		CategoryID:    input.CategoryID,
		SubcategoryID: input.SubcategoryID,
		Brand:         input.Brand,
	}

	updated, err := s.productRepo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	return updated, nil
}

// ListVariants returns every variant of a product.
func (s *productService) ListVariants(ctx context.Context, productID int) ([]*entity.Variant, error) {
	variants, err := s.variantRepo.FindByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list variants")
	}

	return variants, nil
}

// CreateVariant adds a new variant to a product.
func (s *productService) CreateVariant(ctx context.Context, input *usecase.CreateVariantInput) (*entity.Variant, error) {
	variant := &entity.Variant{
		ProductID:   input.ProductID,
		Color:       input.Color,
		Unit:        input.Unit,
		Quantity:    input.Quantity,
		Description: input.Description,
	}

	created, err := s.variantRepo.Create(ctx, variant)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create variant")
	}

	return created, nil
}

// LinkProvider records that a provider sells a product under a SKU.
func (s *productService) LinkProvider(ctx context.Context, input *usecase.CreateProductProviderInput) (*entity.ProductProvider, error) {
	link := &entity.ProductProvider{
		ProductID:  input.ProductID,
		ProviderID: input.ProviderID,
		SkuID:      input.SkuID,
	}

	created, err := s.productProviderRepo.Create(ctx, link)
	if err != nil {
		return nil, errors.Wrap(err, "failed to link product to provider")
	}

	return created, nil
}

// verifyTaxonomy checks that the subcategory exists and is a child of the
// given category.
func (s *productService) verifyTaxonomy(ctx context.Context, categoryID, subcategoryID int) error {
	subcategory, err := s.subcategoryRepo.FindByID(ctx, subcategoryID)
	if err != nil {
		if errors.Is(err, repository.ErrSubcategoryNotFound) {
			return domainerrors.ErrValidationFailed.WrapMessage("subcategory does not exist")
		}

		return errors.Wrap(err, "failed to verify subcategory")
	}

	if subcategory.CategoryID != categoryID {
		return domainerrors.ErrCategoryMismatch
	}

	return nil
}
