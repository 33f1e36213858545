package impl

import (
	"context"
	"testing"

	"pricewatch/internal/domain/entity"
	domainerrors "pricewatch/internal/domain/errors"
	"pricewatch/internal/domain/repository"
	mockRepo "pricewatch/internal/mocks/repository"
	"pricewatch/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductServiceForTest(t *testing.T) (usecase.ProductUsecase, *mockRepo.MockProductRepository, *mockRepo.MockSubcategoryRepository, *mockRepo.MockVariantRepository, *mockRepo.MockProductProviderRepository) {
	t.Helper()

	productRepo := mockRepo.NewMockProductRepository(t)
	subcategoryRepo := mockRepo.NewMockSubcategoryRepository(t)
	variantRepo := mockRepo.NewMockVariantRepository(t)
	productProviderRepo := mockRepo.NewMockProductProviderRepository(t)

	service := NewProductService(ProductServiceParams{
		ProductRepo:         productRepo,
		SubcategoryRepo:     subcategoryRepo,
		VariantRepo:         variantRepo,
		ProductProviderRepo: productProviderRepo,
	})

	return service, productRepo, subcategoryRepo, variantRepo, productProviderRepo
}

func TestProductService_ListProducts_PassesFiltersThrough(t *testing.T) {
	service, productRepo, _, _, _ := newProductServiceForTest(t)
	ctx := context.Background()

	categoryID := 2
	subcategoryID := 7
	expected := []*entity.Product{{ID: 1, Name: "Olive Oil"}}

	productRepo.EXPECT().
		FindAll(ctx, &categoryID, &subcategoryID).
		Return(expected, nil)

	products, err := service.ListProducts(ctx, &categoryID, &subcategoryID)
	require.NoError(t, err)
	assert.Equal(t, expected, products)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	service, productRepo, _, _, _ := newProductServiceForTest(t)
	ctx := context.Background()

	productRepo.EXPECT().
		FindByID(ctx, 42).
		Return(nil, repository.ErrProductNotFound)

	product, err := service.GetProduct(ctx, 42)
	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_CreateProduct_Success(t *testing.T) {
	service, productRepo, subcategoryRepo, _, _ := newProductServiceForTest(t)
	ctx := context.Background()

	subcategoryRepo.EXPECT().
		FindByID(ctx, 7).
		Return(&entity.Subcategory{ID: 7, CategoryID: 2}, nil)

	productRepo.EXPECT().
		Create(ctx, &entity.Product{
			Name:          "Olive Oil",
			CategoryID:    2,
			SubcategoryID: 7,
			Brand:         "Borges",
		}).
		Return(&entity.Product{ID: 11, Name: "Olive Oil", CategoryID: 2, SubcategoryID: 7, Brand: "Borges"}, nil)

	product, err := service.CreateProduct(ctx, &usecase.CreateProductInput{
		Name:          "Olive Oil",
		CategoryID:    2,
		SubcategoryID: 7,
		Brand:         "Borges",
	})
	require.NoError(t, err)
	assert.Equal(t, 11, product.ID)
}

func TestProductService_CreateProduct_CategoryMismatch(t *testing.T) {
	service, _, subcategoryRepo, _, _ := newProductServiceForTest(t)
	ctx := context.Background()

	subcategoryRepo.EXPECT().
		FindByID(ctx, 7).
		Return(&entity.Subcategory{ID: 7, CategoryID: 99}, nil)

	product, err := service.CreateProduct(ctx, &usecase.CreateProductInput{
		Name:          "Olive Oil",
		CategoryID:    2,
		SubcategoryID: 7,
	})
	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryMismatch)
}

func TestProductService_CreateProduct_UnknownSubcategory(t *testing.T) {
	service, _, subcategoryRepo, _, _ := newProductServiceForTest(t)
	ctx := context.Background()

	subcategoryRepo.EXPECT().
		FindByID(ctx, 7).
		Return(nil, repository.ErrSubcategoryNotFound)

	product, err := service.CreateProduct(ctx, &usecase.CreateProductInput{
		Name:          "Olive Oil",
		CategoryID:    2,
		SubcategoryID: 7,
	})
	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProductService_UpdateProduct_PartialPatchSkipsTaxonomyCheck(t *testing.T) {
	service, productRepo, _, _, _ := newProductServiceForTest(t)
	ctx := context.Background()

	name := "Extra Virgin Olive Oil"
	current := &entity.Product{ID: 11, Name: "Olive Oil", CategoryID: 2, SubcategoryID: 7}

	productRepo.EXPECT().
		FindByID(ctx, 11).
		Return(current, nil)

	productRepo.EXPECT().
		Update(ctx, 11, &entity.ProductPatch{Name: &name}).
		Return(&entity.Product{ID: 11, Name: name, CategoryID: 2, SubcategoryID: 7}, nil)

	product, err := service.UpdateProduct(ctx, 11, &usecase.UpdateProductInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, product.Name)
}

func TestProductService_UpdateProduct_TaxonomyChangeIsVerifiedAgainstEffectiveValues(t *testing.T) {
	service, productRepo, subcategoryRepo, _, _ := newProductServiceForTest(t)
	ctx := context.Background()

	// Only the subcategory moves; the stored category is what it must match.
	newSubcategoryID := 9
	current := &entity.Product{ID: 11, CategoryID: 2, SubcategoryID: 7}

	productRepo.EXPECT().
		FindByID(ctx, 11).
		Return(current, nil)

	subcategoryRepo.EXPECT().
		FindByID(ctx, 9).
		Return(&entity.Subcategory{ID: 9, CategoryID: 3}, nil)

	product, err := service.UpdateProduct(ctx, 11, &usecase.UpdateProductInput{SubcategoryID: &newSubcategoryID})
	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryMismatch)
}

func TestProductService_UpdateProduct_NotFound(t *testing.T) {
	service, productRepo, _, _, _ := newProductServiceForTest(t)
	ctx := context.Background()

	name := "whatever"

	productRepo.EXPECT().
		FindByID(ctx, 404).
		Return(nil, repository.ErrProductNotFound)

	product, err := service.UpdateProduct(ctx, 404, &usecase.UpdateProductInput{Name: &name})
	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_ListVariants(t *testing.T) {
	service, _, _, variantRepo, _ := newProductServiceForTest(t)
	ctx := context.Background()

	expected := []*entity.Variant{{ID: 1, ProductID: 11, Quantity: "500g"}}

	variantRepo.EXPECT().
		FindByProduct(ctx, 11).
		Return(expected, nil)

	variants, err := service.ListVariants(ctx, 11)
	require.NoError(t, err)
	assert.Equal(t, expected, variants)
}

func TestProductService_LinkProvider(t *testing.T) {
	service, _, _, _, productProviderRepo := newProductServiceForTest(t)
	ctx := context.Background()

	productProviderRepo.EXPECT().
		Create(ctx, &entity.ProductProvider{ProductID: 11, ProviderID: 3, SkuID: "SKU-123"}).
		Return(&entity.ProductProvider{ID: 1, ProductID: 11, ProviderID: 3, SkuID: "SKU-123"}, nil)

	link, err := service.LinkProvider(ctx, &usecase.CreateProductProviderInput{
		ProductID:  11,
		ProviderID: 3,
		SkuID:      "SKU-123",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, link.ID)
}
