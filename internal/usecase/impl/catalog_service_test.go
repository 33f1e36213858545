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

func newCatalogServiceForTest(t *testing.T) (usecase.CatalogUsecase, *mockRepo.MockCategoryRepository, *mockRepo.MockSubcategoryRepository) {
	t.Helper()

	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	subcategoryRepo := mockRepo.NewMockSubcategoryRepository(t)
	service := NewCatalogService(CatalogServiceParams{
		CategoryRepo:    categoryRepo,
		SubcategoryRepo: subcategoryRepo,
	})

	return service, categoryRepo, subcategoryRepo
}

func TestCatalogService_ListCategories(t *testing.T) {
	service, categoryRepo, _ := newCatalogServiceForTest(t)
	ctx := context.Background()

	expected := []*entity.Category{{ID: 1, Name: "Groceries", Slug: "groceries"}}

	categoryRepo.EXPECT().
		FindAll(ctx).
		Return(expected, nil)

	categories, err := service.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, categories)
}

func TestCatalogService_GetCategory_NotFound(t *testing.T) {
	service, categoryRepo, _ := newCatalogServiceForTest(t)
	ctx := context.Background()

	categoryRepo.EXPECT().
		FindByID(ctx, 42).
		Return(nil, repository.ErrCategoryNotFound)

	category, err := service.GetCategory(ctx, 42)
	require.Error(t, err)
	assert.Nil(t, category)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCatalogService_CreateCategory(t *testing.T) {
	service, categoryRepo, _ := newCatalogServiceForTest(t)
	ctx := context.Background()

	categoryRepo.EXPECT().
		Create(ctx, &entity.Category{Name: "Groceries", Slug: "groceries"}).
		Return(&entity.Category{ID: 1, Name: "Groceries", Slug: "groceries"}, nil)

	category, err := service.CreateCategory(ctx, &usecase.CreateCategoryInput{
		Name: "Groceries",
		Slug: "groceries",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, category.ID)
}

func TestCatalogService_CreateCategory_DuplicateSlug(t *testing.T) {
	service, categoryRepo, _ := newCatalogServiceForTest(t)
	ctx := context.Background()

	categoryRepo.EXPECT().
		Create(ctx, &entity.Category{Name: "Groceries", Slug: "groceries"}).
		Return(nil, domainerrors.ErrSlugAlreadyExists)

	category, err := service.CreateCategory(ctx, &usecase.CreateCategoryInput{
		Name: "Groceries",
		Slug: "groceries",
	})
	require.Error(t, err)
	assert.Nil(t, category)
	assert.ErrorIs(t, err, domainerrors.ErrSlugAlreadyExists)
}

func TestCatalogService_ListSubcategories_FilteredByCategory(t *testing.T) {
	service, _, subcategoryRepo := newCatalogServiceForTest(t)
	ctx := context.Background()

	categoryID := 1
	expected := []*entity.Subcategory{{ID: 7, Name: "Oils", Slug: "oils", CategoryID: 1}}

	subcategoryRepo.EXPECT().
		FindAll(ctx, &categoryID).
		Return(expected, nil)

	subcategories, err := service.ListSubcategories(ctx, &categoryID)
	require.NoError(t, err)
	assert.Equal(t, expected, subcategories)
}

func TestCatalogService_CreateSubcategory(t *testing.T) {
	service, _, subcategoryRepo := newCatalogServiceForTest(t)
	ctx := context.Background()

	subcategoryRepo.EXPECT().
		Create(ctx, &entity.Subcategory{Name: "Oils", Slug: "oils", CategoryID: 1}).
		Return(&entity.Subcategory{ID: 7, Name: "Oils", Slug: "oils", CategoryID: 1}, nil)

	subcategory, err := service.CreateSubcategory(ctx, &usecase.CreateSubcategoryInput{
		Name:       "Oils",
		Slug:       "oils",
		CategoryID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, subcategory.ID)
}
