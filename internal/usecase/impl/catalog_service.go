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

type catalogService struct {
	categoryRepo    repository.CategoryRepository
	subcategoryRepo repository.SubcategoryRepository
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CategoryRepo    repository.CategoryRepository
	SubcategoryRepo repository.SubcategoryRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		categoryRepo:    params.CategoryRepo,
		subcategoryRepo: params.SubcategoryRepo,
	}
}

// ListCategories returns every category.
func (s *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// GetCategory retrieves a single category by id.
func (s *catalogService) GetCategory(ctx context.Context, id int) (*entity.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to get category")
	}

	return category, nil
}

// CreateCategory adds a new top-level category.
func (s *catalogService) CreateCategory(ctx context.Context, input *usecase.CreateCategoryInput) (*entity.Category, error) {
	category := &entity.Category{
		Name:  input.Name,
		Slug:  input.Slug,
		Image: input.Image,
	}

	created, err := s.categoryRepo.Create(ctx, category)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	return created, nil
}

// ListSubcategories returns subcategories, optionally narrowed to one parent
// category.
func (s *catalogService) ListSubcategories(ctx context.Context, categoryID *int) ([]*entity.Subcategory, error) {
	subcategories, err := s.subcategoryRepo.FindAll(ctx, categoryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subcategories")
	}

	return subcategories, nil
}

// CreateSubcategory adds a new subcategory under an existing category.
func (s *catalogService) CreateSubcategory(ctx context.Context, input *usecase.CreateSubcategoryInput) (*entity.Subcategory, error) {
	subcategory := &entity.Subcategory{
		Name:       input.Name,
		Slug:       input.Slug,
		Image:      input.Image,
		CategoryID: input.CategoryID,
	}

	created, err := s.subcategoryRepo.Create(ctx, subcategory)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create subcategory")
	}

	return created, nil
}
