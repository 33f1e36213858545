package postgres

import (
	"context"

	"pricewatch/internal/domain/entity"
	domainerrors "pricewatch/internal/domain/errors"
	"pricewatch/internal/domain/repository"
	"pricewatch/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindAll returns products narrowed by at most one taxonomy filter. When both
// filters are supplied only the subcategory applies, it being the more
// specific of the two.
func (repo *productRepository) FindAll(ctx context.Context, categoryID, subcategoryID *int) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).Order("id")
	switch {
	case subcategoryID != nil:
		query = query.Where("subcategory_id = ?", *subcategoryID)
	case categoryID != nil:
		query = query.Where("category_id = ?", *categoryID)
	}

	var productMs []model.ProductModel
	if err := query.Find(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productMs))
	for i := range productMs {
		products = append(products, toProductDomain(&productMs[i]))
	}

	return products, nil
}

// FindByID retrieves a single product by its ID.
func (repo *productRepository) FindByID(ctx context.Context, id int) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).First(&productM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// Create persists a new product and returns it with the generated ID.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("category or subcategory does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("missing required product fields")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	return toProductDomain(productM), nil
}

// Update applies a partial update and returns the resulting row. Only fields
// set on the patch are written.
func (repo *productRepository) Update(ctx context.Context, id int, patch *entity.ProductPatch) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).First(&productM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product for update")
	}

	updates := patchToUpdates(patch)
	if len(updates) == 0 {
		return toProductDomain(&productM), nil
	}

	if err := repo.db.WithContext(ctx).Model(&productM).Updates(updates).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("category or subcategory does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("missing required product fields")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}

	return toProductDomain(&productM), nil
}

// patchToUpdates builds a column map so GORM writes exactly the patched
// fields, zero values included.
func patchToUpdates(patch *entity.ProductPatch) map[string]any {
	updates := make(map[string]any)
	if patch == nil {
		return updates
	}

	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Image != nil {
		updates["image"] = *patch.Image
	}
	if patch.CategoryID != nil {
		updates["category_id"] = *patch.CategoryID
	}
	if patch.SubcategoryID != nil {
		updates["subcategory_id"] = *patch.SubcategoryID
	}
	if patch.Brand != nil {
		updates["brand"] = *patch.Brand
	}

	return updates
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:            data.ID,
		Name:          data.Name,
		Description:   data.Description,
		Image:         data.Image,
		CategoryID:    data.CategoryID,
		SubcategoryID: data.SubcategoryID,
		Brand:         data.Brand,
		CreatedAt:     data.CreatedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:            data.ID,
		Name:          data.Name,
		Description:   data.Description,
		Image:         data.Image,
		CategoryID:    data.CategoryID,
		SubcategoryID: data.SubcategoryID,
		Brand:         data.Brand,
	}
}
