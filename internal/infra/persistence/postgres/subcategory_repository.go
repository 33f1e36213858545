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

// subcategoryRepository implements the repository.SubcategoryRepository interface using GORM.
type subcategoryRepository struct {
	db *gorm.DB
}

// NewSubcategoryRepository is the constructor for subcategoryRepository.
func NewSubcategoryRepository(db *gorm.DB) repository.SubcategoryRepository {
	return &subcategoryRepository{db: db}
}

// FindAll returns subcategories, optionally narrowed to one parent category.
func (repo *subcategoryRepository) FindAll(ctx context.Context, categoryID *int) ([]*entity.Subcategory, error) {
	query := repo.db.WithContext(ctx).Order("id")
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	var subcategoryMs []model.SubcategoryModel
	if err := query.Find(&subcategoryMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list subcategories")
	}

	subcategories := make([]*entity.Subcategory, 0, len(subcategoryMs))
	for i := range subcategoryMs {
		subcategories = append(subcategories, toSubcategoryDomain(&subcategoryMs[i]))
	}

	return subcategories, nil
}

// FindByID retrieves a single subcategory by its ID.
func (repo *subcategoryRepository) FindByID(ctx context.Context, id int) (*entity.Subcategory, error) {
	var subcategoryM model.SubcategoryModel
	if err := repo.db.WithContext(ctx).First(&subcategoryM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubcategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find subcategory by id")
	}

	return toSubcategoryDomain(&subcategoryM), nil
}

// Create persists a new subcategory and returns it with the generated ID.
func (repo *subcategoryRepository) Create(ctx context.Context, subcategory *entity.Subcategory) (*entity.Subcategory, error) {
	subcategoryM := fromSubcategoryDomain(subcategory)

	if err := repo.db.WithContext(ctx).Create(subcategoryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, domainerrors.ErrSlugAlreadyExists.WrapMessage("subcategory slug already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return nil, domainerrors.ErrCategoryNotFound.WrapMessage("parent category does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("missing required subcategory fields")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create subcategory")
	}

	return toSubcategoryDomain(subcategoryM), nil
}

// --- Mapper Functions ---

func toSubcategoryDomain(data *model.SubcategoryModel) *entity.Subcategory {
	if data == nil {
		return nil
	}

	return &entity.Subcategory{
		ID:         data.ID,
		Name:       data.Name,
		Slug:       data.Slug,
		Image:      data.Image,
		CategoryID: data.CategoryID,
		CreatedAt:  data.CreatedAt,
	}
}

func fromSubcategoryDomain(data *entity.Subcategory) *model.SubcategoryModel {
	if data == nil {
		return nil
	}

	return &model.SubcategoryModel{
		ID:         data.ID,
		Name:       data.Name,
		Slug:       data.Slug,
		Image:      data.Image,
		CategoryID: data.CategoryID,
	}
}
