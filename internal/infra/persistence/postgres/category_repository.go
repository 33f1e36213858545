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

// categoryRepository implements the repository.CategoryRepository interface using GORM.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

// FindAll returns every category ordered by primary key.
func (repo *categoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	var categoryMs []model.CategoryModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&categoryMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryMs))
	for i := range categoryMs {
		categories = append(categories, toCategoryDomain(&categoryMs[i]))
	}

	return categories, nil
}

// FindByID retrieves a single category by its ID.
func (repo *categoryRepository) FindByID(ctx context.Context, id int) (*entity.Category, error) {
	var categoryM model.CategoryModel
	if err := repo.db.WithContext(ctx).First(&categoryM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by id")
	}

	return toCategoryDomain(&categoryM), nil
}

// Create persists a new category and returns it with the generated ID.
func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) (*entity.Category, error) {
	categoryM := fromCategoryDomain(category)

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, domainerrors.ErrSlugAlreadyExists.WrapMessage("category slug already exists")
		}
		if isNotNullConstraintViolation(err) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("missing required category fields")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	return toCategoryDomain(categoryM), nil
}

// --- Mapper Functions ---

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:        data.ID,
		Name:      data.Name,
		Slug:      data.Slug,
		Image:     data.Image,
		CreatedAt: data.CreatedAt,
	}
}

func fromCategoryDomain(data *entity.Category) *model.CategoryModel {
	if data == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:    data.ID,
		Name:  data.Name,
		Slug:  data.Slug,
		Image: data.Image,
	}
}
