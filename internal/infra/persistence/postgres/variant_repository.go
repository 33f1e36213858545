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

// variantRepository implements the repository.VariantRepository interface using GORM.
type variantRepository struct {
	db *gorm.DB
}

// NewVariantRepository is the constructor for variantRepository.
func NewVariantRepository(db *gorm.DB) repository.VariantRepository {
	return &variantRepository{db: db}
}

// FindByProduct returns every variant of one product ordered by primary key.
func (repo *variantRepository) FindByProduct(ctx context.Context, productID int) ([]*entity.Variant, error) {
	var variantMs []model.VariantModel
	if err := repo.db.WithContext(ctx).Where("product_id = ?", productID).Order("id").Find(&variantMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list variants")
	}

	variants := make([]*entity.Variant, 0, len(variantMs))
	for i := range variantMs {
		variants = append(variants, toVariantDomain(&variantMs[i]))
	}

	return variants, nil
}

// Create persists a new variant and returns it with the generated ID.
func (repo *variantRepository) Create(ctx context.Context, variant *entity.Variant) (*entity.Variant, error) {
	variantM := fromVariantDomain(variant)

	if err := repo.db.WithContext(ctx).Create(variantM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("product does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("missing required variant fields")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create variant")
	}

	return toVariantDomain(variantM), nil
}

// --- Mapper Functions ---

func toVariantDomain(data *model.VariantModel) *entity.Variant {
	if data == nil {
		return nil
	}

	return &entity.Variant{
		ID:          data.ID,
		ProductID:   data.ProductID,
		Color:       data.Color,
		Unit:        data.Unit,
		Quantity:    data.Quantity,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
	}
}

func fromVariantDomain(data *entity.Variant) *model.VariantModel {
	if data == nil {
		return nil
	}

	return &model.VariantModel{
		ID:          data.ID,
		ProductID:   data.ProductID,
		Color:       data.Color,
		Unit:        data.Unit,
		Quantity:    data.Quantity,
		Description: data.Description,
	}
}
