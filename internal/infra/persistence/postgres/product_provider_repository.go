package postgres

import (
	"context"

	"pricewatch/internal/domain/entity"
	domainerrors "pricewatch/internal/domain/errors"
	"pricewatch/internal/domain/repository"
	"pricewatch/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// productProviderRepository implements the repository.ProductProviderRepository interface using GORM.
type productProviderRepository struct {
	db *gorm.DB
}

// NewProductProviderRepository is the constructor for productProviderRepository.
func NewProductProviderRepository(db *gorm.DB) repository.ProductProviderRepository {
	return &productProviderRepository{db: db}
}

// Create persists a product-to-provider link and returns it with the generated ID.
func (repo *productProviderRepository) Create(ctx context.Context, link *entity.ProductProvider) (*entity.ProductProvider, error) {
	linkM := fromProductProviderDomain(link)

	if err := repo.db.WithContext(ctx).Create(linkM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("product or provider does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("missing required product provider fields")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create product provider link")
	}

	return toProductProviderDomain(linkM), nil
}

// --- Mapper Functions ---

func toProductProviderDomain(data *model.ProductProviderModel) *entity.ProductProvider {
	if data == nil {
		return nil
	}

	return &entity.ProductProvider{
		ID:         data.ID,
		ProductID:  data.ProductID,
		ProviderID: data.ProviderID,
		SkuID:      data.SkuID,
		CreatedAt:  data.CreatedAt,
	}
}

func fromProductProviderDomain(data *entity.ProductProvider) *model.ProductProviderModel {
	if data == nil {
		return nil
	}

	return &model.ProductProviderModel{
		ID:         data.ID,
		ProductID:  data.ProductID,
		ProviderID: data.ProviderID,
		SkuID:      data.SkuID,
	}
}
