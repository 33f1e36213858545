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

// providerRepository implements the repository.ProviderRepository interface using GORM.
type providerRepository struct {
	db *gorm.DB
}

// NewProviderRepository is the constructor for providerRepository.
func NewProviderRepository(db *gorm.DB) repository.ProviderRepository {
	return &providerRepository{db: db}
}

// FindAll returns every provider ordered by primary key.
func (repo *providerRepository) FindAll(ctx context.Context) ([]*entity.Provider, error) {
	var providerMs []model.ProviderModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&providerMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list providers")
	}

	providers := make([]*entity.Provider, 0, len(providerMs))
	for i := range providerMs {
		providers = append(providers, toProviderDomain(&providerMs[i]))
	}

	return providers, nil
}

// Create persists a new provider and returns it with the generated ID.
func (repo *providerRepository) Create(ctx context.Context, provider *entity.Provider) (*entity.Provider, error) {
	providerM := fromProviderDomain(provider)

	if err := repo.db.WithContext(ctx).Create(providerM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("location does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("missing required provider fields")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create provider")
	}

	return toProviderDomain(providerM), nil
}

// --- Mapper Functions ---

func toProviderDomain(data *model.ProviderModel) *entity.Provider {
	if data == nil {
		return nil
	}

	return &entity.Provider{
		ID:           data.ID,
		Name:         data.Name,
		ProviderType: data.ProviderType,
		LocationID:   data.LocationID,
		CreatedAt:    data.CreatedAt,
	}
}

func fromProviderDomain(data *entity.Provider) *model.ProviderModel {
	if data == nil {
		return nil
	}

	return &model.ProviderModel{
		ID:           data.ID,
		Name:         data.Name,
		ProviderType: data.ProviderType,
		LocationID:   data.LocationID,
	}
}
