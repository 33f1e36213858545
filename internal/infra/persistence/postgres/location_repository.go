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

// locationRepository implements the repository.LocationRepository interface using GORM.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

// FindAll returns every location ordered by primary key.
func (repo *locationRepository) FindAll(ctx context.Context) ([]*entity.Location, error) {
	var locationMs []model.LocationModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&locationMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list locations")
	}

	locations := make([]*entity.Location, 0, len(locationMs))
	for i := range locationMs {
		locations = append(locations, toLocationDomain(&locationMs[i]))
	}

	return locations, nil
}

// Create persists a new location and returns it with the generated ID.
func (repo *locationRepository) Create(ctx context.Context, location *entity.Location) (*entity.Location, error) {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).Create(locationM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("missing required location fields")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create location")
	}

	return toLocationDomain(locationM), nil
}

// --- Mapper Functions ---

func toLocationDomain(data *model.LocationModel) *entity.Location {
	if data == nil {
		return nil
	}

	return &entity.Location{
		ID:          data.ID,
		Country:     data.Country,
		City:        data.City,
		Address:     data.Address,
		Coordinates: data.Coordinates,
		CreatedAt:   data.CreatedAt,
	}
}

func fromLocationDomain(data *entity.Location) *model.LocationModel {
	if data == nil {
		return nil
	}

	return &model.LocationModel{
		ID:          data.ID,
		Country:     data.Country,
		City:        data.City,
		Address:     data.Address,
		Coordinates: data.Coordinates,
	}
}
