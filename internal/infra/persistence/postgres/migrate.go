package postgres

import (
	"pricewatch/internal/errors"
	"pricewatch/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// RunMigrations applies the schema for every persistence model. Ordering
// matters only for readability; GORM resolves foreign keys either way.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.SessionModel{},
		&model.UserModel{},
		&model.CategoryModel{},
		&model.SubcategoryModel{},
		&model.LocationModel{},
		&model.ProviderModel{},
		&model.ProductModel{},
		&model.VariantModel{},
		&model.ProductProviderModel{},
		&model.PriceModel{},
		&model.WatchlistModel{},
	); err != nil {
		return errors.Wrap(err, "failed to run database migrations")
	}

	return nil
}
