package postgres

import (
	"context"
	"time"

	"pricewatch/internal/domain/entity"
	domainerrors "pricewatch/internal/domain/errors"
	"pricewatch/internal/domain/repository"
	"pricewatch/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// priceRepository implements the repository.PriceRepository interface using
// GORM. Price rows are append-only; there is no update or delete path.
type priceRepository struct {
	db *gorm.DB
}

// NewPriceRepository is the constructor for priceRepository.
func NewPriceRepository(db *gorm.DB) repository.PriceRepository {
	return &priceRepository{db: db}
}

// FindByProduct returns price rows for a product, newest first. A variant
// filter narrows the result to that variant's rows.
func (repo *priceRepository) FindByProduct(ctx context.Context, productID int, variantID *int) ([]*entity.Price, error) {
	query := repo.db.WithContext(ctx).Where("product_id = ?", productID)
	if variantID != nil {
		query = query.Where("variant_id = ?", *variantID)
	}

	var priceMs []model.PriceModel
	if err := query.Order("timestamp DESC").Find(&priceMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list prices")
	}

	return toPriceDomains(priceMs), nil
}

// FindHistory returns price rows for a product recorded at or after the
// given instant, newest first.
func (repo *priceRepository) FindHistory(ctx context.Context, productID int, since time.Time) ([]*entity.Price, error) {
	var priceMs []model.PriceModel
	err := repo.db.WithContext(ctx).
		Where("product_id = ? AND timestamp >= ?", productID, since).
		Order("timestamp DESC").
		Find(&priceMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list price history")
	}

	return toPriceDomains(priceMs), nil
}

// Create appends a new price observation and returns it with the generated
// ID and timestamp.
func (repo *priceRepository) Create(ctx context.Context, price *entity.Price) (*entity.Price, error) {
	priceM := fromPriceDomain(price)

	if err := repo.db.WithContext(ctx).Create(priceM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("product, variant or provider does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("missing required price fields")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create price")
	}

	return toPriceDomain(priceM), nil
}

// --- Mapper Functions ---

func toPriceDomains(data []model.PriceModel) []*entity.Price {
	prices := make([]*entity.Price, 0, len(data))
	for i := range data {
		prices = append(prices, toPriceDomain(&data[i]))
	}

	return prices
}

func toPriceDomain(data *model.PriceModel) *entity.Price {
	if data == nil {
		return nil
	}

	return &entity.Price{
		ID:            data.ID,
		ProductID:     data.ProductID,
		VariantID:     data.VariantID,
		ProviderID:    data.ProviderID,
		OriginalPrice: data.OriginalPrice,
		Discount:      data.Discount,
		FinalPrice:    data.FinalPrice,
		SkuID:         data.SkuID,
		Timestamp:     data.Timestamp,
	}
}

func fromPriceDomain(data *entity.Price) *model.PriceModel {
	if data == nil {
		return nil
	}

	return &model.PriceModel{
		ID:            data.ID,
		ProductID:     data.ProductID,
		VariantID:     data.VariantID,
		ProviderID:    data.ProviderID,
		OriginalPrice: data.OriginalPrice,
		Discount:      data.Discount,
		FinalPrice:    data.FinalPrice,
		SkuID:         data.SkuID,
	}
}
