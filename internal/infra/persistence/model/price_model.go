package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceModel mirrors the 'prices' table. Rows are append-only; the table
// has no update path in any repository. Money columns are fixed-point
// numerics so values survive the round trip without float drift.
type PriceModel struct {
	ID            int             `gorm:"primaryKey;autoIncrement"`
	ProductID     int             `gorm:"not null;index"`
	VariantID     *int            `gorm:"index"`
	ProviderID    int             `gorm:"not null;index"`
	OriginalPrice decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Discount      decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0.00"` // percentage
	FinalPrice    decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	SkuID         string          `gorm:"type:varchar(255)"`
	Timestamp     time.Time       `gorm:"column:timestamp;not null;autoCreateTime;index"`
}

// TableName explicitly sets the table name for GORM.
func (PriceModel) TableName() string {
	return "prices"
}
