package model

import (
	"time"
)

// ProviderModel mirrors the 'providers' table. LocationID references
// locations.id and is required.
type ProviderModel struct {
	ID           int    `gorm:"primaryKey;autoIncrement"`
	Name         string `gorm:"type:varchar(255);not null"`
	ProviderType string `gorm:"type:varchar(100);not null"`
	LocationID   int    `gorm:"not null;index"`
	CreatedAt    time.Time

	Prices           []PriceModel           `gorm:"foreignKey:ProviderID"`
	ProductProviders []ProductProviderModel `gorm:"foreignKey:ProviderID"`
}

// TableName explicitly sets the table name for GORM.
func (ProviderModel) TableName() string {
	return "providers"
}
