package model

import (
	"time"
)

// ProductModel mirrors the 'products' table. Both CategoryID and
// SubcategoryID are required foreign keys.
type ProductModel struct {
	ID            int    `gorm:"primaryKey;autoIncrement"`
	Name          string `gorm:"type:varchar(255);not null"`
	Description   string `gorm:"type:text"`
	Image         string `gorm:"type:text"`
	CategoryID    int    `gorm:"not null;index"`
	SubcategoryID int    `gorm:"not null;index"`
	Brand         string `gorm:"type:varchar(255)"`
	CreatedAt     time.Time

	Variants         []VariantModel         `gorm:"foreignKey:ProductID"`
	Prices           []PriceModel           `gorm:"foreignKey:ProductID"`
	ProductProviders []ProductProviderModel `gorm:"foreignKey:ProductID"`
	WatchlistEntries []WatchlistModel       `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// VariantModel mirrors the 'variants' table.
type VariantModel struct {
	ID          int    `gorm:"primaryKey;autoIncrement"`
	ProductID   int    `gorm:"not null;index"`
	Color       string `gorm:"type:varchar(100)"`
	Unit        string `gorm:"type:varchar(50)"`  // kg, litre, piece, etc.
	Quantity    string `gorm:"type:varchar(50)"`  // 500g, 1kg, etc.
	Description string `gorm:"type:text"`
	CreatedAt   time.Time

	Prices []PriceModel `gorm:"foreignKey:VariantID"`
}

// TableName explicitly sets the table name for GORM.
func (VariantModel) TableName() string {
	return "variants"
}

// ProductProviderModel mirrors the 'product_providers' junction table.
type ProductProviderModel struct {
	ID         int    `gorm:"primaryKey;autoIncrement"`
	ProductID  int    `gorm:"not null;index"`
	ProviderID int    `gorm:"not null;index"`
	SkuID      string `gorm:"type:varchar(255);not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductProviderModel) TableName() string {
	return "product_providers"
}
