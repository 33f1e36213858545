package model

import (
	"time"
)

// LocationModel mirrors the 'locations' table. Coordinates is a JSON string
// with lat/lng, stored as supplied.
type LocationModel struct {
	ID          int    `gorm:"primaryKey;autoIncrement"`
	Country     string `gorm:"type:varchar(100);not null"`
	City        string `gorm:"type:varchar(100);not null"`
	Address     string `gorm:"type:text"`
	Coordinates string `gorm:"type:text"`
	CreatedAt   time.Time

	Providers []ProviderModel `gorm:"foreignKey:LocationID"`
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}
