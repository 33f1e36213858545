package model

import (
	"time"
)

// UserModel mirrors the 'users' table. IDs come from the external identity
// provider, so the column is a plain varchar primary key.
type UserModel struct {
	ID              string `gorm:"type:varchar(255);primaryKey"`
	Email           string `gorm:"type:varchar(255);unique"`
	FirstName       string `gorm:"type:varchar(255)"`
	LastName        string `gorm:"type:varchar(255)"`
	ProfileImageURL string `gorm:"type:text"`
	Role            string `gorm:"type:varchar(20);not null;default:GENERAL"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	WatchlistEntries []WatchlistModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
