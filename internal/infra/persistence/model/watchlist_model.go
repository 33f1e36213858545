package model

import (
	"time"
)

// WatchlistModel mirrors the 'watchlist' table. The composite unique index
// keeps one logical entry per (user, product) pair.
type WatchlistModel struct {
	ID        int    `gorm:"primaryKey;autoIncrement"`
	UserID    string `gorm:"type:varchar(255);not null;uniqueIndex:idx_watchlist_user_product"`
	ProductID int    `gorm:"not null;uniqueIndex:idx_watchlist_user_product"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (WatchlistModel) TableName() string {
	return "watchlist"
}
