package model

import (
	"time"
)

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID        int    `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(255);not null"`
	Slug      string `gorm:"type:varchar(255);not null;unique"`
	Image     string `gorm:"type:text"`
	CreatedAt time.Time

	Subcategories []SubcategoryModel `gorm:"foreignKey:CategoryID"`
	Products      []ProductModel     `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// SubcategoryModel mirrors the 'subcategories' table. CategoryID references
// categories.id and is required.
type SubcategoryModel struct {
	ID         int    `gorm:"primaryKey;autoIncrement"`
	Name       string `gorm:"type:varchar(255);not null"`
	Slug       string `gorm:"type:varchar(255);not null;unique"`
	Image      string `gorm:"type:text"`
	CategoryID int    `gorm:"not null;index"`
	CreatedAt  time.Time

	Products []ProductModel `gorm:"foreignKey:SubcategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (SubcategoryModel) TableName() string {
	return "subcategories"
}
