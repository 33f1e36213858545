package entity

import "time"

// Category is a top-level grouping of products. Slug is unique and used in
// client-side navigation.
type Category struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
}

// Subcategory is a second-level grouping that always belongs to a Category.
type Subcategory struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	Image      string    `json:"image"`
	CategoryID int       `json:"categoryId"`
	CreatedAt  time.Time `json:"createdAt"`
}
