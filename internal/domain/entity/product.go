package entity

import "time"

// Product is the central catalog entity. Every product belongs to both a
// category and a subcategory, and the subcategory must be a child of that
// category.
type Product struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Image         string    `json:"image"`
	CategoryID    int       `json:"categoryId"`
	SubcategoryID int       `json:"subcategoryId"`
	Brand         string    `json:"brand"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ProductPatch is a partial update of a Product. Nil fields are left
// untouched by the storage layer.
type ProductPatch struct {
	Name          *string
	Description   *string
	Image         *string
	CategoryID    *int
	SubcategoryID *int
	Brand         *string
}

// IsEmpty reports whether the patch carries no changes at all.
func (p *ProductPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Image == nil &&
		p.CategoryID == nil && p.SubcategoryID == nil && p.Brand == nil
}

// Variant is a packaging/unit option of a product (e.g. 500g, 1L, red).
type Variant struct {
	ID          int       `json:"id"`
	ProductID   int       `json:"productId"`
	Color       string    `json:"color"`
	Unit        string    `json:"unit"`
	Quantity    string    `json:"quantity"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ProductProvider links a product to a provider through the provider's SKU.
type ProductProvider struct {
	ID         int       `json:"id"`
	ProductID  int       `json:"productId"`
	ProviderID int       `json:"providerId"`
	SkuID      string    `json:"skuId"`
	CreatedAt  time.Time `json:"createdAt"`
}
