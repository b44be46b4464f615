package entity

// Product is a single menu item as served by the catalog API. Price is in
// whole currency units; the storefront never displays fractions.
type Product struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Category    string `json:"category"`
	IsSpicy     bool   `json:"isSpicy"`
	HasCheese   bool   `json:"hasCheese"`
	Available   bool   `json:"isAvailable"`
	Promotional bool   `json:"isPromotion"`
	ImageURL    string `json:"imageUrl"`
	SortOrder   int    `json:"sortOrder"`
}

// ProductImage is one entry of a product's image sub-resource.
type ProductImage struct {
	ID        int    `json:"id"`
	ProductID int    `json:"shawarmaId"`
	URL       string `json:"url"`
	Primary   bool   `json:"isPrimary"`
}
