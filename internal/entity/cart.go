package entity

// LineItem is one cart entry: a product snapshot configured with a specific
// add-on selection. Key is derived from the product id and the add-on
// multiset; two additions with the same key merge into one line item.
type LineItem struct {
	Key          string          `json:"key"`
	Product      Product         `json:"product"`
	Quantity     int             `json:"quantity"`
	Addons       []SelectedAddon `json:"addons"`
	Instructions string          `json:"instructions"`
}

// Cart is the ordered line-item sequence for one session.
type Cart struct {
	Items []LineItem `json:"items"`
}
