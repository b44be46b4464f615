package entity

// AddonCategory groups optional product modifications and carries the
// selection-count rules the configurator enforces.
type AddonCategory struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	MinSelections int           `json:"minSelections"`
	MaxSelections int           `json:"maxSelections"`
	Required      bool          `json:"isRequired"`
	Options       []AddonOption `json:"options"`
}

type AddonOption struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Price           int    `json:"price"`
	DefaultSelected bool   `json:"isDefault"`
	MaxQuantity     int    `json:"maxQuantity"`
}

// SelectedAddon is a confirmed add-on choice frozen into a line item. It is a
// snapshot, not a live reference: option and category names and the price are
// copied at selection time and never mutated afterwards.
type SelectedAddon struct {
	OptionID     int    `json:"optionId"`
	CategoryID   int    `json:"categoryId"`
	Name         string `json:"name"`
	CategoryName string `json:"categoryName"`
	Price        int    `json:"price"`
	Quantity     int    `json:"quantity"`
}
