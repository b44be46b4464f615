package cart

import "shawarma-storefront/internal/entity"

// Delivery is free; the threshold below is the smallest cart total the
// checkout screen accepts. Both are checked by the checkout layer, never
// folded into the totals computed here.
const (
	DeliveryFee  = 0
	MinimumOrder = 500
)

// ItemTotal is (base price + sum of add-on price x add-on quantity) x item
// quantity. Recomputed on every read; nothing stores it.
func ItemTotal(item entity.LineItem) int {
	addonTotal := 0
	for _, addon := range item.Addons {
		addonTotal += addon.Price * addon.Quantity
	}
	return (item.Product.Price + addonTotal) * item.Quantity
}

// ItemCount is the sum of line-item quantities, the number shown on the cart
// badge.
func ItemCount(items []entity.LineItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

// CartTotal is the sum of per-item totals across the cart.
func CartTotal(items []entity.LineItem) int {
	total := 0
	for _, item := range items {
		total += ItemTotal(item)
	}
	return total
}
