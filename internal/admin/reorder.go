package admin

import (
	"sort"

	"shawarma-storefront/internal/entity"
)

// ReorderAvailable moves the identified product to the requested position
// among available products and returns those products with a fresh
// contiguous zero-based sort order. Unavailable products are excluded from
// the numeric ordering space entirely; the admin list shows them
// alphabetically below the ordered ones. Positions outside the valid range
// clamp to the nearest end. A move of an unknown or unavailable id just
// re-packs the current arrangement.
func ReorderAvailable(products []entity.Product, id, position int) []entity.Product {
	ordered := availableBySortOrder(products)

	from := -1
	for i, p := range ordered {
		if p.ID == id {
			from = i
			break
		}
	}

	if from >= 0 {
		if position < 0 {
			position = 0
		}
		if position > len(ordered)-1 {
			position = len(ordered) - 1
		}

		moved := ordered[from]
		ordered = append(ordered[:from], ordered[from+1:]...)
		ordered = append(ordered[:position], append([]entity.Product{moved}, ordered[position:]...)...)
	}

	return pack(ordered)
}

// PackSortOrder rewrites the sort order of the available products in their
// current arrangement so the sequence is contiguous and zero-based again,
// used after availability changes punch holes in it.
func PackSortOrder(products []entity.Product) []entity.Product {
	return pack(availableBySortOrder(products))
}

func availableBySortOrder(products []entity.Product) []entity.Product {
	ordered := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if p.Available {
			ordered = append(ordered, p)
		}
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].SortOrder < ordered[j].SortOrder
	})

	return ordered
}

func pack(ordered []entity.Product) []entity.Product {
	for i := range ordered {
		ordered[i].SortOrder = i
	}
	return ordered
}
