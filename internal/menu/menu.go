package menu

import (
	"sort"
	"strings"

	"shawarma-storefront/internal/entity"
)

// Menu is the display structure the storefront renders: the promotional
// bucket first when non-empty, then category sections in lexicographic
// order. An empty Menu is the valid "no results" state, not an error.
type Menu struct {
	Promotions []entity.Product  `json:"promotions"`
	Categories []CategorySection `json:"categories"`
}

type CategorySection struct {
	Name     string           `json:"name"`
	Products []entity.Product `json:"products"`
}

// Empty reports whether filtering produced no products at all.
func (m Menu) Empty() bool {
	return len(m.Promotions) == 0 && len(m.Categories) == 0
}

// Build partitions the flat product list into the display structure.
// Unavailable products are always excluded; a non-empty search term applies
// a case-insensitive substring match against name and description.
func Build(products []entity.Product, search string) Menu {
	filtered := Filter(products, search)

	m := Menu{}
	byCategory := make(map[string][]entity.Product)

	for _, p := range filtered {
		if p.Promotional {
			m.Promotions = append(m.Promotions, p)
			continue
		}
		byCategory[p.Category] = append(byCategory[p.Category], p)
	}

	names := make([]string, 0, len(byCategory))
	for name := range byCategory {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		m.Categories = append(m.Categories, CategorySection{Name: name, Products: byCategory[name]})
	}

	return m
}

// Filter drops unavailable products and applies the search term. An empty
// search term keeps every available product.
func Filter(products []entity.Product, search string) []entity.Product {
	term := strings.ToLower(strings.TrimSpace(search))

	filtered := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if !p.Available {
			continue
		}
		if term != "" && !matches(p, term) {
			continue
		}
		filtered = append(filtered, p)
	}

	return filtered
}

func matches(p entity.Product, term string) bool {
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Description), term)
}
