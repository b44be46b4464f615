package cart

import (
	"fmt"
	"sort"
	"strings"

	"shawarma-storefront/internal/entity"
)

// noAddonsToken keeps a plain product distinguishable from one whose add-on
// list happens to serialize to an empty string.
const noAddonsToken = "plain"

// LineItemKey derives the identity key used to decide whether an addition
// merges into an existing line item. The key depends only on the product id
// and the multiset of (option id, quantity) pairs: selections that differ
// only in order produce the same key. Add-on option ids are globally unique
// across categories, which is what lets the token omit the category id.
func LineItemKey(productID int, addons []entity.SelectedAddon) string {
	if len(addons) == 0 {
		return fmt.Sprintf("%d|%s", productID, noAddonsToken)
	}

	tokens := make([]string, 0, len(addons))
	for _, addon := range addons {
		tokens = append(tokens, fmt.Sprintf("%d:%d", addon.OptionID, addon.Quantity))
	}
	sort.Strings(tokens)

	return fmt.Sprintf("%d|%s", productID, strings.Join(tokens, ","))
}
