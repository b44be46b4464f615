package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"shawarma-storefront/internal/entity"
)

func TestItemTotal(t *testing.T) {
	// (250 + 30x2) x 3 = 930
	item := entity.LineItem{
		Product:  entity.Product{ID: 1, Price: 250},
		Quantity: 3,
		Addons:   []entity.SelectedAddon{{OptionID: 9, Price: 30, Quantity: 2}},
	}

	assert.Equal(t, 930, ItemTotal(item))
}

func TestCartTotals(t *testing.T) {
	items := []entity.LineItem{
		{
			Product:  entity.Product{ID: 1, Price: 250},
			Quantity: 3,
			Addons:   []entity.SelectedAddon{{OptionID: 9, Price: 30, Quantity: 2}},
		},
		{
			Product:  entity.Product{ID: 2, Price: 180},
			Quantity: 1,
		},
	}

	assert.Equal(t, 4, ItemCount(items))
	assert.Equal(t, 930+180, CartTotal(items))
}

func TestEmptyCartTotals(t *testing.T) {
	assert.Equal(t, 0, ItemCount(nil))
	assert.Equal(t, 0, CartTotal(nil))
}
