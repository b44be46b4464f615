package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shawarma-storefront/internal/entity"
)

func catalogFixture() []entity.Product {
	return []entity.Product{
		{ID: 1, Name: "Classic", Available: true, SortOrder: 0},
		{ID: 2, Name: "Chicken", Available: true, SortOrder: 1},
		{ID: 3, Name: "Falafel", Available: false, SortOrder: 2},
		{ID: 4, Name: "Mega", Available: true, SortOrder: 3},
		{ID: 5, Name: "Cola", Available: true, SortOrder: 4},
	}
}

func assertContiguous(t *testing.T, ordered []entity.Product) {
	t.Helper()
	for i, p := range ordered {
		assert.Equalf(t, i, p.SortOrder, "position %d holds product %d with sort order %d", i, p.ID, p.SortOrder)
		assert.True(t, p.Available, "only available products belong to the ordering space")
	}
}

func TestReorderAvailableMovesAndRepacks(t *testing.T) {
	ordered := ReorderAvailable(catalogFixture(), 5, 0)

	require.Len(t, ordered, 4)
	assert.Equal(t, []int{5, 1, 2, 4}, ids(ordered))
	assertContiguous(t, ordered)
}

func TestReorderAvailableClampsPosition(t *testing.T) {
	ordered := ReorderAvailable(catalogFixture(), 1, 99)
	assert.Equal(t, []int{2, 4, 5, 1}, ids(ordered))
	assertContiguous(t, ordered)

	ordered = ReorderAvailable(catalogFixture(), 4, -5)
	assert.Equal(t, []int{4, 1, 2, 5}, ids(ordered))
	assertContiguous(t, ordered)
}

func TestReorderAvailableRepacksGappyInput(t *testing.T) {
	// Sort orders left with gaps and duplicates by earlier availability
	// flips still come out contiguous and zero-based.
	gappy := []entity.Product{
		{ID: 1, Available: true, SortOrder: 7},
		{ID: 2, Available: true, SortOrder: 7},
		{ID: 3, Available: true, SortOrder: 42},
	}

	ordered := ReorderAvailable(gappy, 3, 1)

	require.Len(t, ordered, 3)
	assertContiguous(t, ordered)
}

func TestReorderAvailableUnknownIDJustRepacks(t *testing.T) {
	ordered := ReorderAvailable(catalogFixture(), 999, 0)

	assert.Equal(t, []int{1, 2, 4, 5}, ids(ordered))
	assertContiguous(t, ordered)
}

func TestPackSortOrderExcludesUnavailable(t *testing.T) {
	ordered := PackSortOrder(catalogFixture())

	assert.Equal(t, []int{1, 2, 4, 5}, ids(ordered))
	assertContiguous(t, ordered)
}

func ids(products []entity.Product) []int {
	out := make([]int, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}
