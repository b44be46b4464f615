package admin

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shawarma-storefront/internal/entity"
)

type fakeCatalog struct {
	products   []entity.Product
	sortWrites map[int]int
}

func newFakeCatalog(products []entity.Product) *fakeCatalog {
	return &fakeCatalog{products: products, sortWrites: map[int]int{}}
}

func (f *fakeCatalog) ListProducts(context.Context) ([]entity.Product, error) {
	out := make([]entity.Product, len(f.products))
	copy(out, f.products)
	return out, nil
}

func (f *fakeCatalog) CreateProduct(_ context.Context, p *entity.Product) (*entity.Product, error) {
	return p, nil
}

func (f *fakeCatalog) UpdateProduct(_ context.Context, p *entity.Product) (*entity.Product, error) {
	return p, nil
}

func (f *fakeCatalog) DeleteProduct(context.Context, int) error { return nil }

func (f *fakeCatalog) SetAvailability(_ context.Context, id int, available bool) error {
	for i := range f.products {
		if f.products[i].ID == id {
			f.products[i].Available = available
		}
	}
	return nil
}

func (f *fakeCatalog) SetSortOrder(_ context.Context, id, sortOrder int) error {
	f.sortWrites[id] = sortOrder
	for i := range f.products {
		if f.products[i].ID == id {
			f.products[i].SortOrder = sortOrder
		}
	}
	return nil
}

func newTestService(catalog CatalogAPI) *Service {
	return NewService(catalog, []byte("test-secret"), "admin", "s3cret")
}

func TestListProductsOrdersAvailableThenUnavailableAlphabetically(t *testing.T) {
	catalog := newFakeCatalog([]entity.Product{
		{ID: 1, Name: "Zaatar Wrap", Available: false},
		{ID: 2, Name: "Classic", Available: true, SortOrder: 1},
		{ID: 3, Name: "Falafel", Available: false},
		{ID: 4, Name: "Mega", Available: true, SortOrder: 0},
	})

	products, err := newTestService(catalog).ListProducts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []int{4, 2, 3, 1}, ids(products))
}

func TestMoveProductWritesOnlyChangedAssignments(t *testing.T) {
	catalog := newFakeCatalog([]entity.Product{
		{ID: 1, Available: true, SortOrder: 0},
		{ID: 2, Available: true, SortOrder: 1},
		{ID: 3, Available: true, SortOrder: 2},
	})

	err := newTestService(catalog).MoveProduct(context.Background(), 3, 0)
	require.NoError(t, err)

	// Every product shifted, so every product got a write.
	assert.Equal(t, map[int]int{3: 0, 1: 1, 2: 2}, catalog.sortWrites)
}

func TestMoveProductNoOpWritesNothing(t *testing.T) {
	catalog := newFakeCatalog([]entity.Product{
		{ID: 1, Available: true, SortOrder: 0},
		{ID: 2, Available: true, SortOrder: 1},
	})

	err := newTestService(catalog).MoveProduct(context.Background(), 2, 1)
	require.NoError(t, err)

	assert.Empty(t, catalog.sortWrites)
}

func TestToggleAvailabilityRepacksRemainingProducts(t *testing.T) {
	catalog := newFakeCatalog([]entity.Product{
		{ID: 1, Available: true, SortOrder: 0},
		{ID: 2, Available: true, SortOrder: 1},
		{ID: 3, Available: true, SortOrder: 2},
	})

	err := newTestService(catalog).ToggleAvailability(context.Background(), 2, false)
	require.NoError(t, err)

	// Product 3 falls into the hole product 2 left behind.
	assert.Equal(t, map[int]int{3: 1}, catalog.sortWrites)
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	service := newTestService(newFakeCatalog(nil))

	token, err := service.Login("admin", "s3cret")
	require.NoError(t, err)

	parsed, err := jwt.ParseWithClaims(token, &JwtCustomClaims{}, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	assert.Equal(t, "admin", parsed.Claims.(*JwtCustomClaims).Name)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	service := newTestService(newFakeCatalog(nil))

	_, err := service.Login("admin", "wrong")
	assert.ErrorIs(t, err, ErrBadCredentials)

	// An unset admin password disables login outright.
	unset := NewService(newFakeCatalog(nil), []byte("test-secret"), "admin", "")
	_, err = unset.Login("admin", "")
	assert.ErrorIs(t, err, ErrBadCredentials)
}
