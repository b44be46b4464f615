package admin

import (
	"context"
	"errors"
	"os"
	"sort"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"shawarma-storefront/internal/entity"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

var ErrBadCredentials = errors.New("invalid username or password")

// CatalogAPI is the slice of the remote API the admin console writes
// through.
type CatalogAPI interface {
	ListProducts(ctx context.Context) ([]entity.Product, error)
	CreateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error)
	UpdateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id int) error
	SetAvailability(ctx context.Context, id int, available bool) error
	SetSortOrder(ctx context.Context, id, sortOrder int) error
}

// Service backs the admin console: product CRUD, availability toggling, and
// explicit display-order management against the catalog API.
type Service struct {
	catalog   CatalogAPI
	jwtSecret []byte
	adminUser string
	adminPass string
}

// NewService creates a new instance of Service.
func NewService(catalog CatalogAPI, jwtSecret []byte, adminUser, adminPass string) *Service {
	return &Service{
		catalog:   catalog,
		jwtSecret: jwtSecret,
		adminUser: adminUser,
		adminPass: adminPass,
	}
}

type JwtCustomClaims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// Login checks the configured admin credentials and issues a 24h token.
func (s *Service) Login(username, password string) (string, error) {
	if s.adminPass == "" || username != s.adminUser || password != s.adminPass {
		return "", ErrBadCredentials
	}

	claims := &JwtCustomClaims{
		Name: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 24)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		logger.Error().Err(err).Msg("Error signing admin token")
		return "", err
	}

	return signed, nil
}

// ListProducts returns the admin view of the catalog: available products in
// display order first, then unavailable ones alphabetically below them.
func (s *Service) ListProducts(ctx context.Context) ([]entity.Product, error) {
	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(products, func(i, j int) bool {
		a, b := products[i], products[j]
		if a.Available != b.Available {
			return a.Available
		}
		if a.Available {
			return a.SortOrder < b.SortOrder
		}
		return a.Name < b.Name
	})

	return products, nil
}

// CreateProduct creates a new product in the catalog.
func (s *Service) CreateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	return s.catalog.CreateProduct(ctx, product)
}

// UpdateProduct replaces an existing product.
func (s *Service) UpdateProduct(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	return s.catalog.UpdateProduct(ctx, product)
}

// DeleteProduct removes a product from the catalog.
func (s *Service) DeleteProduct(ctx context.Context, id int) error {
	return s.catalog.DeleteProduct(ctx, id)
}

// ToggleAvailability flips whether a product is orderable. A product taken
// off the menu leaves the numeric ordering space; the remaining available
// products are re-packed so their sort order stays contiguous.
func (s *Service) ToggleAvailability(ctx context.Context, id int, available bool) error {
	if err := s.catalog.SetAvailability(ctx, id, available); err != nil {
		return err
	}

	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		return err
	}

	for i := range products {
		if products[i].ID == id {
			products[i].Available = available
		}
	}

	return s.applySortOrder(ctx, products, PackSortOrder(products))
}

// MoveProduct places one available product at the given position and
// rewrites the sort order of every available product so the sequence stays
// contiguous and zero-based.
func (s *Service) MoveProduct(ctx context.Context, id, position int) error {
	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error fetching products for reorder")
		return err
	}

	return s.applySortOrder(ctx, products, ReorderAvailable(products, id, position))
}

// applySortOrder pushes only the assignments that actually changed.
func (s *Service) applySortOrder(ctx context.Context, before, after []entity.Product) error {
	previous := make(map[int]int, len(before))
	for _, p := range before {
		previous[p.ID] = p.SortOrder
	}

	for _, p := range after {
		if previous[p.ID] == p.SortOrder {
			continue
		}
		if err := s.catalog.SetSortOrder(ctx, p.ID, p.SortOrder); err != nil {
			logger.Error().Err(err).Msgf("Error writing sort order for product %d", p.ID)
			return err
		}
	}

	return nil
}
