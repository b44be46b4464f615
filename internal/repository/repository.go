package repository

import (
	"context"

	"shawarma-storefront/internal/entity"
)

// CartRepository persists one session's cart as the full serialized
// line-item list under a single key, mirroring how the web client kept the
// cart in local storage. Consumers define the seam; implementations live
// alongside it.
type CartRepository interface {
	GetCart(ctx context.Context, sessionID string) ([]entity.LineItem, error)
	SaveCart(ctx context.Context, sessionID string, items []entity.LineItem) error
	DeleteCart(ctx context.Context, sessionID string) error
}
