package cart

import (
	"context"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"shawarma-storefront/internal/entity"
	"shawarma-storefront/internal/repository"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Store owns all cart mutations. A single mutex serializes them so that
// operations land in dispatch order, the same guarantee the single-threaded
// web client had; readers get copies, never live slices. Every mutation
// writes the full line-item list back through the repository.
type Store struct {
	mu   sync.Mutex
	repo repository.CartRepository
}

// NewStore creates a new instance of Store.
func NewStore(repo repository.CartRepository) *Store {
	return &Store{repo: repo}
}

// Cart returns a snapshot of the session's cart.
func (s *Store) Cart(ctx context.Context, sessionID string) (entity.Cart, error) {
	items, err := s.repo.GetCart(ctx, sessionID)
	if err != nil {
		logger.Error().Err(err).Msgf("Error loading cart for session %s", sessionID)
		return entity.Cart{}, err
	}
	return entity.Cart{Items: items}, nil
}

// AddItem merges the configured product into the cart. If a line item with
// the same reconciliation key exists its quantity grows by the given amount
// and its instructions are replaced only when new non-empty instructions are
// supplied; otherwise a new line item is appended. Quantity bounds are a
// presentation concern, not enforced here.
func (s *Store) AddItem(ctx context.Context, sessionID string, product entity.Product, quantity int, addons []entity.SelectedAddon, instructions string) (entity.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.repo.GetCart(ctx, sessionID)
	if err != nil {
		return entity.Cart{}, err
	}

	key := LineItemKey(product.ID, addons)

	merged := false
	for i := range items {
		if items[i].Key == key {
			items[i].Quantity += quantity
			if strings.TrimSpace(instructions) != "" {
				items[i].Instructions = instructions
			}
			merged = true
			break
		}
	}

	if !merged {
		items = append(items, entity.LineItem{
			Key:          key,
			Product:      product,
			Quantity:     quantity,
			Addons:       addons,
			Instructions: instructions,
		})
	}

	return s.persist(ctx, sessionID, items)
}

// RemoveItem deletes the line item with the matching key; no-op if absent.
func (s *Store) RemoveItem(ctx context.Context, sessionID, key string) (entity.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.repo.GetCart(ctx, sessionID)
	if err != nil {
		return entity.Cart{}, err
	}

	return s.persist(ctx, sessionID, removeByKey(items, key))
}

// UpdateQuantity sets the line item's quantity verbatim; anything below one
// removes the line item instead.
func (s *Store) UpdateQuantity(ctx context.Context, sessionID, key string, quantity int) (entity.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.repo.GetCart(ctx, sessionID)
	if err != nil {
		return entity.Cart{}, err
	}

	if quantity < 1 {
		return s.persist(ctx, sessionID, removeByKey(items, key))
	}

	for i := range items {
		if items[i].Key == key {
			items[i].Quantity = quantity
			break
		}
	}

	return s.persist(ctx, sessionID, items)
}

// UpdateInstructions overwrites the special-instructions text of the
// matching line item.
func (s *Store) UpdateInstructions(ctx context.Context, sessionID, key, instructions string) (entity.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.repo.GetCart(ctx, sessionID)
	if err != nil {
		return entity.Cart{}, err
	}

	for i := range items {
		if items[i].Key == key {
			items[i].Instructions = instructions
			break
		}
	}

	return s.persist(ctx, sessionID, items)
}

// Clear empties the session's cart.
func (s *Store) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.repo.DeleteCart(ctx, sessionID)
	if err != nil {
		logger.Error().Err(err).Msgf("Error clearing cart for session %s", sessionID)
		return err
	}

	return nil
}

func (s *Store) persist(ctx context.Context, sessionID string, items []entity.LineItem) (entity.Cart, error) {
	if err := s.repo.SaveCart(ctx, sessionID, items); err != nil {
		logger.Error().Err(err).Msgf("Error saving cart for session %s", sessionID)
		return entity.Cart{}, err
	}
	return entity.Cart{Items: items}, nil
}

func removeByKey(items []entity.LineItem, key string) []entity.LineItem {
	kept := items[:0]
	for _, item := range items {
		if item.Key != key {
			kept = append(kept, item)
		}
	}
	return kept
}
