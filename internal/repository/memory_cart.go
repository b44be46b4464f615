package repository

import (
	"context"
	"sync"

	"shawarma-storefront/internal/entity"
)

// MemoryCartRepository keeps carts in process memory. Used in tests and when
// no redis address is configured.
type MemoryCartRepository struct {
	mu    sync.RWMutex
	carts map[string][]entity.LineItem
}

func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{carts: make(map[string][]entity.LineItem)}
}

func (r *MemoryCartRepository) GetCart(_ context.Context, sessionID string) ([]entity.LineItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.carts[sessionID]
	items := make([]entity.LineItem, len(stored))
	copy(items, stored)
	return items, nil
}

func (r *MemoryCartRepository) SaveCart(_ context.Context, sessionID string, items []entity.LineItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make([]entity.LineItem, len(items))
	copy(stored, items)
	r.carts[sessionID] = stored
	return nil
}

func (r *MemoryCartRepository) DeleteCart(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, sessionID)
	return nil
}
