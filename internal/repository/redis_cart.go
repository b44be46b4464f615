package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"shawarma-storefront/internal/entity"
)

// RedisCartRepository stores each cart as one JSON document under
// cart:<session>. The whole list is rewritten on every mutation; carts are
// small enough that partial updates are not worth the complexity.
type RedisCartRepository struct {
	rdb *redis.Client
}

func NewRedisCartRepository(rdb *redis.Client) *RedisCartRepository {
	return &RedisCartRepository{rdb: rdb}
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:%s", sessionID)
}

func (r *RedisCartRepository) GetCart(ctx context.Context, sessionID string) ([]entity.LineItem, error) {
	raw, err := r.rdb.Get(ctx, cartKey(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var items []entity.LineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *RedisCartRepository) SaveCart(ctx context.Context, sessionID string, items []entity.LineItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}

	return r.rdb.Set(ctx, cartKey(sessionID), raw, 0).Err()
}

func (r *RedisCartRepository) DeleteCart(ctx context.Context, sessionID string) error {
	return r.rdb.Del(ctx, cartKey(sessionID)).Err()
}
