package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"shawarma-storefront/internal/cart"
	"shawarma-storefront/internal/entity"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Validation failures are resolved locally; none of these ever reaches the
// network layer.
var (
	ErrEmptyAddress        = errors.New("delivery address is required")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrBelowMinimum        = errors.New("order total is below the minimum order amount")
	ErrDuplicateSubmission = errors.New("this order was already submitted")
)

// OrderAPI is the slice of the remote API checkout needs.
type OrderAPI interface {
	CreateOrder(ctx context.Context, order *entity.Order) (*entity.Order, error)
}

// ProductAPI is used to verify each cart product is still available before
// the order is placed.
type ProductAPI interface {
	GetProduct(ctx context.Context, id int) (*entity.Product, error)
}

// SubmissionGuard claims an idempotent key before an order is placed so a
// rapid double submission is rejected without contacting the order API.
// Release undoes a claim whose submission failed, keeping the order
// retryable.
type SubmissionGuard interface {
	Claim(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

// RedisSubmissionGuard claims keys with SetNX under a 24h TTL, long enough
// to outlive any client retry loop.
type RedisSubmissionGuard struct {
	rdb *redis.Client
}

// NewRedisSubmissionGuard creates a new instance of RedisSubmissionGuard.
func NewRedisSubmissionGuard(rdb *redis.Client) *RedisSubmissionGuard {
	return &RedisSubmissionGuard{rdb: rdb}
}

func guardKey(key string) string {
	return fmt.Sprintf("checkout-key:%s", key)
}

func (g *RedisSubmissionGuard) Claim(ctx context.Context, key string) (bool, error) {
	return g.rdb.SetNX(ctx, guardKey(key), "claimed", 24*time.Hour).Result()
}

func (g *RedisSubmissionGuard) Release(ctx context.Context, key string) error {
	return g.rdb.Del(ctx, guardKey(key)).Err()
}

// Service packages cart contents into an order-creation request. A failed
// submission leaves the cart exactly as it was so the user can retry; a
// successful one clears it.
type Service struct {
	store       *cart.Store
	orders      OrderAPI
	products    ProductAPI
	guard       SubmissionGuard
	kafkaWriter *kafka.Writer
}

// NewService creates a new instance of Service.
func NewService(store *cart.Store, orders OrderAPI, products ProductAPI, guard SubmissionGuard, kafkaWriter *kafka.Writer) *Service {
	return &Service{
		store:       store,
		orders:      orders,
		products:    products,
		guard:       guard,
		kafkaWriter: kafkaWriter,
	}
}

// Request is the customer-supplied half of an order.
type Request struct {
	CustomerName  string `json:"customerName"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	Notes         string `json:"notes"`
	IdempotentKey string `json:"-"`
}

// Submit validates locally, places the order, and clears the cart on
// success. An Idempotent-Key already claimed by an earlier submission is
// rejected before any network call; a key whose submission fails is released
// so the user's retry goes through.
func (s *Service) Submit(ctx context.Context, sessionID string, req Request) (*entity.Order, error) {
	if strings.TrimSpace(req.Address) == "" {
		return nil, ErrEmptyAddress
	}

	current, err := s.store.Cart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(current.Items) == 0 {
		return nil, ErrEmptyCart
	}
	if cart.CartTotal(current.Items)+cart.DeliveryFee < cart.MinimumOrder {
		return nil, ErrBelowMinimum
	}

	// An empty key means the caller opted out of double-submit protection.
	if req.IdempotentKey != "" {
		claimed, err := s.guard.Claim(ctx, req.IdempotentKey)
		if err != nil {
			return nil, err
		}
		if !claimed {
			return nil, ErrDuplicateSubmission
		}
	}

	if err := s.verifyAvailability(ctx, current.Items); err != nil {
		s.releaseClaim(ctx, req.IdempotentKey)
		return nil, err
	}

	order := &entity.Order{
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Address:      req.Address,
		Notes:        req.Notes,
		Items:        orderItems(current.Items),
	}

	created, err := s.orders.CreateOrder(ctx, order)
	if err != nil {
		logger.Error().Err(err).Msg("Error submitting order")
		s.releaseClaim(ctx, req.IdempotentKey)
		return nil, err
	}

	if err := s.store.Clear(ctx, sessionID); err != nil {
		logger.Error().Err(err).Msgf("Error clearing cart for session %s after order %d", sessionID, created.ID)
	}

	s.publishOrderEvent(ctx, created)

	return created, nil
}

// releaseClaim frees the idempotent key after a failed submission. The claim
// only guards replays of an order that was actually placed; a failure must
// leave the retry path open.
func (s *Service) releaseClaim(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.guard.Release(ctx, key); err != nil {
		logger.Error().Err(err).Msgf("Error releasing idempotent key %s", key)
	}
}

// verifyAvailability checks every cart product against the catalog
// concurrently and fails the submission on the first unavailable one.
func (s *Service) verifyAvailability(ctx context.Context, items []entity.LineItem) error {
	type result struct {
		ProductID int
		Available bool
		Error     error
	}

	resultCh := make(chan result, len(items))

	for _, item := range items {
		go func(item entity.LineItem) {
			product, err := s.products.GetProduct(ctx, item.Product.ID)
			if err != nil {
				resultCh <- result{ProductID: item.Product.ID, Error: err}
				return
			}
			resultCh <- result{ProductID: product.ID, Available: product.Available}
		}(item)
	}

	for range items {
		r := <-resultCh
		if r.Error != nil {
			logger.Error().Err(r.Error).Msgf("Error checking availability for product %d", r.ProductID)
			return r.Error
		}
		if !r.Available {
			logger.Warn().Msgf("Product %d is no longer available", r.ProductID)
			return fmt.Errorf("a product in your cart is no longer available")
		}
	}

	return nil
}

func (s *Service) publishOrderEvent(ctx context.Context, order *entity.Order) {
	if os.Getenv("ENV") == "test" || s.kafkaWriter == nil {
		return
	}

	orderJSON, err := json.Marshal(order)
	if err != nil {
		logger.Error().Err(err).Msgf("Error encoding event for order %d", order.ID)
		return
	}

	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("order-submitted-%d", order.ID)),
		Value: orderJSON,
	}

	// The order is already placed; a lost event must not fail the checkout.
	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Error().Err(err).Msgf("Error publishing event for order %d", order.ID)
	}
}

func orderItems(items []entity.LineItem) []entity.OrderItem {
	orderItems := make([]entity.OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, entity.OrderItem{
			ShawarmaID: item.Product.ID,
			Quantity:   item.Quantity,
		})
	}
	return orderItems
}
