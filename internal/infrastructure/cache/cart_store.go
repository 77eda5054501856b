package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/storefront/backend/internal/domain/trade"
)

const cartKeyPrefix = "cart:"

// RedisCartStore implements trade.CartStore backed by Redis so carts
// survive restarts and are shared across server instances.
type RedisCartStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ trade.CartStore = (*RedisCartStore)(nil)

// NewRedisCartStore creates a Redis-backed cart store. The TTL is
// refreshed on every save, so only abandoned carts expire.
func NewRedisCartStore(client *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{client: client, ttl: ttl}
}

// Get returns the user's cart, or an empty cart if none is stored
func (s *RedisCartStore) Get(ctx context.Context, userID uuid.UUID) (*trade.Cart, error) {
	data, err := s.client.Get(ctx, cartKeyPrefix+userID.String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return trade.NewCart(), nil
		}
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var cart trade.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	return &cart, nil
}

// Save persists the user's cart
func (s *RedisCartStore) Save(ctx context.Context, userID uuid.UUID, cart *trade.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := s.client.Set(ctx, cartKeyPrefix+userID.String(), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

// Delete removes the user's cart
func (s *RedisCartStore) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := s.client.Del(ctx, cartKeyPrefix+userID.String()).Err(); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}

// MemoryCartStore is an in-process trade.CartStore for tests and
// single-node development without Redis.
type MemoryCartStore struct {
	mu    sync.RWMutex
	carts map[uuid.UUID][]byte
}

var _ trade.CartStore = (*MemoryCartStore)(nil)

// NewMemoryCartStore creates an in-memory cart store
func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{carts: make(map[uuid.UUID][]byte)}
}

// Get returns the user's cart, or an empty cart if none is stored
func (s *MemoryCartStore) Get(_ context.Context, userID uuid.UUID) (*trade.Cart, error) {
	s.mu.RLock()
	data, ok := s.carts[userID]
	s.mu.RUnlock()
	if !ok {
		return trade.NewCart(), nil
	}

	var cart trade.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// Save persists the user's cart
func (s *MemoryCartStore) Save(_ context.Context, userID uuid.UUID, cart *trade.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.carts[userID] = data
	s.mu.Unlock()
	return nil
}

// Delete removes the user's cart
func (s *MemoryCartStore) Delete(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	delete(s.carts, userID)
	s.mu.Unlock()
	return nil
}
