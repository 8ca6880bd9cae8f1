package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	pkgredis "github.com/streetcart/cart-engine/pkg/redis"
)

type kvStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// RedisStorage keeps the snapshot under a single namespaced key. A single SET
// per mutation gives the atomic overwrite the persistence contract needs.
type RedisStorage struct {
	kv  kvStore
	key string
}

// NewRedisStorage builds a redis-backed snapshot store for the owner's key.
func NewRedisStorage(kv kvStore, key string) (*RedisStorage, error) {
	if kv == nil {
		return nil, fmt.Errorf("redis client required")
	}
	if key == "" {
		return nil, fmt.Errorf("snapshot key required")
	}
	return &RedisStorage{kv: kv, key: key}, nil
}

func (r *RedisStorage) Load(ctx context.Context) ([]byte, error) {
	raw, err := r.kv.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, pkgredis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read snapshot key: %w", err)
	}
	return []byte(raw), nil
}

func (r *RedisStorage) Save(ctx context.Context, raw []byte) error {
	if err := r.kv.Set(ctx, r.key, string(raw), 0); err != nil {
		return fmt.Errorf("write snapshot key: %w", err)
	}
	return nil
}

func (r *RedisStorage) Clear(ctx context.Context) error {
	if err := r.kv.Del(ctx, r.key); err != nil {
		return fmt.Errorf("delete snapshot key: %w", err)
	}
	return nil
}
