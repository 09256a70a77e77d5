package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrMiss is returned when the key is absent.
var ErrMiss = errors.New("cache miss")

// Cache stores JSON-encoded values under string keys.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) error
	SetJSON(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, keys ...string) error
}

// ListKey is the key under which a tenant's collection listing is cached.
func ListKey(collection, tenantID string) string {
	return fmt.Sprintf("list:%s:%s", collection, tenantID)
}

type redisCache struct {
	c      *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedis returns a Cache backed by c. Keys are namespaced by prefix.
func NewRedis(c *redis.Client, prefix string, ttl time.Duration) Cache {
	return &redisCache{c: c, prefix: prefix, ttl: ttl}
}

func (r *redisCache) key(k string) string {
	if r.prefix == "" {
		return k
	}
	return r.prefix + ":" + k
}

func (r *redisCache) GetJSON(ctx context.Context, key string, dst any) error {
	raw, err := r.c.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrMiss
		}
		return err
	}
	return json.Unmarshal(raw, dst)
}

func (r *redisCache) SetJSON(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.c.Set(ctx, r.key(key), raw, r.ttl).Err()
}

func (r *redisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = r.key(k)
	}
	return r.c.Del(ctx, full...).Err()
}

type nopCache struct{}

// NewNop returns a Cache that never stores anything.
func NewNop() Cache { return nopCache{} }

func (nopCache) GetJSON(context.Context, string, any) error { return ErrMiss }
func (nopCache) SetJSON(context.Context, string, any) error { return nil }
func (nopCache) Delete(context.Context, ...string) error    { return nil }
