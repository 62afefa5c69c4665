package redisad

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"luxe_haven/internal/adapters/observability"
)

// KV stores JSON values under plain keys, optionally namespaced by a prefix.
type KV struct {
	c      *redis.Client
	prefix string
}

func New(addr, pass string, db int) *KV {
	return NewWithClient(redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}), "luxehaven:")
}

func NewWithClient(c *redis.Client, prefix string) *KV { return &KV{c: c, prefix: prefix} }

func (r *KV) Ping(ctx context.Context) error { return r.c.Ping(ctx).Err() }

func (r *KV) Close() error { return r.c.Close() }

func (r *KV) Get(ctx context.Context, key string, dst any) (bool, error) {
	v, err := r.c.Get(ctx, r.prefix+key).Bytes()
	if err == redis.Nil {
		observability.ObserveStore("redis", "miss")
		return false, nil
	}
	if err != nil {
		return false, err
	}
	observability.ObserveStore("redis", "hit")
	if err := json.Unmarshal(v, dst); err != nil {
		return true, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (r *KV) Set(ctx context.Context, key string, v any, ttl time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	observability.ObserveStore("redis", "set")
	return r.c.Set(ctx, r.prefix+key, b, ttl).Err()
}

func (r *KV) Del(ctx context.Context, key string) error {
	observability.ObserveStore("redis", "del")
	return r.c.Del(ctx, r.prefix+key).Err()
}
