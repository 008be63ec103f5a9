package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache guarda snapshots JSON (métricas do dashboard) com TTL curto.
// Sem REDIS_ADDR configurado, todas as operações viram no-op e o
// chamador recalcula: nunca quebrar a API por causa de cache.
type Cache struct {
	rdb *redis.Client
}

func New(addr, password string) *Cache {
	if addr == "" {
		return &Cache{}
	}

	return &Cache{
		rdb: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
	}
}

func (c *Cache) Enabled() bool {
	return c != nil && c.rdb != nil
}

func (c *Cache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if !c.Enabled() {
		return false, nil
	}

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Cache) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	if !c.Enabled() {
		return nil
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return c.rdb.Set(ctx, key, raw, ttl).Err()
}

func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if !c.Enabled() || len(keys) == 0 {
		return
	}
	c.rdb.Del(ctx, keys...)
}
