package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisList implements ListCache on top of Redis lists (LPUSH / LRANGE /
// LTRIM / EXPIRE).
type RedisList struct {
	rdb *redis.Client
}

// NewRedisList wraps an existing client. The client must be non-nil; use
// Noop when Redis is unavailable.
func NewRedisList(rdb *redis.Client) *RedisList {
	if rdb == nil {
		panic("nil redis client passed to NewRedisList")
	}
	return &RedisList{rdb: rdb}
}

func (r *RedisList) PushFront(ctx context.Context, key, val string) error {
	return r.rdb.LPush(ctx, key, val).Err()
}

func (r *RedisList) Range(ctx context.Context, key string, start, stop int64) ([]string, error) {
	return r.rdb.LRange(ctx, key, start, stop).Result()
}

// Replace atomically swaps the list contents. Values are RPUSHed in slice
// order so vals[0] ends up at the head, preserving newest-first ordering.
func (r *RedisList) Replace(ctx context.Context, key string, vals []string) error {
	pipe := r.rdb.TxPipeline()
	pipe.Del(ctx, key)
	if len(vals) > 0 {
		args := make([]interface{}, len(vals))
		for i, v := range vals {
			args[i] = v
		}
		pipe.RPush(ctx, key, args...)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (r *RedisList) Trim(ctx context.Context, key string, n int64) error {
	return r.rdb.LTrim(ctx, key, 0, n-1).Err()
}

func (r *RedisList) Expire(ctx context.Context, key string, ttl time.Duration) error {
	return r.rdb.Expire(ctx, key, ttl).Err()
}
