package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oggyb/waveos/internal/config"
)

type RedisCache struct {
	Client *redis.Client
}

// NewRedisCache initializes Redis client from config.
// Only Addr is mandatory, Password/DB are optional.
func NewRedisCache(cfg *config.Config) *RedisCache {
	opts := &redis.Options{
		Addr: cfg.Redis.Addr,
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}
	return &RedisCache{Client: redis.NewClient(opts)}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.Client.Close()
}

// KeyForResolve generates the rate-limit key for a caller's beacon resolutions.
func (c *RedisCache) KeyForResolve(userID string) string {
	return fmt.Sprintf("ratelimit:resolve:%s", userID)
}

// KeyForRotate generates the rate-limit key for a caller's beacon rotations.
func (c *RedisCache) KeyForRotate(userID string) string {
	return fmt.Sprintf("ratelimit:rotate:%s", userID)
}

// Allow implements a fixed-window counter: INCR and EXPIRE NX go out in one
// MULTI, so a counter never lives without a TTL even if an earlier window
// lost its expiry. The call is allowed while the counter stays within limit.
// limit <= 0 disables the check.
func (c *RedisCache) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	if limit <= 0 {
		return true, nil
	}
	var hits *redis.IntCmd
	_, err := c.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		hits = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, window)
		return nil
	})
	if err != nil {
		return false, err
	}
	return hits.Val() <= int64(limit), nil
}
