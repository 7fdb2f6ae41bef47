package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/scanmatch/backend/internal/config"
)

// RedisCache holds hot per-profile like counts so the admin stats view
// does not hammer the likes table. The DB is always the fallback; every
// method tolerates a cold or missing key.
type RedisCache struct {
	Client *redis.Client
}

// NewRedisCache initializes a Redis client from config. Only Addr is
// mandatory, Password/DB are optional.
func NewRedisCache(cfg *config.Config) *RedisCache {
	opts := &redis.Options{
		Addr: cfg.RedisAddr,
	}
	if cfg.RedisPassword != "" {
		opts.Password = cfg.RedisPassword
	}
	if cfg.RedisDB != 0 {
		opts.DB = cfg.RedisDB
	}
	return &RedisCache{Client: redis.NewClient(opts)}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

func likeCountKey(profileID uuid.UUID) string {
	return fmt.Sprintf("likes:count:%s", profileID)
}

// SetLikeCount stores the incoming-like count for a profile, refreshing
// the TTL.
func (c *RedisCache) SetLikeCount(ctx context.Context, profileID uuid.UUID, count int64) error {
	return c.Client.Set(ctx, likeCountKey(profileID), count, time.Hour).Err()
}

// GetLikeCount returns the cached count and whether the key was present.
func (c *RedisCache) GetLikeCount(ctx context.Context, profileID uuid.UUID) (int64, bool, error) {
	val, err := c.Client.Get(ctx, likeCountKey(profileID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	} else if err != nil {
		return 0, false, err
	}
	_ = c.Client.Expire(ctx, likeCountKey(profileID), time.Hour).Err()
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, err
	}
	return n, true, nil
}

// IncrLikeCount adjusts a warm counter in place. A cold key is left
// cold; the next read repopulates it from the DB.
func (c *RedisCache) IncrLikeCount(ctx context.Context, profileID uuid.UUID, delta int64) error {
	key := likeCountKey(profileID)
	exists, err := c.Client.Exists(ctx, key).Result()
	if err != nil || exists == 0 {
		return err
	}
	return c.Client.IncrBy(ctx, key, delta).Err()
}
