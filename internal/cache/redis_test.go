package cache_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/scanmatch/backend/internal/cache"
	"github.com/stretchr/testify/assert"
)

func newTestCache(t *testing.T) *cache.RedisCache {
	t.Helper()
	mr := miniredis.RunT(t)
	return &cache.RedisCache{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
}

func TestLikeCountRoundTrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()
	profileID := uuid.New()

	_, ok, err := c.GetLikeCount(ctx, profileID)
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, c.SetLikeCount(ctx, profileID, 7))

	count, ok, err := c.GetLikeCount(ctx, profileID)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(7), count)
}

func TestIncrLikeCountSkipsColdKey(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()
	profileID := uuid.New()

	// cold key stays cold so the next read falls back to the DB
	assert.NoError(t, c.IncrLikeCount(ctx, profileID, 1))
	_, ok, err := c.GetLikeCount(ctx, profileID)
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, c.SetLikeCount(ctx, profileID, 3))
	assert.NoError(t, c.IncrLikeCount(ctx, profileID, -1))

	count, ok, err := c.GetLikeCount(ctx, profileID)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(2), count)
}
