package services_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/scanmatch/backend/internal/cache"
	"github.com/scanmatch/backend/internal/models"
	"github.com/scanmatch/backend/internal/realtime"
	"github.com/scanmatch/backend/internal/services"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newLikeService(t *testing.T, db *gorm.DB) *services.LikeService {
	t.Helper()
	settings := services.NewSettingsService(db, realtime.NewHub())
	return services.NewLikeService(db, settings, nil)
}

func likeCount(db *gorm.DB, liker, liked *models.Profile) int64 {
	var count int64
	db.Model(&models.Like{}).Where("liker_id = ? AND liked_id = ?", liker.ID, liked.ID).Count(&count)
	return count
}

func TestLikeRequiresVotingOpen(t *testing.T) {
	db := setupTestDB(t)
	svc := newLikeService(t, db)

	a := createProfile(t, db, "alice")
	b := createProfile(t, db, "bob")

	err := svc.Like(a.ID, b.ID)
	assert.ErrorIs(t, err, services.ErrVotingClosed)
	assert.Equal(t, int64(0), likeCount(db, a, b))

	setVotingOpen(t, db, true)
	assert.NoError(t, svc.Like(a.ID, b.ID))
	assert.Equal(t, int64(1), likeCount(db, a, b))
}

func TestDuplicateLikeIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	svc := newLikeService(t, db)
	setVotingOpen(t, db, true)

	a := createProfile(t, db, "alice")
	b := createProfile(t, db, "bob")

	assert.NoError(t, svc.Like(a.ID, b.ID))
	assert.NoError(t, svc.Like(a.ID, b.ID))
	assert.Equal(t, int64(1), likeCount(db, a, b))
}

func TestLikeIsNotSymmetric(t *testing.T) {
	db := setupTestDB(t)
	svc := newLikeService(t, db)
	setVotingOpen(t, db, true)

	a := createProfile(t, db, "alice")
	b := createProfile(t, db, "bob")

	assert.NoError(t, svc.Like(a.ID, b.ID))
	assert.Equal(t, int64(1), likeCount(db, a, b))
	assert.Equal(t, int64(0), likeCount(db, b, a))
}

func TestUnlikeRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	svc := newLikeService(t, db)
	setVotingOpen(t, db, true)

	a := createProfile(t, db, "alice")
	b := createProfile(t, db, "bob")

	assert.NoError(t, svc.Like(a.ID, b.ID))
	assert.NoError(t, svc.Unlike(a.ID, b.ID))
	assert.Equal(t, int64(0), likeCount(db, a, b))

	// repeated unlike is a no-op
	assert.NoError(t, svc.Unlike(a.ID, b.ID))
	assert.Equal(t, int64(0), likeCount(db, a, b))
}

func TestUnlikeAllowedAfterVotingCloses(t *testing.T) {
	db := setupTestDB(t)
	svc := newLikeService(t, db)
	setVotingOpen(t, db, true)

	a := createProfile(t, db, "alice")
	b := createProfile(t, db, "bob")

	assert.NoError(t, svc.Like(a.ID, b.ID))
	setVotingOpen(t, db, false)

	assert.NoError(t, svc.Unlike(a.ID, b.ID))
	assert.Equal(t, int64(0), likeCount(db, a, b))
}

func TestIncomingCountUsesCache(t *testing.T) {
	db := setupTestDB(t)
	setVotingOpen(t, db, true)

	mr := miniredis.RunT(t)
	likeCache := &cache.RedisCache{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}

	settings := services.NewSettingsService(db, realtime.NewHub())
	svc := services.NewLikeService(db, settings, likeCache)

	a := createProfile(t, db, "alice")
	b := createProfile(t, db, "bob")
	c := createProfile(t, db, "carol")

	assert.NoError(t, svc.Like(a.ID, c.ID))
	assert.NoError(t, svc.Like(b.ID, c.ID))

	ctx := context.Background()
	count, err := svc.IncomingCount(ctx, c.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// warm key is adjusted in place by like/unlike
	assert.NoError(t, svc.Unlike(a.ID, c.ID))
	count, err = svc.IncomingCount(ctx, c.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
