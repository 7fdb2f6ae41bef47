package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/scanmatch/backend/internal/cache"
	"github.com/scanmatch/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrVotingClosed = errors.New("voting is not open")

// LikeService is the like ledger. Creation is gated by the voting-open
// flag; deletion is allowed at any time, so an attendee can always
// withdraw interest even after the window closes.
type LikeService struct {
	db       *gorm.DB
	settings *SettingsService
	cache    *cache.RedisCache
}

func NewLikeService(db *gorm.DB, settings *SettingsService, c *cache.RedisCache) *LikeService {
	return &LikeService{db: db, settings: settings, cache: c}
}

// Like inserts the directed (liker, liked) edge. Duplicates are a
// silent no-op: the uniqueness index keeps the row count at one and a
// losing concurrent call is indistinguishable from success.
func (s *LikeService) Like(likerID, likedID uuid.UUID) error {
	settings, err := s.settings.Get()
	if err != nil {
		return err
	}
	if !settings.IsVotingOpen {
		return ErrVotingClosed
	}

	like := models.Like{ID: uuid.New(), LikerID: likerID, LikedID: likedID}
	res := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&like)
	if res.Error != nil {
		return fmt.Errorf("failed to create like: %w", res.Error)
	}

	if res.RowsAffected > 0 {
		s.bumpLikeCount(likedID, 1)
	}
	return nil
}

// Unlike removes the edge; absent rows are a no-op.
func (s *LikeService) Unlike(likerID, likedID uuid.UUID) error {
	res := s.db.Where("liker_id = ? AND liked_id = ?", likerID, likedID).Delete(&models.Like{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete like: %w", res.Error)
	}
	if res.RowsAffected > 0 {
		s.bumpLikeCount(likedID, -1)
	}
	return nil
}

// IncomingCount returns how many attendees liked the given profile,
// serving from the cache when warm.
func (s *LikeService) IncomingCount(ctx context.Context, profileID uuid.UUID) (int64, error) {
	if s.cache != nil {
		if count, ok, err := s.cache.GetLikeCount(ctx, profileID); err == nil && ok {
			return count, nil
		}
	}

	var count int64
	if err := s.db.Model(&models.Like{}).Where("liked_id = ?", profileID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetLikeCount(ctx, profileID, count); err != nil {
			slog.Info("like count cache write failed", "error", err)
		}
	}
	return count, nil
}

func (s *LikeService) bumpLikeCount(profileID uuid.UUID, delta int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.IncrLikeCount(context.Background(), profileID, delta); err != nil {
		slog.Info("like count cache update failed", "error", err)
	}
}
