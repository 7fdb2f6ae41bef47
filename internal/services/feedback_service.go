package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/scanmatch/backend/internal/dto"
	"github.com/scanmatch/backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrFeedbackExists = errors.New("feedback already submitted")
)

type FeedbackService struct {
	db *gorm.DB
}

func NewFeedbackService(db *gorm.DB) *FeedbackService {
	return &FeedbackService{db: db}
}

// Submit stores the post-event survey, at most once per profile. The
// unique index on profile_id backs up the existence check under
// concurrent submissions.
func (s *FeedbackService) Submit(userID, profileID uuid.UUID, req *dto.FeedbackRequest) error {
	if req.Rating < 1 || req.Rating > 5 {
		return ErrInvalidRating
	}

	exists, err := s.Exists(profileID)
	if err != nil {
		return err
	}
	if exists {
		return ErrFeedbackExists
	}

	feedback := models.Feedback{
		ID:         uuid.New(),
		UserID:     userID,
		ProfileID:  profileID,
		Rating:     req.Rating,
		LikedEvent: req.LikedEvent,
		WantMore:   req.WantMore,
		Comments:   req.Comments,
	}
	if err := s.db.Create(&feedback).Error; err != nil {
		return fmt.Errorf("failed to save feedback: %w", err)
	}
	return nil
}

func (s *FeedbackService) Exists(profileID uuid.UUID) (bool, error) {
	var count int64
	if err := s.db.Model(&models.Feedback{}).Where("profile_id = ?", profileID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check feedback: %w", err)
	}
	return count > 0, nil
}
