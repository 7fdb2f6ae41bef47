package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Feedback is the post-event survey, at most one per profile.
type Feedback struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	ProfileID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"profile_id"`
	Rating     int       `gorm:"not null" json:"rating"`
	LikedEvent bool      `gorm:"not null" json:"liked_event"`
	WantMore   bool      `gorm:"not null" json:"want_more"`
	Comments   string    `gorm:"type:text" json:"comments"`
	CreatedAt  time.Time `json:"created_at"`
}

func (f *Feedback) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
