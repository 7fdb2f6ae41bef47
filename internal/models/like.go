package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Like is a directed expression of interest. Never symmetric on its own;
// a mutual match is the intersection of the two directions.
type Like struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	LikerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_likes_liker_liked,priority:1" json:"liker_id"`
	LikedID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_likes_liker_liked,priority:2;index" json:"liked_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (l *Like) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
