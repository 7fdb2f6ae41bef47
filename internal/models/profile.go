package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile is an event attendee. UserID is nullable: staff can pre-create
// badge profiles that get claimed on first login.
type Profile struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          *uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"user_id"`
	Name            string     `gorm:"size:120;not null" json:"name"`
	InstagramHandle string     `gorm:"size:64;not null" json:"instagram_handle"`
	Nationality     *string    `gorm:"size:64" json:"nationality"`
	AvatarURL       *string    `gorm:"type:text" json:"avatar_url"`
	Gender          *string    `gorm:"size:20" json:"gender"`
	InterestedIn    *string    `gorm:"size:20" json:"interested_in"`
	IsAdmin         bool       `gorm:"default:false" json:"is_admin"`
	CreatedAt       time.Time  `json:"created_at"`
}

var (
	Genders     = []string{"male", "female", "non-binary", "prefer-not-to-say"}
	Preferences = []string{"men", "women", "everyone"}
)

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
