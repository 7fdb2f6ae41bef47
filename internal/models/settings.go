package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SettingsID is the fixed primary key of the settings singleton.
const SettingsID = 1

// Settings is the single row of global event state. Only admins write
// it; every client reads it and subscribes to its changes.
type Settings struct {
	ID                 int       `gorm:"primaryKey" json:"id"`
	IsVotingOpen       bool      `gorm:"not null;default:false" json:"is_voting_open"`
	AreMatchesRevealed bool      `gorm:"not null;default:false" json:"are_matches_revealed"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// SettingsAudit records every admin settings write, with the applied
// fields as a JSON document.
type SettingsAudit struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ActorProfileID uuid.UUID      `gorm:"type:uuid;not null;index" json:"actor_profile_id"`
	Changes        datatypes.JSON `gorm:"type:jsonb;not null" json:"changes"`
	CreatedAt      time.Time      `json:"created_at"`
}

func (a *SettingsAudit) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
