package services

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/scanmatch/backend/internal/dto"
	"github.com/scanmatch/backend/internal/models"
	"github.com/scanmatch/backend/internal/realtime"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SettingsService owns the settings singleton: the one piece of global
// mutable state. Reads are open to everyone; Update is reached only
// through the admin middleware.
type SettingsService struct {
	db  *gorm.DB
	hub *realtime.Hub
}

func NewSettingsService(db *gorm.DB, hub *realtime.Hub) *SettingsService {
	return &SettingsService{db: db, hub: hub}
}

func (s *SettingsService) Get() (*models.Settings, error) {
	var settings models.Settings
	if err := s.db.First(&settings, "id = ?", models.SettingsID).Error; err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return &settings, nil
}

// Update applies a partial flag update, stamps updated_at, records the
// audit row and broadcasts the full new row to all subscribers.
func (s *SettingsService) Update(actorProfileID uuid.UUID, req *dto.UpdateSettingsRequest) (*models.Settings, error) {
	settings, err := s.Get()
	if err != nil {
		return nil, err
	}

	changes := map[string]bool{}
	if req.IsVotingOpen != nil {
		settings.IsVotingOpen = *req.IsVotingOpen
		changes["is_voting_open"] = *req.IsVotingOpen
	}
	if req.AreMatchesRevealed != nil {
		settings.AreMatchesRevealed = *req.AreMatchesRevealed
		changes["are_matches_revealed"] = *req.AreMatchesRevealed
	}
	if len(changes) == 0 {
		return settings, nil
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(settings).Error; err != nil {
			return fmt.Errorf("failed to update settings: %w", err)
		}
		payload, err := json.Marshal(changes)
		if err != nil {
			return err
		}
		audit := models.SettingsAudit{
			ID:             uuid.New(),
			ActorProfileID: actorProfileID,
			Changes:        datatypes.JSON(payload),
		}
		return tx.Create(&audit).Error
	})
	if err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.Publish(*settings)
	}
	slog.Info("settings updated",
		"actor", actorProfileID,
		"is_voting_open", settings.IsVotingOpen,
		"are_matches_revealed", settings.AreMatchesRevealed,
	)
	return settings, nil
}
