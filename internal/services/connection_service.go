package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/scanmatch/backend/internal/dto"
	"github.com/scanmatch/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrSelfScan         = errors.New("cannot connect to yourself")
	ErrAlreadyConnected = errors.New("already connected")
)

// fallbackName is returned when the scanned profile row cannot be read
// back after a successful scan.
const fallbackName = "someone new"

type ConnectionService struct {
	db       *gorm.DB
	settings *SettingsService
}

func NewConnectionService(db *gorm.DB, settings *SettingsService) *ConnectionService {
	return &ConnectionService{db: db, settings: settings}
}

// Scan records that scanner met scanned. Both directed edges are
// written in one transaction so the relation can never be left
// asymmetric. The forward edge hitting the uniqueness index is the
// "already connected" signal; the reverse edge silently tolerates a
// pre-existing row.
func (s *ConnectionService) Scan(scannerID, scannedID uuid.UUID) (string, error) {
	if scannerID == scannedID {
		return "", ErrSelfScan
	}

	var scanned models.Profile
	if err := s.db.First(&scanned, "id = ?", scannedID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrProfileNotFound
		}
		return "", fmt.Errorf("failed to load scanned profile: %w", err)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		forward := models.Connection{ID: uuid.New(), ScannerID: scannerID, ScannedID: scannedID}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&forward)
		if res.Error != nil {
			return fmt.Errorf("failed to create connection: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyConnected
		}

		reverse := models.Connection{ID: uuid.New(), ScannerID: scannedID, ScannedID: scannerID}
		res = tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&reverse)
		if res.Error != nil {
			return fmt.Errorf("failed to create reverse connection: %w", res.Error)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	name := scanned.Name
	if name == "" {
		name = fallbackName
	}
	return name, nil
}

// List returns the viewer's connections with the derived like booleans.
//
// The incoming-like set is only consulted once matches are revealed;
// before that it reads as empty, so a viewer cannot learn who liked
// them through this endpoint. The gate lives here on purpose rather
// than in a storage policy.
func (s *ConnectionService) List(viewerID uuid.UUID) ([]dto.ConnectionEntry, error) {
	var connections []models.Connection
	if err := s.db.Preload("Scanned").
		Where("scanner_id = ?", viewerID).
		Order("created_at asc").
		Find(&connections).Error; err != nil {
		return nil, fmt.Errorf("failed to load connections: %w", err)
	}

	outgoing, err := s.likedSet("liker_id = ?", "liked_id", viewerID)
	if err != nil {
		return nil, err
	}

	incoming := map[uuid.UUID]struct{}{}
	settings, err := s.settings.Get()
	if err != nil {
		return nil, err
	}
	if settings.AreMatchesRevealed {
		incoming, err = s.likedSet("liked_id = ?", "liker_id", viewerID)
		if err != nil {
			return nil, err
		}
	}

	entries := make([]dto.ConnectionEntry, 0, len(connections))
	for _, conn := range connections {
		_, iLikedThem := outgoing[conn.ScannedID]
		_, theyLikedMe := incoming[conn.ScannedID]
		entries = append(entries, dto.ConnectionEntry{
			ID:            conn.ID,
			User:          conn.Scanned,
			ILikedThem:    iLikedThem,
			TheyLikedMe:   theyLikedMe,
			IsMutualMatch: iLikedThem && theyLikedMe,
		})
	}
	return entries, nil
}

func (s *ConnectionService) likedSet(where, column string, id uuid.UUID) (map[uuid.UUID]struct{}, error) {
	var ids []uuid.UUID
	if err := s.db.Model(&models.Like{}).Where(where, id).Pluck(column, &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to load likes: %w", err)
	}
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, v := range ids {
		set[v] = struct{}{}
	}
	return set, nil
}
