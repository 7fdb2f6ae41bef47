package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/scanmatch/backend/internal/dto"
	"github.com/scanmatch/backend/internal/models"
	"gorm.io/gorm"
)

// AdminService backs the staff audit views: the match explorer and the
// event totals. It is read-only and sees likes in both directions
// regardless of the reveal flag.
type AdminService struct {
	db *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

func (s *AdminService) ListProfiles() ([]models.Profile, error) {
	var profiles []models.Profile
	if err := s.db.Order("name asc").Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}

// MatchAudit returns every profile the inspected profile has a like
// relation with, in either direction, with the mutuality flags.
func (s *AdminService) MatchAudit(profileID uuid.UUID) ([]dto.MatchAuditEntry, error) {
	var sent []uuid.UUID
	if err := s.db.Model(&models.Like{}).Where("liker_id = ?", profileID).Pluck("liked_id", &sent).Error; err != nil {
		return nil, fmt.Errorf("failed to load sent likes: %w", err)
	}
	var received []uuid.UUID
	if err := s.db.Model(&models.Like{}).Where("liked_id = ?", profileID).Pluck("liker_id", &received).Error; err != nil {
		return nil, fmt.Errorf("failed to load received likes: %w", err)
	}

	sentSet := toSet(sent)
	receivedSet := toSet(received)

	involved := make([]uuid.UUID, 0, len(sentSet)+len(receivedSet))
	seen := map[uuid.UUID]struct{}{}
	for _, id := range append(sent, received...) {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		involved = append(involved, id)
	}
	if len(involved) == 0 {
		return []dto.MatchAuditEntry{}, nil
	}

	var profiles []models.Profile
	if err := s.db.Where("id IN ?", involved).Order("name asc").Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}

	entries := make([]dto.MatchAuditEntry, 0, len(profiles))
	for _, p := range profiles {
		_, iLikedThem := sentSet[p.ID]
		_, theyLikedMe := receivedSet[p.ID]
		entries = append(entries, dto.MatchAuditEntry{
			Profile:     p,
			ILikedThem:  iLikedThem,
			TheyLikedMe: theyLikedMe,
			IsMutual:    iLikedThem && theyLikedMe,
		})
	}
	return entries, nil
}

// Stats returns event totals. Connections and mutual matches are
// stored as directed pairs, so both raw counts are halved.
func (s *AdminService) Stats() (*dto.StatsResponse, error) {
	stats := &dto.StatsResponse{}

	if err := s.db.Model(&models.Profile{}).Count(&stats.Profiles).Error; err != nil {
		return nil, fmt.Errorf("failed to count profiles: %w", err)
	}

	var directedConnections int64
	if err := s.db.Model(&models.Connection{}).Count(&directedConnections).Error; err != nil {
		return nil, fmt.Errorf("failed to count connections: %w", err)
	}
	stats.Connections = directedConnections / 2

	if err := s.db.Model(&models.Like{}).Count(&stats.Likes).Error; err != nil {
		return nil, fmt.Errorf("failed to count likes: %w", err)
	}

	var mutualDirected int64
	err := s.db.Raw(`
		SELECT COUNT(*) FROM likes l
		JOIN likes r ON l.liker_id = r.liked_id AND l.liked_id = r.liker_id
	`).Scan(&mutualDirected).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count mutual matches: %w", err)
	}
	stats.MutualMatches = mutualDirected / 2

	return stats, nil
}

func toSet(ids []uuid.UUID) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
