package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/scanmatch/backend/internal/dto"
	"github.com/scanmatch/backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidGender   = errors.New("invalid gender")
	ErrInvalidInterest = errors.New("invalid interested_in value")
	ErrNameRequired    = errors.New("name is required")
)

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// GetByUserID resolves an authenticated account to its single profile.
// Every mutating operation resolves identity through here first.
func (s *ProfileService) GetByUserID(userID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.First(&profile, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return &profile, nil
}

// Update mutates the owner-editable fields. The instagram handle is
// normalized to a leading @.
func (s *ProfileService) Update(userID uuid.UUID, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	profile, err := s.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if req.Gender != nil && !oneOf(*req.Gender, models.Genders) {
		return nil, ErrInvalidGender
	}
	if req.InterestedIn != nil && !oneOf(*req.InterestedIn, models.Preferences) {
		return nil, ErrInvalidInterest
	}

	handle := strings.TrimSpace(req.InstagramHandle)
	if handle != "" && !strings.HasPrefix(handle, "@") {
		handle = "@" + handle
	}

	profile.Name = name
	profile.InstagramHandle = handle
	profile.Nationality = req.Nationality
	profile.Gender = req.Gender
	profile.InterestedIn = req.InterestedIn

	if err := s.db.Save(profile).Error; err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}

// SetAvatarURL stores the public URL of a freshly uploaded avatar.
func (s *ProfileService) SetAvatarURL(userID uuid.UUID, url string) (*models.Profile, error) {
	profile, err := s.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	profile.AvatarURL = &url
	if err := s.db.Save(profile).Error; err != nil {
		return nil, fmt.Errorf("failed to update avatar: %w", err)
	}
	return profile, nil
}

func oneOf(val string, allowed []string) bool {
	for _, a := range allowed {
		if a == val {
			return true
		}
	}
	return false
}
