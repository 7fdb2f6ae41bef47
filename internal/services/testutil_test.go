package services_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/scanmatch/backend/internal/config"
	"github.com/scanmatch/backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setup in-memory DB with the full schema and the settings singleton
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	err = database.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Profile{},
		&models.Connection{},
		&models.Like{},
		&models.Settings{},
		&models.SettingsAudit{},
		&models.Feedback{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	if err := database.Create(&models.Settings{ID: models.SettingsID}).Error; err != nil {
		t.Fatalf("failed to seed settings: %v", err)
	}
	return database
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  time.Hour,
		JWTRefreshExpiry: 24 * time.Hour,
	}
}

func createProfile(t *testing.T, db *gorm.DB, name string) *models.Profile {
	t.Helper()
	userID := uuid.New()
	user := models.User{ID: userID, Email: name + "@example.com", Password: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	profile := models.Profile{
		ID:              uuid.New(),
		UserID:          &userID,
		Name:            name,
		InstagramHandle: "@" + name,
	}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}
	return &profile
}

func setVotingOpen(t *testing.T, db *gorm.DB, open bool) {
	t.Helper()
	if err := db.Model(&models.Settings{}).Where("id = ?", models.SettingsID).
		Update("is_voting_open", open).Error; err != nil {
		t.Fatalf("failed to set voting flag: %v", err)
	}
}

func setMatchesRevealed(t *testing.T, db *gorm.DB, revealed bool) {
	t.Helper()
	if err := db.Model(&models.Settings{}).Where("id = ?", models.SettingsID).
		Update("are_matches_revealed", revealed).Error; err != nil {
		t.Fatalf("failed to set reveal flag: %v", err)
	}
}
