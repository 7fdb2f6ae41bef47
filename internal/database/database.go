package database

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/scanmatch/backend/internal/config"
	"github.com/scanmatch/backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Connect(cfg *config.Config) error {
	var err error
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	slog.Info("database connected")
	return nil
}

// Migrate runs AutoMigrate for all models.
func Migrate() error {
	return DB.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Profile{},
		&models.Connection{},
		&models.Like{},
		&models.Settings{},
		&models.SettingsAudit{},
		&models.Feedback{},
		&models.SystemLog{},
	)
}

// SeedSettings ensures the settings singleton row exists. Both flags
// start closed.
func SeedSettings() error {
	var settings models.Settings
	err := DB.First(&settings, "id = ?", models.SettingsID).Error
	if err == gorm.ErrRecordNotFound {
		return DB.Create(&models.Settings{ID: models.SettingsID}).Error
	}
	return err
}

func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
