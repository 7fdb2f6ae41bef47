package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/scanmatch/backend/internal/auth"
	"github.com/scanmatch/backend/internal/config"
	"github.com/scanmatch/backend/internal/dto"
	"github.com/scanmatch/backend/internal/models"
	"gorm.io/gorm"
)

// AdminRequired checks, in order:
// 1. Config-based admin email list
// 2. The is_admin flag on the caller's profile
func AdminRequired(db *gorm.DB, cfg *config.Config) fiber.Handler {
	adminEmails := parseCSV(cfg.AdminEmails)

	return func(c *fiber.Ctx) error {
		userID, err := auth.UserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		var profile models.Profile
		hasProfile := db.First(&profile, "user_id = ?", userID).Error == nil
		if hasProfile {
			c.Locals("admin_profile_id", profile.ID)
		}

		if contains(adminEmails, auth.Email(c)) {
			return c.Next()
		}
		if hasProfile && profile.IsAdmin {
			return c.Next()
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Admin access required",
		})
	}
}

func parseCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func contains(list []string, val string) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}
	return false
}
