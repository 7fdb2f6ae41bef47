package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/scanmatch/backend/internal/dto"
	"github.com/scanmatch/backend/internal/services"
)

type SettingsHandler struct {
	settingsService *services.SettingsService
	profileService  *services.ProfileService
}

func NewSettingsHandler(settingsService *services.SettingsService, profileService *services.ProfileService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService, profileService: profileService}
}

// Get handles GET /settings (public).
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	settings, err := h.settingsService.Get()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load settings",
		})
	}

	return c.JSON(dto.SettingsResponse{
		IsVotingOpen:       settings.IsVotingOpen,
		AreMatchesRevealed: settings.AreMatchesRevealed,
	})
}

// Update handles PATCH /admin/settings. The admin middleware has
// already vetted the caller; the acting profile id it stashed is used
// for the audit row.
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	actorID, _ := c.Locals("admin_profile_id").(uuid.UUID)

	settings, err := h.settingsService.Update(actorID, &req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update settings",
		})
	}

	return c.JSON(settings)
}
