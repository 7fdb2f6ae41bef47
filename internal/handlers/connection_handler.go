package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/scanmatch/backend/internal/auth"
	"github.com/scanmatch/backend/internal/dto"
	"github.com/scanmatch/backend/internal/models"
	"github.com/scanmatch/backend/internal/services"
)

type ConnectionHandler struct {
	profileService    *services.ProfileService
	connectionService *services.ConnectionService
}

func NewConnectionHandler(profileService *services.ProfileService, connectionService *services.ConnectionService) *ConnectionHandler {
	return &ConnectionHandler{profileService: profileService, connectionService: connectionService}
}

// List handles GET /connections.
func (h *ConnectionHandler) List(c *fiber.Ctx) error {
	profile, ok := resolveProfile(c, h.profileService)
	if !ok {
		return nil
	}

	entries, err := h.connectionService.List(profile.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load connections",
		})
	}

	return c.JSON(dto.ConnectionsResponse{
		Connections: entries,
		ProfileID:   profile.ID,
	})
}

// Scan handles POST /connections/scan. The scanned token must look like
// a UUID before anything touches the store.
func (h *ConnectionHandler) Scan(c *fiber.Ctx) error {
	profile, ok := resolveProfile(c, h.profileService)
	if !ok {
		return nil
	}

	var req dto.ScanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	scannedID, err := uuid.Parse(req.ScannedID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid QR code",
		})
	}

	name, err := h.connectionService.Scan(profile.ID, scannedID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSelfScan):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "You scanned yourself!",
			})
		case errors.Is(err, services.ErrAlreadyConnected):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error":            true,
				"message":          "Already connected!",
				"alreadyConnected": true,
			})
		case errors.Is(err, services.ErrProfileNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Profile not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Something went wrong. Try again!",
		})
	}

	return c.JSON(dto.ScanResponse{Success: true, Name: name})
}

// resolveProfile maps the JWT caller to their profile, writing the
// Unauthorized/NotFound response itself when resolution fails.
func resolveProfile(c *fiber.Ctx, profiles *services.ProfileService) (*models.Profile, bool) {
	userID, err := auth.UserID(c)
	if err != nil {
		_ = c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
		return nil, false
	}

	profile, err := profiles.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			_ = c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Profile not found",
			})
		} else {
			_ = c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Failed to load profile",
			})
		}
		return nil, false
	}
	return profile, true
}
