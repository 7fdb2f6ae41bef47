package handlers

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/scanmatch/backend/internal/auth"
	"github.com/scanmatch/backend/internal/config"
	"github.com/scanmatch/backend/internal/dto"
	"github.com/scanmatch/backend/internal/services"
)

type ProfileHandler struct {
	profileService *services.ProfileService
	cfg            *config.Config
}

func NewProfileHandler(profileService *services.ProfileService, cfg *config.Config) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, cfg: cfg}
}

// Me handles GET /me - the identity resolver surfaced as an endpoint.
func (h *ProfileHandler) Me(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	profile, err := h.profileService.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Profile not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load profile",
		})
	}

	return c.JSON(profile)
}

// UpdateMe handles PUT /me.
func (h *ProfileHandler) UpdateMe(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	profile, err := h.profileService.Update(userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProfileNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Profile not found",
			})
		case errors.Is(err, services.ErrNameRequired),
			errors.Is(err, services.ErrInvalidGender),
			errors.Is(err, services.ErrInvalidInterest):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update profile",
		})
	}

	return c.JSON(profile)
}

// UploadAvatar handles POST /me/avatar with multipart/form-data.
func (h *ProfileHandler) UploadAvatar(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Avatar file is required",
		})
	}

	if file.Size > h.cfg.MaxAvatarSize {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Avatar must be less than 5MB",
		})
	}

	contentType := file.Header.Get("Content-Type")
	validTypes := map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
		"image/webp": true,
		"image/heic": true,
	}
	if !validTypes[contentType] {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid image format. Only JPEG, PNG, WEBP and HEIC are allowed",
		})
	}

	fileExt := filepath.Ext(file.Filename)
	if fileExt == "" {
		fileExt = ".jpg"
	}
	filename := fmt.Sprintf("%s_%s%s", userID.String()[:8], uuid.New().String()[:8], fileExt)
	savePath := filepath.Join(h.cfg.UploadDir, filename)

	if err := c.SaveFile(file, savePath); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save avatar",
		})
	}

	avatarURL := "/uploads/avatars/" + filename
	profile, err := h.profileService.SetAvatarURL(userID, avatarURL)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Profile not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update avatar",
		})
	}

	return c.JSON(profile)
}
