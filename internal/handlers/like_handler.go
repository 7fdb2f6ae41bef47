package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/scanmatch/backend/internal/dto"
	"github.com/scanmatch/backend/internal/services"
)

type LikeHandler struct {
	profileService *services.ProfileService
	likeService    *services.LikeService
}

func NewLikeHandler(profileService *services.ProfileService, likeService *services.LikeService) *LikeHandler {
	return &LikeHandler{profileService: profileService, likeService: likeService}
}

// Like handles POST /likes.
func (h *LikeHandler) Like(c *fiber.Ctx) error {
	profile, ok := resolveProfile(c, h.profileService)
	if !ok {
		return nil
	}

	likedID, ok := parseLikedID(c)
	if !ok {
		return nil
	}

	if err := h.likeService.Like(profile.ID, likedID); err != nil {
		if errors.Is(err, services.ErrVotingClosed) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Voting is not open",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save like",
		})
	}

	return c.JSON(fiber.Map{"success": true})
}

// Unlike handles DELETE /likes.
func (h *LikeHandler) Unlike(c *fiber.Ctx) error {
	profile, ok := resolveProfile(c, h.profileService)
	if !ok {
		return nil
	}

	likedID, ok := parseLikedID(c)
	if !ok {
		return nil
	}

	if err := h.likeService.Unlike(profile.ID, likedID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to remove like",
		})
	}

	return c.JSON(fiber.Map{"success": true})
}

func parseLikedID(c *fiber.Ctx) (uuid.UUID, bool) {
	var req dto.LikeRequest
	if err := c.BodyParser(&req); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
		return uuid.Nil, false
	}

	likedID, err := uuid.Parse(req.LikedID)
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "liked_id is required",
		})
		return uuid.Nil, false
	}
	return likedID, true
}
