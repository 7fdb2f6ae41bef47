package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/scanmatch/backend/internal/dto"
	"github.com/scanmatch/backend/internal/services"
)

type FeedbackHandler struct {
	profileService  *services.ProfileService
	feedbackService *services.FeedbackService
}

func NewFeedbackHandler(profileService *services.ProfileService, feedbackService *services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{profileService: profileService, feedbackService: feedbackService}
}

// Submit handles POST /feedback.
func (h *FeedbackHandler) Submit(c *fiber.Ctx) error {
	profile, ok := resolveProfile(c, h.profileService)
	if !ok {
		return nil
	}

	var req dto.FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.feedbackService.Submit(*profile.UserID, profile.ID, &req); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRating):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrFeedbackExists):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: "Feedback already submitted",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save feedback",
		})
	}

	return c.JSON(fiber.Map{"success": true})
}

// Check handles GET /feedback/check.
func (h *FeedbackHandler) Check(c *fiber.Ctx) error {
	profile, ok := resolveProfile(c, h.profileService)
	if !ok {
		return nil
	}

	exists, err := h.feedbackService.Exists(profile.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to check feedback",
		})
	}

	return c.JSON(dto.FeedbackCheckResponse{Exists: exists})
}
