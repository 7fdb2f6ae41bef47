package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/scanmatch/backend/internal/dto"
	"github.com/scanmatch/backend/internal/services"
)

// AdminHandler serves the staff audit views: the match explorer and
// event totals. Access control happens in the admin middleware.
type AdminHandler struct {
	adminService *services.AdminService
	likeService  *services.LikeService
}

func NewAdminHandler(adminService *services.AdminService, likeService *services.LikeService) *AdminHandler {
	return &AdminHandler{adminService: adminService, likeService: likeService}
}

// ListProfiles handles GET /admin/profiles.
func (h *AdminHandler) ListProfiles(c *fiber.Ctx) error {
	profiles, err := h.adminService.ListProfiles()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to list profiles",
		})
	}
	return c.JSON(profiles)
}

// MatchAudit handles GET /admin/matches/:profile_id.
func (h *AdminHandler) MatchAudit(c *fiber.Ctx) error {
	profileID, err := uuid.Parse(c.Params("profile_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid profile id",
		})
	}

	entries, err := h.adminService.MatchAudit(profileID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load match audit",
		})
	}
	return c.JSON(entries)
}

// Stats handles GET /admin/stats.
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.adminService.Stats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to compute stats",
		})
	}
	return c.JSON(stats)
}

// LikeCount handles GET /admin/likes/:profile_id/count, served from the
// redis cache when warm.
func (h *AdminHandler) LikeCount(c *fiber.Ctx) error {
	profileID, err := uuid.Parse(c.Params("profile_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid profile id",
		})
	}

	count, err := h.likeService.IncomingCount(c.Context(), profileID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to count likes",
		})
	}
	return c.JSON(fiber.Map{"profile_id": profileID, "count": count})
}
