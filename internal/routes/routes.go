package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/scanmatch/backend/internal/config"
	"github.com/scanmatch/backend/internal/handlers"
	"github.com/scanmatch/backend/internal/middleware"
	"github.com/scanmatch/backend/internal/realtime"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	hub *realtime.Hub,
	authHandler *handlers.AuthHandler,
	profileHandler *handlers.ProfileHandler,
	connectionHandler *handlers.ConnectionHandler,
	likeHandler *handlers.LikeHandler,
	settingsHandler *handlers.SettingsHandler,
	feedbackHandler *handlers.FeedbackHandler,
	adminHandler *handlers.AdminHandler,
	healthHandler *handlers.HealthHandler,
) {
	// Uploaded avatars are served straight from disk.
	app.Static("/uploads/avatars", cfg.UploadDir)

	api := app.Group("/api")

	// General API rate limiter: 120 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               120,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health and public settings (no auth)
	api.Get("/health", healthHandler.Check)
	api.Get("/settings", settingsHandler.Get)
	api.Get("/settings/ws", realtime.UpgradeRequired(), realtime.SettingsStream(hub))

	// Auth — public, with a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// Profile
	api.Get("/me", middleware.JWTProtected(cfg), profileHandler.Me)
	api.Put("/me", middleware.JWTProtected(cfg), profileHandler.UpdateMe)
	api.Post("/me/avatar", middleware.JWTProtected(cfg), profileHandler.UploadAvatar)

	// Connections and likes
	api.Get("/connections", middleware.JWTProtected(cfg), connectionHandler.List)
	api.Post("/connections/scan", middleware.JWTProtected(cfg), connectionHandler.Scan)
	api.Post("/likes", middleware.JWTProtected(cfg), likeHandler.Like)
	api.Delete("/likes", middleware.JWTProtected(cfg), likeHandler.Unlike)

	// Feedback
	api.Post("/feedback", middleware.JWTProtected(cfg), feedbackHandler.Submit)
	api.Get("/feedback/check", middleware.JWTProtected(cfg), feedbackHandler.Check)

	// Admin panel (protected + admin required)
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Patch("/settings", settingsHandler.Update)
	admin.Get("/profiles", adminHandler.ListProfiles)
	admin.Get("/matches/:profile_id", adminHandler.MatchAudit)
	admin.Get("/likes/:profile_id/count", adminHandler.LikeCount)
	admin.Get("/stats", adminHandler.Stats)
}
