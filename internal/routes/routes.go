package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/rakapradana/kosthub-backend/internal/config"
	"github.com/rakapradana/kosthub-backend/internal/handlers"
	"github.com/rakapradana/kosthub-backend/internal/middleware"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	propertyHandler *handlers.PropertyHandler,
	moderationHandler *handlers.ModerationHandler,
	keywordHandler *handlers.KeywordHandler,
	taxonomyHandler *handlers.TaxonomyHandler,
	userHandler *handlers.UserHandler,
	dashboardHandler *handlers.DashboardHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

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

	// Logout needs a valid token; applied per-route so the public auth
	// endpoints stay unauthenticated.
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)

	// User-facing content reporting (any authenticated user)
	api.Post("/reports", middleware.JWTProtected(cfg), moderationHandler.CreateReport)

	// Admin back office (JWT + admin required)
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))

	admin.Get("/dashboard", dashboardHandler.Stats)

	// Property lifecycle
	admin.Get("/properties", propertyHandler.List)
	admin.Post("/properties", propertyHandler.Create)
	admin.Get("/properties/:id", propertyHandler.Get)
	admin.Put("/properties/:id", propertyHandler.Update)
	admin.Delete("/properties/:id", propertyHandler.Delete)
	admin.Post("/properties/:id/approve", propertyHandler.Approve)
	admin.Post("/properties/:id/reject", propertyHandler.Reject)
	admin.Post("/properties/:id/feature", propertyHandler.ToggleFeatured)
	admin.Post("/properties/:id/restore", propertyHandler.Restore)

	// Content flags
	admin.Get("/moderation/flags", moderationHandler.ListPendingFlags)
	admin.Get("/moderation/flags/reviewed", moderationHandler.ListReviewedFlags)
	admin.Get("/moderation/flags/:id", moderationHandler.GetFlag)
	admin.Put("/moderation/flags/:id", moderationHandler.ReviewFlag)
	admin.Post("/moderation/sanitize", moderationHandler.Sanitize)

	// Forbidden keywords
	admin.Get("/moderation/keywords", keywordHandler.List)
	admin.Post("/moderation/keywords", keywordHandler.Create)
	admin.Put("/moderation/keywords/:id", keywordHandler.Update)
	admin.Delete("/moderation/keywords/:id", keywordHandler.Delete)

	// Taxonomy
	admin.Get("/categories", taxonomyHandler.ListCategories)
	admin.Post("/categories", taxonomyHandler.CreateCategory)
	admin.Get("/categories/:id", taxonomyHandler.GetCategory)
	admin.Put("/categories/:id", taxonomyHandler.UpdateCategory)
	admin.Delete("/categories/:id", taxonomyHandler.DeleteCategory)

	admin.Get("/facilities", taxonomyHandler.ListFacilities)
	admin.Post("/facilities", taxonomyHandler.CreateFacility)
	admin.Get("/facilities/:id", taxonomyHandler.GetFacility)
	admin.Put("/facilities/:id", taxonomyHandler.UpdateFacility)
	admin.Delete("/facilities/:id", taxonomyHandler.DeleteFacility)

	// Users and KYC
	admin.Get("/users", userHandler.List)
	admin.Post("/users", userHandler.Create)
	admin.Get("/users/:id", userHandler.Get)
	admin.Put("/users/:id", userHandler.Update)
	admin.Delete("/users/:id", userHandler.Delete)
	admin.Get("/kyc/pending", userHandler.ListPendingKyc)
	admin.Post("/kyc/:id/approve", userHandler.ApproveKyc)
	admin.Post("/kyc/:id/reject", userHandler.RejectKyc)
}
