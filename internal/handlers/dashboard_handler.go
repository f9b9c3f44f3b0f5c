package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rakapradana/kosthub-backend/internal/dto"
	"github.com/rakapradana/kosthub-backend/internal/models"
	"gorm.io/gorm"
)

type DashboardHandler struct {
	db *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{db: db}
}

// Stats aggregates the counters the admin landing page shows.
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	var resp dto.DashboardResponse

	h.db.Model(&models.User{}).Count(&resp.TotalUsers)
	h.db.Model(&models.Property{}).Count(&resp.TotalProperties)
	h.db.Model(&models.Property{}).Where("status = ?", models.PropertyStatusPending).Count(&resp.PendingProperties)
	h.db.Model(&models.ContentFlag{}).Where("status = ?", models.FlagStatusPending).Count(&resp.PendingFlags)
	h.db.Model(&models.User{}).Where("verification_status = ?", models.VerificationPending).Count(&resp.PendingKYC)

	return c.JSON(resp)
}
