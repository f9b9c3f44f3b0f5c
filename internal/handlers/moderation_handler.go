package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rakapradana/kosthub-backend/internal/dto"
	"github.com/rakapradana/kosthub-backend/internal/middleware"
	"github.com/rakapradana/kosthub-backend/internal/models"
	"github.com/rakapradana/kosthub-backend/internal/services"
	"github.com/rakapradana/kosthub-backend/internal/validation"
)

type ModerationHandler struct {
	moderationService *services.ModerationService
	flagService       *services.FlagService
}

func NewModerationHandler(moderationService *services.ModerationService, flagService *services.FlagService) *ModerationHandler {
	return &ModerationHandler{
		moderationService: moderationService,
		flagService:       flagService,
	}
}

// CreateReport records a user report against a listing and moves the listing
// into the moderation bucket so it shows up in the admin queue.
func (h *ModerationHandler) CreateReport(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == uuid.Nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	flag, err := h.moderationService.Report(models.PropertyRef(req.FlaggableID), userID, req.Reason, req.Details)
	if err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		if errors.Is(err, services.ErrReportReasonRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to submit report",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(flag)
}

func (h *ModerationHandler) ListPendingFlags(c *fiber.Ctx) error {
	page, pageSize := parsePagination(c)

	flags, total, err := h.flagService.ListPending(page, pageSize)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch flags",
		})
	}

	return c.JSON(dto.NewPagedResponse(flags, page, pageSize, total))
}

func (h *ModerationHandler) ListReviewedFlags(c *fiber.Ctx) error {
	page, pageSize := parsePagination(c)

	flags, total, err := h.flagService.ListReviewed(page, pageSize)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch flags",
		})
	}

	return c.JSON(dto.NewPagedResponse(flags, page, pageSize, total))
}

func (h *ModerationHandler) GetFlag(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid flag ID",
		})
	}

	flag, err := h.flagService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrFlagNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch flag",
		})
	}

	return c.JSON(flag)
}

func (h *ModerationHandler) ReviewFlag(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid flag ID",
		})
	}

	var req dto.ReviewFlagRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	flag, err := h.flagService.Review(id, &req, middleware.UserID(c))
	if err != nil {
		if errors.Is(err, services.ErrFlagNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to review flag",
		})
	}

	return c.JSON(flag)
}

// Sanitize previews the keyword-replaced version of a text without touching
// the flag ledger.
func (h *ModerationHandler) Sanitize(c *fiber.Ctx) error {
	var req dto.SanitizeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := validation.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	sanitized, err := h.moderationService.Sanitize(req.Text)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to sanitize text",
		})
	}

	return c.JSON(dto.SanitizeResponse{Sanitized: sanitized})
}
