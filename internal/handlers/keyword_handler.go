package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rakapradana/kosthub-backend/internal/dto"
	"github.com/rakapradana/kosthub-backend/internal/services"
	"github.com/rakapradana/kosthub-backend/internal/validation"
)

type KeywordHandler struct {
	keywordService *services.KeywordService
}

func NewKeywordHandler(keywordService *services.KeywordService) *KeywordHandler {
	return &KeywordHandler{keywordService: keywordService}
}

func (h *KeywordHandler) List(c *fiber.Ctx) error {
	page, pageSize := parsePagination(c)

	keywords, total, err := h.keywordService.List(page, pageSize)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch keywords",
		})
	}

	return c.JSON(dto.NewPagedResponse(keywords, page, pageSize, total))
}

func (h *KeywordHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateKeywordRequest
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

	keyword, err := h.keywordService.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateKeyword) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create keyword",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(keyword)
}

func (h *KeywordHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid keyword ID",
		})
	}

	var req dto.UpdateKeywordRequest
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

	keyword, err := h.keywordService.Update(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrKeywordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		if errors.Is(err, services.ErrDuplicateKeyword) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update keyword",
		})
	}

	return c.JSON(keyword)
}

func (h *KeywordHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid keyword ID",
		})
	}

	if err := h.keywordService.Delete(id); err != nil {
		if errors.Is(err, services.ErrKeywordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete keyword",
		})
	}

	return c.JSON(fiber.Map{"message": "Keyword deleted successfully"})
}
