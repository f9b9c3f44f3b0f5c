package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rakapradana/kosthub-backend/internal/dto"
	"github.com/rakapradana/kosthub-backend/internal/services"
	"github.com/rakapradana/kosthub-backend/internal/validation"
)

type TaxonomyHandler struct {
	taxonomyService *services.TaxonomyService
}

func NewTaxonomyHandler(taxonomyService *services.TaxonomyService) *TaxonomyHandler {
	return &TaxonomyHandler{taxonomyService: taxonomyService}
}

func (h *TaxonomyHandler) ListCategories(c *fiber.Ctx) error {
	categoryType := c.Query("type", "")
	page, pageSize := parsePagination(c)

	categories, total, err := h.taxonomyService.ListCategories(categoryType, page, pageSize)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch categories",
		})
	}

	return c.JSON(dto.NewPagedResponse(categories, page, pageSize, total))
}

func (h *TaxonomyHandler) GetCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid category ID",
		})
	}

	category, err := h.taxonomyService.GetCategory(id)
	if err != nil {
		return h.categoryError(c, err, "Failed to fetch category")
	}

	return c.JSON(category)
}

func (h *TaxonomyHandler) CreateCategory(c *fiber.Ctx) error {
	var req dto.CategoryRequest
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

	category, err := h.taxonomyService.CreateCategory(&req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create category",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(category)
}

func (h *TaxonomyHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid category ID",
		})
	}

	var req dto.CategoryRequest
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

	category, err := h.taxonomyService.UpdateCategory(id, &req)
	if err != nil {
		return h.categoryError(c, err, "Failed to update category")
	}

	return c.JSON(category)
}

func (h *TaxonomyHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid category ID",
		})
	}

	if err := h.taxonomyService.DeleteCategory(id); err != nil {
		if errors.Is(err, services.ErrCategoryInUse) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return h.categoryError(c, err, "Failed to delete category")
	}

	return c.JSON(fiber.Map{"message": "Category deleted successfully"})
}

func (h *TaxonomyHandler) ListFacilities(c *fiber.Ctx) error {
	page, pageSize := parsePagination(c)

	facilities, total, err := h.taxonomyService.ListFacilities(page, pageSize)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch facilities",
		})
	}

	return c.JSON(dto.NewPagedResponse(facilities, page, pageSize, total))
}

func (h *TaxonomyHandler) GetFacility(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid facility ID",
		})
	}

	facility, err := h.taxonomyService.GetFacility(id)
	if err != nil {
		return h.facilityError(c, err, "Failed to fetch facility")
	}

	return c.JSON(facility)
}

func (h *TaxonomyHandler) CreateFacility(c *fiber.Ctx) error {
	var req dto.FacilityRequest
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

	facility, err := h.taxonomyService.CreateFacility(&req)
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create facility",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(facility)
}

func (h *TaxonomyHandler) UpdateFacility(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid facility ID",
		})
	}

	var req dto.FacilityRequest
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

	facility, err := h.taxonomyService.UpdateFacility(id, &req)
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return h.facilityError(c, err, "Failed to update facility")
	}

	return c.JSON(facility)
}

func (h *TaxonomyHandler) DeleteFacility(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid facility ID",
		})
	}

	if err := h.taxonomyService.DeleteFacility(id); err != nil {
		if errors.Is(err, services.ErrFacilityInUse) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return h.facilityError(c, err, "Failed to delete facility")
	}

	return c.JSON(fiber.Map{"message": "Facility deleted successfully"})
}

func (h *TaxonomyHandler) categoryError(c *fiber.Ctx, err error, fallback string) error {
	if errors.Is(err, services.ErrCategoryNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: fallback,
	})
}

func (h *TaxonomyHandler) facilityError(c *fiber.Ctx, err error, fallback string) error {
	if errors.Is(err, services.ErrFacilityNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: fallback,
	})
}
