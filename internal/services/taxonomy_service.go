package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rakapradana/kosthub-backend/internal/dto"
	"github.com/rakapradana/kosthub-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrFacilityNotFound = errors.New("facility not found")
	ErrCategoryInUse    = errors.New("category is referenced by properties or facilities")
	ErrFacilityInUse    = errors.New("facility is attached to properties")
)

// TaxonomyService manages the reference data listings hang off: categories
// (room types, facility types, location zones) and facilities. Slugs are
// derived from names and kept stable across renames only when they collide.
type TaxonomyService struct {
	db *gorm.DB
}

func NewTaxonomyService(db *gorm.DB) *TaxonomyService {
	return &TaxonomyService{db: db}
}

func (s *TaxonomyService) ListCategories(categoryType string, page, pageSize int) ([]models.Category, int64, error) {
	var categories []models.Category
	var total int64

	query := s.db.Model(&models.Category{})
	if categoryType != "" {
		query = query.Where("type = ?", categoryType)
	}
	query.Count(&total)

	err := query.Order("name ASC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&categories).Error
	if err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

func (s *TaxonomyService) GetCategory(id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (s *TaxonomyService) CreateCategory(req *dto.CategoryRequest) (*models.Category, error) {
	category := models.Category{
		ID:          uuid.New(),
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
		IsActive:    true,
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	slug, err := s.uniqueCategorySlug(req.Name, uuid.Nil)
	if err != nil {
		return nil, err
	}
	category.Slug = slug

	if err := s.db.Create(&category).Error; err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &category, nil
}

func (s *TaxonomyService) UpdateCategory(id uuid.UUID, req *dto.CategoryRequest) (*models.Category, error) {
	category, err := s.GetCategory(id)
	if err != nil {
		return nil, err
	}

	if req.Name != category.Name {
		slug, err := s.uniqueCategorySlug(req.Name, id)
		if err != nil {
			return nil, err
		}
		category.Slug = slug
	}

	category.Name = req.Name
	category.Type = req.Type
	category.Description = req.Description
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := s.db.Save(category).Error; err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

// DeleteCategory refuses to remove a category still referenced by properties
// or facilities; reference data disappearing under live rows breaks listings.
func (s *TaxonomyService) DeleteCategory(id uuid.UUID) error {
	var propertyCount, facilityCount int64
	s.db.Model(&models.Property{}).Where("category_id = ?", id).Count(&propertyCount)
	s.db.Model(&models.Facility{}).Where("category_id = ?", id).Count(&facilityCount)
	if propertyCount > 0 || facilityCount > 0 {
		return ErrCategoryInUse
	}

	result := s.db.Delete(&models.Category{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (s *TaxonomyService) ListFacilities(page, pageSize int) ([]models.Facility, int64, error) {
	var facilities []models.Facility
	var total int64

	query := s.db.Model(&models.Facility{})
	query.Count(&total)

	err := query.Preload("Category").Order("name ASC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&facilities).Error
	if err != nil {
		return nil, 0, err
	}
	return facilities, total, nil
}

func (s *TaxonomyService) GetFacility(id uuid.UUID) (*models.Facility, error) {
	var facility models.Facility
	if err := s.db.Preload("Category").First(&facility, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFacilityNotFound
		}
		return nil, err
	}
	return &facility, nil
}

func (s *TaxonomyService) CreateFacility(req *dto.FacilityRequest) (*models.Facility, error) {
	if req.CategoryID != nil {
		if _, err := s.GetCategory(*req.CategoryID); err != nil {
			return nil, err
		}
	}

	facility := models.Facility{
		ID:          uuid.New(),
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		IsActive:    true,
	}
	if req.IsActive != nil {
		facility.IsActive = *req.IsActive
	}

	slug, err := s.uniqueFacilitySlug(req.Name, uuid.Nil)
	if err != nil {
		return nil, err
	}
	facility.Slug = slug

	if err := s.db.Create(&facility).Error; err != nil {
		return nil, fmt.Errorf("failed to create facility: %w", err)
	}
	return &facility, nil
}

func (s *TaxonomyService) UpdateFacility(id uuid.UUID, req *dto.FacilityRequest) (*models.Facility, error) {
	facility, err := s.GetFacility(id)
	if err != nil {
		return nil, err
	}
	if req.CategoryID != nil {
		if _, err := s.GetCategory(*req.CategoryID); err != nil {
			return nil, err
		}
	}

	if req.Name != facility.Name {
		slug, err := s.uniqueFacilitySlug(req.Name, id)
		if err != nil {
			return nil, err
		}
		facility.Slug = slug
	}

	facility.CategoryID = req.CategoryID
	facility.Name = req.Name
	facility.Description = req.Description
	facility.Icon = req.Icon
	if req.IsActive != nil {
		facility.IsActive = *req.IsActive
	}
	facility.Category = nil

	if err := s.db.Save(facility).Error; err != nil {
		return nil, fmt.Errorf("failed to update facility: %w", err)
	}
	return facility, nil
}

// DeleteFacility refuses to remove a facility still attached to properties.
func (s *TaxonomyService) DeleteFacility(id uuid.UUID) error {
	var count int64
	s.db.Table("property_facilities").Where("facility_id = ?", id).Count(&count)
	if count > 0 {
		return ErrFacilityInUse
	}

	result := s.db.Delete(&models.Facility{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFacilityNotFound
	}
	return nil
}

func (s *TaxonomyService) uniqueCategorySlug(name string, excludeID uuid.UUID) (string, error) {
	slug := models.Slugify(name)
	var count int64
	query := s.db.Model(&models.Category{}).Where("slug = ?", slug)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return "", err
	}
	if count > 0 {
		slug = slug + "-" + uuid.New().String()[:8]
	}
	return slug, nil
}

func (s *TaxonomyService) uniqueFacilitySlug(name string, excludeID uuid.UUID) (string, error) {
	slug := models.Slugify(name)
	var count int64
	query := s.db.Model(&models.Facility{}).Where("slug = ?", slug)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return "", err
	}
	if count > 0 {
		slug = slug + "-" + uuid.New().String()[:8]
	}
	return slug, nil
}
