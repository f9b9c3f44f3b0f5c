package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rakapradana/kosthub-backend/internal/dto"
	"github.com/rakapradana/kosthub-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrPropertyNotFound  = errors.New("property not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrReasonRequired    = errors.New("rejection reason is required")
)

const autoRejectionReason = "Automatic rejection: Property description contains inappropriate content"

// PropertyService owns the listing status state machine (pending ->
// approved/rejected, moderation as an independent axis) and triggers the
// moderation scan on create, description update and restore.
type PropertyService struct {
	db         *gorm.DB
	moderation *ModerationService
}

func NewPropertyService(db *gorm.DB, moderation *ModerationService) *PropertyService {
	return &PropertyService{db: db, moderation: moderation}
}

func (s *PropertyService) List(status string, page, pageSize int) ([]models.Property, int64, error) {
	var properties []models.Property
	var total int64

	query := s.db.Model(&models.Property{})
	switch status {
	case models.PropertyStatusPending, models.PropertyStatusApproved, models.PropertyStatusRejected:
		query = query.Where("status = ?", status)
	case models.PropertyStatusModeration:
		query = query.Where("status = ? OR has_reported_content = ?", models.PropertyStatusModeration, true)
	}
	query.Count(&total)

	err := query.Preload("Owner").Preload("Category").
		Order("created_at DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&properties).Error
	if err != nil {
		return nil, 0, err
	}
	return properties, total, nil
}

func (s *PropertyService) Get(id uuid.UUID) (*models.Property, error) {
	var property models.Property
	err := s.db.Preload("Owner").Preload("Category").Preload("Facilities").Preload("Flags").
		First(&property, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}
	return &property, nil
}

// Create stores a new pending listing and runs the moderation scan on its
// description. A failed scan never fails the creation; auto-rejection is a
// side effect, not a validation step.
func (s *PropertyService) Create(req *dto.CreatePropertyRequest, adminID uuid.UUID) (*models.Property, error) {
	property := models.Property{
		ID:             uuid.New(),
		OwnerID:        req.OwnerID,
		CategoryID:     req.CategoryID,
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		DepositAmount:  req.DepositAmount,
		Address:        req.Address,
		City:           req.City,
		State:          req.State,
		ZipCode:        req.ZipCode,
		Capacity:       req.Capacity,
		IsAvailable:    true,
		Status:         models.PropertyStatusPending,
		LastModifiedBy: &adminID,
	}
	if req.IsAvailable != nil {
		property.IsAvailable = *req.IsAvailable
	}

	slug, err := s.uniqueSlug(req.Name)
	if err != nil {
		return nil, err
	}
	property.Slug = slug

	if err := s.db.Create(&property).Error; err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	if len(req.FacilityIDs) > 0 {
		if err := s.replaceFacilities(&property, req.FacilityIDs); err != nil {
			return nil, err
		}
	}

	s.runModerationScan(&property)
	return &property, nil
}

// Update edits listing fields. The moderation scan re-runs only when the
// description changed.
func (s *PropertyService) Update(id uuid.UUID, req *dto.UpdatePropertyRequest, adminID uuid.UUID) (*models.Property, error) {
	var property models.Property
	if err := s.db.First(&property, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}

	descriptionChanged := property.Description != req.Description

	property.CategoryID = req.CategoryID
	property.Name = req.Name
	property.Description = req.Description
	property.Price = req.Price
	property.DepositAmount = req.DepositAmount
	property.Address = req.Address
	property.City = req.City
	property.State = req.State
	property.ZipCode = req.ZipCode
	property.Capacity = req.Capacity
	if req.IsAvailable != nil {
		property.IsAvailable = *req.IsAvailable
	}
	property.LastModifiedBy = &adminID

	if err := s.db.Save(&property).Error; err != nil {
		return nil, fmt.Errorf("failed to update property: %w", err)
	}

	if req.FacilityIDs != nil {
		if err := s.replaceFacilities(&property, req.FacilityIDs); err != nil {
			return nil, err
		}
	}

	if descriptionChanged {
		s.runModerationScan(&property)
	}
	return &property, nil
}

// Approve transitions pending -> approved. The status check happens in the
// UPDATE itself so that of two racing approvals only one can win; the loser
// gets ErrInvalidTransition.
func (s *PropertyService) Approve(id uuid.UUID, adminID uuid.UUID) (*models.Property, error) {
	now := time.Now()
	result := s.db.Model(&models.Property{}).
		Where("id = ? AND status = ?", id, models.PropertyStatusPending).
		Updates(map[string]interface{}{
			"status":           models.PropertyStatusApproved,
			"approved_at":      now,
			"rejected_at":      nil,
			"rejection_reason": nil,
			"last_modified_by": adminID,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, s.transitionFailure(id)
	}
	return s.Get(id)
}

// Reject transitions pending -> rejected with a mandatory reason.
func (s *PropertyService) Reject(id uuid.UUID, reason string, adminID uuid.UUID) (*models.Property, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, ErrReasonRequired
	}

	now := time.Now()
	result := s.db.Model(&models.Property{}).
		Where("id = ? AND status = ?", id, models.PropertyStatusPending).
		Updates(map[string]interface{}{
			"status":           models.PropertyStatusRejected,
			"rejected_at":      now,
			"rejection_reason": reason,
			"approved_at":      nil,
			"last_modified_by": adminID,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, s.transitionFailure(id)
	}
	return s.Get(id)
}

// ForceReject rejects a listing regardless of its current status. Used by the
// moderation hook and by actioned content flags; this deliberately bypasses
// the pending-only guard and can override an approved listing.
func (s *PropertyService) ForceReject(id uuid.UUID, reason string) error {
	now := time.Now()
	result := s.db.Model(&models.Property{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":           models.PropertyStatusRejected,
			"rejected_at":      now,
			"rejection_reason": reason,
			"approved_at":      nil,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPropertyNotFound
	}
	return nil
}

// ToggleFeatured flips the featured flag; allowed regardless of status.
func (s *PropertyService) ToggleFeatured(id uuid.UUID) (*models.Property, error) {
	var property models.Property
	if err := s.db.First(&property, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}

	if err := s.db.Model(&property).Update("is_featured", !property.IsFeatured).Error; err != nil {
		return nil, err
	}
	property.IsFeatured = !property.IsFeatured
	return &property, nil
}

func (s *PropertyService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.Property{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPropertyNotFound
	}
	return nil
}

// Restore brings a soft-deleted listing back and re-runs the moderation scan,
// mirroring the create hook.
func (s *PropertyService) Restore(id uuid.UUID) (*models.Property, error) {
	result := s.db.Unscoped().Model(&models.Property{}).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Update("deleted_at", nil)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrPropertyNotFound
	}

	var property models.Property
	if err := s.db.First(&property, "id = ?", id).Error; err != nil {
		return nil, err
	}
	s.runModerationScan(&property)
	return &property, nil
}

// runModerationScan is the lifecycle hook: scan the description and
// auto-reject on any high-severity match. Failures are logged, never
// propagated; the primary operation has already succeeded.
func (s *PropertyService) runModerationScan(property *models.Property) {
	matched, err := s.moderation.Scan(models.PropertyRef(property.ID), property.Description, nil)
	if err != nil {
		slog.Error("moderation scan failed", "property_id", property.ID, "error", err)
		return
	}
	if !HasHighSeverity(matched) {
		return
	}

	if err := s.ForceReject(property.ID, autoRejectionReason); err != nil {
		slog.Error("automatic rejection failed", "property_id", property.ID, "error", err)
		return
	}
	now := time.Now()
	reason := autoRejectionReason
	property.Status = models.PropertyStatusRejected
	property.RejectionReason = &reason
	property.RejectedAt = &now
	property.ApprovedAt = nil
	slog.Info("property auto-rejected by moderation scan", "property_id", property.ID, "matches", len(matched))
}

// transitionFailure distinguishes a missing listing from a guard violation
// after a zero-row guarded update.
func (s *PropertyService) transitionFailure(id uuid.UUID) error {
	var property models.Property
	if err := s.db.First(&property, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPropertyNotFound
		}
		return err
	}
	return ErrInvalidTransition
}

func (s *PropertyService) replaceFacilities(property *models.Property, facilityIDs []uuid.UUID) error {
	var facilities []models.Facility
	if len(facilityIDs) > 0 {
		if err := s.db.Find(&facilities, "id IN ?", facilityIDs).Error; err != nil {
			return err
		}
	}
	return s.db.Model(property).Association("Facilities").Replace(facilities)
}

func (s *PropertyService) uniqueSlug(name string) (string, error) {
	slug := models.Slugify(name)
	var count int64
	if err := s.db.Model(&models.Property{}).Unscoped().Where("slug = ?", slug).Count(&count).Error; err != nil {
		return "", err
	}
	if count > 0 {
		slug = slug + "-" + uuid.New().String()[:8]
	}
	return slug, nil
}
