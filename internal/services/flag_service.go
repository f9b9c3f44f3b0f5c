package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rakapradana/kosthub-backend/internal/dto"
	"github.com/rakapradana/kosthub-backend/internal/models"
	"gorm.io/gorm"
)

var ErrFlagNotFound = errors.New("content flag not found")

const actionedRejectionReason = "Inappropriate content. Please revise and resubmit."

// FlagService is the content-flag ledger: an append-mostly log whose single
// mutation path is Review. Reviewing an already-terminal flag overwrites the
// review fields (last write wins); terminal flags are not locked.
type FlagService struct {
	db         *gorm.DB
	properties *PropertyService
}

func NewFlagService(db *gorm.DB, properties *PropertyService) *FlagService {
	return &FlagService{db: db, properties: properties}
}

// ListPending returns flags with status exactly pending.
func (s *FlagService) ListPending(page, pageSize int) ([]models.ContentFlag, int64, error) {
	return s.list(s.db.Where("status = ?", models.FlagStatusPending), page, pageSize)
}

// ListReviewed returns the union of reviewed, rejected and actioned flags.
func (s *FlagService) ListReviewed(page, pageSize int) ([]models.ContentFlag, int64, error) {
	statuses := []string{models.FlagStatusReviewed, models.FlagStatusRejected, models.FlagStatusActioned}
	return s.list(s.db.Where("status IN ?", statuses), page, pageSize)
}

func (s *FlagService) list(query *gorm.DB, page, pageSize int) ([]models.ContentFlag, int64, error) {
	var flags []models.ContentFlag
	var total int64

	query = query.Model(&models.ContentFlag{})
	query.Count(&total)

	err := query.Preload("Reporter").
		Order("created_at DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&flags).Error
	if err != nil {
		return nil, 0, err
	}
	return flags, total, nil
}

func (s *FlagService) Get(id uuid.UUID) (*models.ContentFlag, error) {
	var flag models.ContentFlag
	err := s.db.Preload("Reporter").Preload("Reviewer").First(&flag, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFlagNotFound
		}
		return nil, err
	}
	return &flag, nil
}

// Review sets status, notes, reviewer and reviewed_at in a single update.
// When the new status is actioned and the flag points at a property, the
// listing is force-rejected as a cross-component side effect.
func (s *FlagService) Review(id uuid.UUID, req *dto.ReviewFlagRequest, reviewerID uuid.UUID) (*models.ContentFlag, error) {
	var flag models.ContentFlag
	if err := s.db.First(&flag, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFlagNotFound
		}
		return nil, err
	}

	now := time.Now()
	err := s.db.Model(&flag).Updates(map[string]interface{}{
		"status":      req.Status,
		"admin_notes": req.AdminNotes,
		"reviewed_by": reviewerID,
		"reviewed_at": now,
	}).Error
	if err != nil {
		return nil, fmt.Errorf("failed to review content flag: %w", err)
	}

	if req.Status == models.FlagStatusActioned {
		if err := s.actionFlaggable(flag.Ref()); err != nil {
			return nil, err
		}
	}
	return s.Get(id)
}

// actionFlaggable applies the actioned consequence per flaggable kind. The
// switch must stay exhaustive over models.FlaggableType.
func (s *FlagService) actionFlaggable(ref models.FlaggableRef) error {
	switch ref.Type {
	case models.FlaggableProperty:
		return s.properties.ForceReject(ref.ID, actionedRejectionReason)
	default:
		return fmt.Errorf("no actioned handling for flaggable type %q", ref.Type)
	}
}
