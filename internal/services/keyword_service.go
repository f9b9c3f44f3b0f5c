package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/rakapradana/kosthub-backend/internal/dto"
	"github.com/rakapradana/kosthub-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrKeywordNotFound  = errors.New("forbidden keyword not found")
	ErrDuplicateKeyword = errors.New("keyword already exists")
)

const (
	activeKeywordsCacheKey = "moderation:active_keywords"
	activeKeywordsCacheTTL = 5 * time.Minute
)

// KeywordService owns the forbidden-keyword rule set. The active list is the
// snapshot every scan runs against; it is cached in Redis when a client is
// configured and invalidated on any write.
type KeywordService struct {
	db    *gorm.DB
	cache *redis.Client
}

func NewKeywordService(db *gorm.DB, cache *redis.Client) *KeywordService {
	return &KeywordService{db: db, cache: cache}
}

// ListActive returns active keywords ordered by keyword ascending. The stable
// order keeps scan and sanitize results deterministic.
func (s *KeywordService) ListActive() ([]models.ForbiddenKeyword, error) {
	if s.cache != nil {
		if raw, err := s.cache.Get(context.Background(), activeKeywordsCacheKey).Bytes(); err == nil {
			var keywords []models.ForbiddenKeyword
			if err := json.Unmarshal(raw, &keywords); err == nil {
				return keywords, nil
			}
		}
	}

	var keywords []models.ForbiddenKeyword
	if err := s.db.Where("is_active = ?", true).Order("keyword ASC").Find(&keywords).Error; err != nil {
		return nil, fmt.Errorf("failed to load active keywords: %w", err)
	}

	if s.cache != nil {
		if raw, err := json.Marshal(keywords); err == nil {
			s.cache.Set(context.Background(), activeKeywordsCacheKey, raw, activeKeywordsCacheTTL)
		}
	}
	return keywords, nil
}

func (s *KeywordService) List(page, pageSize int) ([]models.ForbiddenKeyword, int64, error) {
	var keywords []models.ForbiddenKeyword
	var total int64

	query := s.db.Model(&models.ForbiddenKeyword{})
	query.Count(&total)

	err := query.Order("keyword ASC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&keywords).Error
	if err != nil {
		return nil, 0, err
	}
	return keywords, total, nil
}

func (s *KeywordService) Create(req *dto.CreateKeywordRequest) (*models.ForbiddenKeyword, error) {
	keyword := strings.TrimSpace(req.Keyword)
	if err := s.checkUnique(keyword, uuid.Nil); err != nil {
		return nil, err
	}

	kw := models.ForbiddenKeyword{
		ID:          uuid.New(),
		Keyword:     keyword,
		Replacement: req.Replacement,
		Severity:    req.Severity,
		IsActive:    true,
	}
	if req.IsActive != nil {
		kw.IsActive = *req.IsActive
	}

	if err := s.db.Create(&kw).Error; err != nil {
		return nil, fmt.Errorf("failed to create keyword: %w", err)
	}
	s.invalidateCache()
	return &kw, nil
}

func (s *KeywordService) Update(id uuid.UUID, req *dto.UpdateKeywordRequest) (*models.ForbiddenKeyword, error) {
	var kw models.ForbiddenKeyword
	if err := s.db.First(&kw, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrKeywordNotFound
		}
		return nil, err
	}

	keyword := strings.TrimSpace(req.Keyword)
	if err := s.checkUnique(keyword, id); err != nil {
		return nil, err
	}

	kw.Keyword = keyword
	kw.Replacement = req.Replacement
	kw.Severity = req.Severity
	if req.IsActive != nil {
		kw.IsActive = *req.IsActive
	}

	if err := s.db.Save(&kw).Error; err != nil {
		return nil, fmt.Errorf("failed to update keyword: %w", err)
	}
	s.invalidateCache()
	return &kw, nil
}

func (s *KeywordService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.ForbiddenKeyword{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrKeywordNotFound
	}
	s.invalidateCache()
	return nil
}

// checkUnique enforces keyword uniqueness across active and inactive entries.
// excludeID allows an update to keep its own keyword.
func (s *KeywordService) checkUnique(keyword string, excludeID uuid.UUID) error {
	var count int64
	query := s.db.Model(&models.ForbiddenKeyword{}).Where("LOWER(keyword) = LOWER(?)", keyword)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateKeyword
	}
	return nil
}

func (s *KeywordService) invalidateCache() {
	if s.cache != nil {
		s.cache.Del(context.Background(), activeKeywordsCacheKey)
	}
}
