package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rakapradana/kosthub-backend/internal/models"
	"gorm.io/gorm"
)

var ErrReportReasonRequired = errors.New("report reason is required")

// ModerationService scans text against the forbidden-keyword rule set and
// records findings in the content-flag ledger. Matching is case-insensitive
// and substring-based: a keyword like "bad" also matches inside "badminton".
// That is the documented behavior, not a word-boundary filter.
type ModerationService struct {
	db       *gorm.DB
	keywords *KeywordService
}

func NewModerationService(db *gorm.DB, keywords *KeywordService) *ModerationService {
	return &ModerationService{db: db, keywords: keywords}
}

// Scan checks text against the active keyword snapshot and appends one
// pending ContentFlag per matched keyword. reportedBy is nil for automatic
// scans. An empty keyword list yields no matches and no error. The returned
// slice follows keyword-store order.
func (s *ModerationService) Scan(ref models.FlaggableRef, text string, reportedBy *uuid.UUID) ([]models.ForbiddenKeyword, error) {
	keywords, err := s.keywords.ListActive()
	if err != nil {
		return nil, err
	}

	matched := matchKeywords(keywords, text)
	for _, kw := range matched {
		details := "Severity level: " + kw.Severity
		flag := models.ContentFlag{
			ID:            uuid.New(),
			FlaggableType: ref.Type,
			FlaggableID:   ref.ID,
			ReportedBy:    reportedBy,
			Reason:        "Forbidden keyword: " + kw.Keyword,
			Details:       &details,
			Status:        models.FlagStatusPending,
		}
		if err := s.db.Create(&flag).Error; err != nil {
			return matched, fmt.Errorf("failed to create content flag: %w", err)
		}
	}
	return matched, nil
}

// Sanitize replaces every occurrence of each active keyword with its
// replacement, or with a run of asterisks matching the keyword length when no
// replacement is configured. Replacements are applied in keyword-store order,
// so later keywords operate on the already-sanitized text. Sanitize never
// writes to the ledger.
func (s *ModerationService) Sanitize(text string) (string, error) {
	keywords, err := s.keywords.ListActive()
	if err != nil {
		return "", err
	}
	return sanitizeText(keywords, text), nil
}

// Report records a manual content report, bypassing keyword scanning. The
// flag insert and the move of the target into the moderation bucket commit
// together; a report never leaves one without the other.
func (s *ModerationService) Report(ref models.FlaggableRef, reportedBy uuid.UUID, reason string, details *string) (*models.ContentFlag, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, ErrReportReasonRequired
	}

	flag := models.ContentFlag{
		ID:            uuid.New(),
		FlaggableType: ref.Type,
		FlaggableID:   ref.ID,
		ReportedBy:    &reportedBy,
		Reason:        reason,
		Details:       details,
		Status:        models.FlagStatusPending,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := markFlaggable(tx, ref); err != nil {
			return err
		}
		if err := tx.Create(&flag).Error; err != nil {
			return fmt.Errorf("failed to create content flag: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &flag, nil
}

// markFlaggable flags the reported entity for moderation review. The switch
// must stay exhaustive over models.FlaggableType.
func markFlaggable(tx *gorm.DB, ref models.FlaggableRef) error {
	switch ref.Type {
	case models.FlaggableProperty:
		result := tx.Model(&models.Property{}).
			Where("id = ?", ref.ID).
			Updates(map[string]interface{}{
				"status":               models.PropertyStatusModeration,
				"has_reported_content": true,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrPropertyNotFound
		}
		return nil
	default:
		return fmt.Errorf("no report handling for flaggable type %q", ref.Type)
	}
}

// HasHighSeverity reports whether any matched keyword carries the high tier.
func HasHighSeverity(keywords []models.ForbiddenKeyword) bool {
	for _, kw := range keywords {
		if kw.Severity == models.SeverityHigh {
			return true
		}
	}
	return false
}

// matchKeywords returns the keywords whose text occurs in content,
// case-insensitively, at most once per keyword per scan.
func matchKeywords(keywords []models.ForbiddenKeyword, content string) []models.ForbiddenKeyword {
	lower := strings.ToLower(content)
	var matched []models.ForbiddenKeyword
	for _, kw := range keywords {
		if kw.Keyword == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(kw.Keyword)) {
			matched = append(matched, kw)
		}
	}
	return matched
}

func sanitizeText(keywords []models.ForbiddenKeyword, content string) string {
	for _, kw := range keywords {
		if kw.Keyword == "" {
			continue
		}
		replacement := strings.Repeat("*", utf8.RuneCountInString(kw.Keyword))
		if kw.Replacement != nil {
			replacement = *kw.Replacement
		}
		content = replaceFold(content, kw.Keyword, replacement)
	}
	return content
}

// replaceFold replaces every case-insensitive occurrence of old in s. The
// lowered copy used for searching can differ in byte length from s (İ lowers
// to a shorter encoding), so lowered byte positions are mapped back to
// original offsets before splicing.
func replaceFold(s, old, new string) string {
	target := strings.ToLower(old)
	if target == "" {
		return s
	}

	var lower strings.Builder
	lower.Grow(len(s))
	offsets := make([]int, 0, len(s)+1)
	for i, r := range s {
		lr := unicode.ToLower(r)
		for j := 0; j < utf8.RuneLen(lr); j++ {
			offsets = append(offsets, i)
		}
		lower.WriteRune(lr)
	}
	lowered := lower.String()
	offsets = append(offsets, len(s))

	var b strings.Builder
	prev, li := 0, 0
	for {
		idx := strings.Index(lowered[li:], target)
		if idx < 0 {
			b.WriteString(s[prev:])
			return b.String()
		}
		b.WriteString(s[prev:offsets[li+idx]])
		b.WriteString(new)
		li += idx + len(target)
		prev = offsets[li]
	}
}
