package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// ForbiddenKeyword is one rule in the moderation rule set. Keywords are
// matched case-insensitively as substrings. A nil replacement means the
// sanitizer masks the keyword with asterisks instead.
type ForbiddenKeyword struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Keyword     string    `gorm:"not null;size:255;uniqueIndex" json:"keyword"`
	Replacement *string   `gorm:"size:255" json:"replacement,omitempty"`
	Severity    string    `gorm:"size:10;not null;default:'medium'" json:"severity"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
