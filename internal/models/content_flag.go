package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	FlagStatusPending  = "pending"
	FlagStatusReviewed = "reviewed"
	FlagStatusRejected = "rejected"
	FlagStatusActioned = "actioned"
)

// FlaggableType enumerates the entity kinds a ContentFlag can point at.
// Every consumer must switch exhaustively over these constants so that adding
// a kind surfaces every place that needs handling.
type FlaggableType string

const (
	FlaggableProperty FlaggableType = "property"
)

// FlaggableRef identifies one flaggable entity.
type FlaggableRef struct {
	Type FlaggableType
	ID   uuid.UUID
}

func PropertyRef(id uuid.UUID) FlaggableRef {
	return FlaggableRef{Type: FlaggableProperty, ID: id}
}

// ContentFlag is one entry in the moderation ledger. ReportedBy is nil for
// flags raised automatically by the keyword scanner. ReviewedBy and
// ReviewedAt are set together on review and only then.
type ContentFlag struct {
	ID            uuid.UUID     `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FlaggableType FlaggableType `gorm:"size:30;not null;index:idx_content_flags_flaggable" json:"flaggable_type"`
	FlaggableID   uuid.UUID     `gorm:"type:uuid;not null;index:idx_content_flags_flaggable" json:"flaggable_id"`
	ReportedBy    *uuid.UUID    `gorm:"type:uuid;index" json:"reported_by,omitempty"`
	Reason        string        `gorm:"not null;size:500" json:"reason"`
	Details       *string       `gorm:"type:text" json:"details,omitempty"`
	Status        string        `gorm:"size:20;not null;default:'pending';index" json:"status"`
	AdminNotes    *string       `gorm:"size:500" json:"admin_notes,omitempty"`
	ReviewedBy    *uuid.UUID    `gorm:"type:uuid" json:"reviewed_by,omitempty"`
	ReviewedAt    *time.Time    `json:"reviewed_at,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	Reporter      *User         `gorm:"foreignKey:ReportedBy" json:"reporter,omitempty"`
	Reviewer      *User         `gorm:"foreignKey:ReviewedBy" json:"reviewer,omitempty"`
}

func (f *ContentFlag) Ref() FlaggableRef {
	return FlaggableRef{Type: f.FlaggableType, ID: f.FlaggableID}
}
