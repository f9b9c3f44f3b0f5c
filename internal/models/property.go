package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PropertyStatusPending    = "pending"
	PropertyStatusApproved   = "approved"
	PropertyStatusRejected   = "rejected"
	PropertyStatusModeration = "moderation"
)

// Property is a kost listing. Status is the single source of truth for the
// approval state; rejection_reason is set if and only if status is rejected.
type Property struct {
	ID                 uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OwnerID            uuid.UUID      `gorm:"type:uuid;not null;index" json:"owner_id"`
	CategoryID         *uuid.UUID     `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Name               string         `gorm:"not null;size:255" json:"name"`
	Slug               string         `gorm:"not null;size:255;uniqueIndex" json:"slug"`
	Description        string         `gorm:"type:text;not null" json:"description"`
	Price              float64        `gorm:"not null" json:"price"`
	DepositAmount      *float64       `json:"deposit_amount,omitempty"`
	Address            string         `gorm:"not null;size:500" json:"address"`
	City               string         `gorm:"not null;size:100" json:"city"`
	State              string         `gorm:"size:100" json:"state,omitempty"`
	ZipCode            string         `gorm:"size:20" json:"zip_code,omitempty"`
	Capacity           int            `gorm:"not null;default:1" json:"capacity"`
	IsAvailable        bool           `gorm:"default:true" json:"is_available"`
	Status             string         `gorm:"size:20;default:'pending';index" json:"status"`
	IsFeatured         bool           `gorm:"default:false" json:"is_featured"`
	HasReportedContent bool           `gorm:"default:false" json:"has_reported_content"`
	RejectionReason    *string        `gorm:"size:500" json:"rejection_reason,omitempty"`
	ApprovedAt         *time.Time     `json:"approved_at,omitempty"`
	RejectedAt         *time.Time     `json:"rejected_at,omitempty"`
	LastModifiedBy     *uuid.UUID     `gorm:"type:uuid" json:"last_modified_by,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`

	Owner      User          `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Category   *Category     `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Facilities []Facility    `gorm:"many2many:property_facilities" json:"facilities,omitempty"`
	Flags      []ContentFlag `gorm:"polymorphicType:FlaggableType;polymorphicId:FlaggableID;polymorphicValue:property" json:"flags,omitempty"`
}
