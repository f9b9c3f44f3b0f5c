package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	RoleAdmin = "admin"
	RoleOwner = "owner"
	RoleUser  = "user"
)

const (
	VerificationUnverified = "unverified"
	VerificationPending    = "pending"
	VerificationVerified   = "verified"
)

// User covers admins, kost owners and tenants. KYC fields track the
// identity-document verification flow; the document itself lives in external
// file storage and only its path is stored here.
type User struct {
	ID                 uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name               string         `gorm:"not null;size:255" json:"name"`
	Email              string         `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password           string         `gorm:"not null" json:"-"`
	Role               string         `gorm:"size:20;default:'user';index" json:"role"`
	VerificationStatus string         `gorm:"size:20;default:'unverified';index" json:"verification_status"`
	IDCardPath         *string        `gorm:"size:500" json:"id_card_path,omitempty"`
	VerificationNotes  *string        `gorm:"type:text" json:"verification_notes,omitempty"`
	VerifiedAt         *time.Time     `json:"verified_at,omitempty"`
	VerifiedBy         *uuid.UUID     `gorm:"type:uuid" json:"verified_by,omitempty"`
	Permissions        datatypes.JSON `gorm:"type:jsonb" json:"permissions,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsVerified() bool {
	return u.VerificationStatus == VerificationVerified
}
