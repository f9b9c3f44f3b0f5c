package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	CategoryTypeRoom     = "room_type"
	CategoryTypeFacility = "facility_type"
	CategoryTypeZone     = "location_zone"
)

// Category is reference data grouping properties (room types) and facilities
// (facility types), plus location zones.
type Category struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string     `gorm:"not null;size:255" json:"name"`
	Slug        string     `gorm:"not null;size:255;uniqueIndex" json:"slug"`
	Type        string     `gorm:"size:30;not null;index" json:"type"`
	Description *string    `gorm:"type:text" json:"description,omitempty"`
	IsActive    bool       `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Properties  []Property `gorm:"foreignKey:CategoryID" json:"-"`
	Facilities  []Facility `gorm:"foreignKey:CategoryID" json:"-"`
}
