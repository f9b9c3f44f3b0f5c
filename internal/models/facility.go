package models

import (
	"time"

	"github.com/google/uuid"
)

// Facility is an amenity (wifi, laundry, parking...) attachable to many
// properties; it optionally belongs to a facility-type category.
type Facility struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CategoryID  *uuid.UUID `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Name        string     `gorm:"not null;size:255" json:"name"`
	Slug        string     `gorm:"not null;size:255;uniqueIndex" json:"slug"`
	Description *string    `gorm:"type:text" json:"description,omitempty"`
	Icon        *string    `gorm:"size:50" json:"icon,omitempty"`
	IsActive    bool       `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Category    *Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Properties  []Property `gorm:"many2many:property_facilities" json:"-"`
}
