package dto

import "github.com/google/uuid"

type CategoryRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Type        string  `json:"type" validate:"required,oneof=room_type facility_type location_zone"`
	Description *string `json:"description,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

type FacilityRequest struct {
	CategoryID  *uuid.UUID `json:"category_id,omitempty"`
	Name        string     `json:"name" validate:"required,max=255"`
	Description *string    `json:"description,omitempty"`
	Icon        *string    `json:"icon,omitempty" validate:"omitempty,max=50"`
	IsActive    *bool      `json:"is_active,omitempty"`
}
