package dto

import "github.com/google/uuid"

type CreateReportRequest struct {
	FlaggableType string    `json:"flaggable_type" validate:"required,oneof=property"`
	FlaggableID   uuid.UUID `json:"flaggable_id" validate:"required"`
	Reason        string    `json:"reason" validate:"required,max=500"`
	Details       *string   `json:"details,omitempty"`
}

type ReviewFlagRequest struct {
	Status     string  `json:"status" validate:"required,oneof=reviewed rejected actioned"`
	AdminNotes *string `json:"admin_notes,omitempty" validate:"omitempty,max=500"`
}

type SanitizeRequest struct {
	Text string `json:"text" validate:"required"`
}

type SanitizeResponse struct {
	Sanitized string `json:"sanitized"`
}

type CreateKeywordRequest struct {
	Keyword     string  `json:"keyword" validate:"required,max=255"`
	Replacement *string `json:"replacement,omitempty" validate:"omitempty,max=255"`
	Severity    string  `json:"severity" validate:"required,oneof=low medium high"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

type UpdateKeywordRequest struct {
	Keyword     string  `json:"keyword" validate:"required,max=255"`
	Replacement *string `json:"replacement,omitempty" validate:"omitempty,max=255"`
	Severity    string  `json:"severity" validate:"required,oneof=low medium high"`
	IsActive    *bool   `json:"is_active,omitempty"`
}
