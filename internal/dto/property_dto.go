package dto

import "github.com/google/uuid"

type CreatePropertyRequest struct {
	OwnerID       uuid.UUID   `json:"owner_id" validate:"required"`
	CategoryID    *uuid.UUID  `json:"category_id,omitempty"`
	Name          string      `json:"name" validate:"required,max=255"`
	Description   string      `json:"description" validate:"required"`
	Price         float64     `json:"price" validate:"gte=0"`
	DepositAmount *float64    `json:"deposit_amount,omitempty" validate:"omitempty,gte=0"`
	Address       string      `json:"address" validate:"required,max=500"`
	City          string      `json:"city" validate:"required,max=100"`
	State         string      `json:"state,omitempty" validate:"max=100"`
	ZipCode       string      `json:"zip_code,omitempty" validate:"max=20"`
	Capacity      int         `json:"capacity" validate:"gte=1"`
	IsAvailable   *bool       `json:"is_available,omitempty"`
	FacilityIDs   []uuid.UUID `json:"facility_ids,omitempty"`
}

type UpdatePropertyRequest struct {
	CategoryID    *uuid.UUID  `json:"category_id,omitempty"`
	Name          string      `json:"name" validate:"required,max=255"`
	Description   string      `json:"description" validate:"required"`
	Price         float64     `json:"price" validate:"gte=0"`
	DepositAmount *float64    `json:"deposit_amount,omitempty" validate:"omitempty,gte=0"`
	Address       string      `json:"address" validate:"required,max=500"`
	City          string      `json:"city" validate:"required,max=100"`
	State         string      `json:"state,omitempty" validate:"max=100"`
	ZipCode       string      `json:"zip_code,omitempty" validate:"max=20"`
	Capacity      int         `json:"capacity" validate:"gte=1"`
	IsAvailable   *bool       `json:"is_available,omitempty"`
	FacilityIDs   []uuid.UUID `json:"facility_ids,omitempty"`
}

type RejectPropertyRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

type DashboardResponse struct {
	TotalUsers        int64 `json:"total_users"`
	TotalProperties   int64 `json:"total_properties"`
	PendingProperties int64 `json:"pending_properties"`
	PendingFlags      int64 `json:"pending_flags"`
	PendingKYC        int64 `json:"pending_kyc"`
}
