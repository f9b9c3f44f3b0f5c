package dto

type CreateUserRequest struct {
	Name               string   `json:"name" validate:"required,max=255"`
	Email              string   `json:"email" validate:"required,email"`
	Password           string   `json:"password" validate:"required,min=8"`
	Role               string   `json:"role" validate:"required,oneof=admin owner user"`
	VerificationStatus string   `json:"verification_status,omitempty" validate:"omitempty,oneof=unverified pending verified"`
	IDCardPath         *string  `json:"id_card_path,omitempty" validate:"omitempty,max=500"`
	VerificationNotes  *string  `json:"verification_notes,omitempty"`
	Permissions        []string `json:"permissions,omitempty"`
}

type UpdateUserRequest struct {
	Name               string   `json:"name" validate:"required,max=255"`
	Email              string   `json:"email" validate:"required,email"`
	Password           string   `json:"password,omitempty" validate:"omitempty,min=8"`
	Role               string   `json:"role" validate:"required,oneof=admin owner user"`
	VerificationStatus string   `json:"verification_status" validate:"required,oneof=unverified pending verified"`
	IDCardPath         *string  `json:"id_card_path,omitempty" validate:"omitempty,max=500"`
	VerificationNotes  *string  `json:"verification_notes,omitempty"`
	Permissions        []string `json:"permissions,omitempty"`
}

type KycDecisionRequest struct {
	Notes *string `json:"notes,omitempty"`
}

type KycRejectRequest struct {
	Notes string `json:"notes" validate:"required"`
}
