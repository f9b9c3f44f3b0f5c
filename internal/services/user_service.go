package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rakapradana/kosthub-backend/internal/dto"
	"github.com/rakapradana/kosthub-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrSelfDelete       = errors.New("cannot delete your own account")
	ErrKycNotSubmitted  = errors.New("user has no pending verification")
	ErrKycNotesRequired = errors.New("rejection notes are required")
)

// UserService handles admin-side user management and the KYC verification
// queue. Owners submit an identity document elsewhere; admins approve or
// reject the pending submissions here.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) List(role string, page, pageSize int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	query := s.db.Model(&models.User{})
	if role != "" {
		query = query.Where("role = ?", role)
	}
	query.Count(&total)

	err := query.Order("created_at DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (s *UserService) Get(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Create(req *dto.CreateUserRequest) (*models.User, error) {
	var existing models.User
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:                 uuid.New(),
		Name:               req.Name,
		Email:              req.Email,
		Password:           string(hash),
		Role:               req.Role,
		VerificationStatus: models.VerificationUnverified,
		IDCardPath:         req.IDCardPath,
		VerificationNotes:  req.VerificationNotes,
	}
	if req.VerificationStatus != "" {
		user.VerificationStatus = req.VerificationStatus
	}
	if req.Permissions != nil {
		perms, err := marshalPermissions(req.Permissions)
		if err != nil {
			return nil, err
		}
		user.Permissions = perms
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

func (s *UserService) Update(id uuid.UUID, req *dto.UpdateUserRequest) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if req.Email != user.Email {
		var existing models.User
		if err := s.db.Where("email = ? AND id <> ?", req.Email, id).First(&existing).Error; err == nil {
			return nil, ErrEmailTaken
		}
	}

	user.Name = req.Name
	user.Email = req.Email
	user.Role = req.Role
	user.VerificationStatus = req.VerificationStatus
	user.IDCardPath = req.IDCardPath
	user.VerificationNotes = req.VerificationNotes

	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hash)
	}
	if req.Permissions != nil {
		perms, err := marshalPermissions(req.Permissions)
		if err != nil {
			return nil, err
		}
		user.Permissions = perms
	}

	if err := s.db.Save(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return &user, nil
}

// Delete soft-deletes a user. Admins cannot delete themselves; revoking your
// own access mid-session leaves the API without an operator.
func (s *UserService) Delete(id uuid.UUID, actorID uuid.UUID) error {
	if id == actorID {
		return ErrSelfDelete
	}

	result := s.db.Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// ListPendingKyc returns users awaiting identity verification, oldest first so
// the queue drains in submission order.
func (s *UserService) ListPendingKyc(page, pageSize int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	query := s.db.Model(&models.User{}).Where("verification_status = ?", models.VerificationPending)
	query.Count(&total)

	err := query.Order("updated_at ASC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (s *UserService) ApproveKyc(id uuid.UUID, notes *string, adminID uuid.UUID) (*models.User, error) {
	return s.decideKyc(id, models.VerificationVerified, notes, adminID)
}

func (s *UserService) RejectKyc(id uuid.UUID, notes string, adminID uuid.UUID) (*models.User, error) {
	if notes == "" {
		return nil, ErrKycNotesRequired
	}
	return s.decideKyc(id, models.VerificationUnverified, &notes, adminID)
}

func (s *UserService) decideKyc(id uuid.UUID, status string, notes *string, adminID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if user.VerificationStatus != models.VerificationPending {
		return nil, ErrKycNotSubmitted
	}

	updates := map[string]interface{}{
		"verification_status": status,
		"verification_notes":  notes,
		"verified_by":         adminID,
	}
	if status == models.VerificationVerified {
		updates["verified_at"] = time.Now()
	} else {
		updates["verified_at"] = nil
	}

	if err := s.db.Model(&user).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update verification status: %w", err)
	}
	return s.Get(id)
}

func marshalPermissions(perms []string) (datatypes.JSON, error) {
	raw, err := json.Marshal(perms)
	if err != nil {
		return nil, fmt.Errorf("failed to encode permissions: %w", err)
	}
	return datatypes.JSON(raw), nil
}
