// file: internals/features/users/web_users/dto/web_user_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"steam_backend/internals/constants"
	authModel "steam_backend/internals/features/users/auth/model"
	"steam_backend/internals/features/users/auth/repository"
	authService "steam_backend/internals/features/users/auth/service"
)

// Root accounts are provisioned out of band, so only these roles can be assigned here.
type CreateWebUserRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=128"`
	FullName string `json:"full_name" validate:"required,min=2,max=150"`
	Role     string `json:"role" validate:"required,oneof=manager teacher"`
}

func (r *CreateWebUserRequest) ToModel() (*authModel.WebUserModel, error) {
	hash, err := authService.HashPassword(r.Password)
	if err != nil {
		return nil, err
	}
	return &authModel.WebUserModel{
		WebUserEmail:        repository.NormalizeEmail(r.Email),
		WebUserPasswordHash: hash,
		WebUserFullName:     strings.TrimSpace(r.FullName),
		WebUserRole:         r.Role,
		WebUserIsActive:     true,
	}, nil
}

type UpdateWebUserRequest struct {
	Password *string `json:"password" validate:"omitempty,min=8,max=128"`
	FullName *string `json:"full_name" validate:"omitempty,min=2,max=150"`
	Role     *string `json:"role" validate:"omitempty,oneof=manager teacher"`
	IsActive *bool   `json:"is_active"`
}

// Apply refuses to touch root accounts.
func (r *UpdateWebUserRequest) Apply(m *authModel.WebUserModel) error {
	if m.WebUserRole == constants.RoleRoot {
		return fiber.NewError(fiber.StatusForbidden, "root accounts cannot be modified")
	}
	if r.Password != nil {
		hash, err := authService.HashPassword(*r.Password)
		if err != nil {
			return err
		}
		m.WebUserPasswordHash = hash
	}
	if r.FullName != nil {
		m.WebUserFullName = strings.TrimSpace(*r.FullName)
	}
	if r.Role != nil {
		m.WebUserRole = *r.Role
	}
	if r.IsActive != nil {
		m.WebUserIsActive = *r.IsActive
	}
	return nil
}

type WebUserResponse struct {
	WebUserID          uuid.UUID  `json:"web_user_id"`
	WebUserEmail       string     `json:"web_user_email"`
	WebUserFullName    string     `json:"web_user_full_name"`
	WebUserRole        string     `json:"web_user_role"`
	WebUserIsActive    bool       `json:"web_user_is_active"`
	WebUserLastLoginAt *time.Time `json:"web_user_last_login_at,omitempty"`
	WebUserCreatedAt   time.Time  `json:"web_user_created_at"`
}

func FromModel(m authModel.WebUserModel) WebUserResponse {
	return WebUserResponse{
		WebUserID:          m.WebUserID,
		WebUserEmail:       m.WebUserEmail,
		WebUserFullName:    m.WebUserFullName,
		WebUserRole:        m.WebUserRole,
		WebUserIsActive:    m.WebUserIsActive,
		WebUserLastLoginAt: m.WebUserLastLoginAt,
		WebUserCreatedAt:   m.WebUserCreatedAt,
	}
}

func FromModels(rows []authModel.WebUserModel) []WebUserResponse {
	out := make([]WebUserResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}
