// file: internals/features/users/users/dto/user_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolku_backend/internals/features/users/users/model"
)

type RegisterRequest struct {
	UserFullName string `json:"user_full_name" validate:"required,min=3,max=120"`
	UserEmail    string `json:"user_email" validate:"required,email,max=160"`
	UserPassword string `json:"user_password" validate:"required,min=8,max=72"`

	// admin | staff | parent | student (divalidasi di controller terhadap constants)
	UserRole string `json:"user_role" validate:"required"`
}

type LoginRequest struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

type UserResponse struct {
	UserID       uuid.UUID `json:"user_id"`
	UserFullName string    `json:"user_full_name"`
	UserEmail    string    `json:"user_email"`
	UserRole     string    `json:"user_role"`
	UserIsActive bool      `json:"user_is_active"`
	UserCreatedAt time.Time `json:"user_created_at"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

func ToUserResponse(m model.User) UserResponse {
	return UserResponse{
		UserID:        m.UserID,
		UserFullName:  m.UserFullName,
		UserEmail:     m.UserEmail,
		UserRole:      m.UserRole,
		UserIsActive:  m.UserIsActive,
		UserCreatedAt: m.UserCreatedAt,
	}
}
