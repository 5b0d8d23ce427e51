package dto

import (
	"time"
)

type RegisterDTO struct {
	Username string `json:"username" binding:"required" validate:"min=3,max=20"`
	Email    string `json:"email" binding:"required" validate:"email,max=100"`
	Password string `json:"password" binding:"required" validate:"min=6,max=64"`
}

type CredentialDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserDTO struct {
	ID        uint64    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"join_date"`
}

// UserRoleOpDTO Promote/Demote 请求体
type UserRoleOpDTO struct {
	UserID uint64 `json:"user_id" binding:"required"`
}
