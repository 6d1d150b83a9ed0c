package models

import (
	"time"

	"assetdesk/pkg/roles"
)

type User struct {
	ID           int        `json:"id" db:"id"`
	Username     string     `json:"username" db:"username"`
	FullName     string     `json:"full_name" db:"full_name"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	Role         roles.Role `json:"role" db:"role"`
	Department   *string    `json:"department,omitempty" db:"department"`
	Active       bool       `json:"active" db:"active"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
	CreatedBy    *int       `json:"created_by,omitempty" db:"created_by"`
	UpdatedBy    *int       `json:"updated_by,omitempty" db:"updated_by"`
}

type CreateUserRequest struct {
	Username   string  `json:"username" binding:"required"`
	FullName   string  `json:"full_name" binding:"required"`
	Email      string  `json:"email" binding:"required,email"`
	Password   string  `json:"password" binding:"required,min=8"`
	Role       string  `json:"role" binding:"required"`
	Department *string `json:"department"`
}

type UpdateUserRequest struct {
	FullName   *string `json:"full_name"`
	Email      *string `json:"email"`
	Role       *string `json:"role"`
	Department *string `json:"department"`
	Active     *bool   `json:"active"`
}
