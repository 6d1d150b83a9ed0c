package models

import "time"

type Category struct {
	ID        int        `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	Active    bool       `json:"active" db:"active"`
	ParentID  *int       `json:"parent_id,omitempty" db:"parent_id"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
	CreatedBy *int       `json:"created_by,omitempty" db:"created_by"`
	UpdatedBy *int       `json:"updated_by,omitempty" db:"updated_by"`
}

type CreateCategoryRequest struct {
	Name     string `json:"name" binding:"required"`
	Active   *bool  `json:"active"`
	ParentID *int   `json:"parent_id"`
}

type UpdateCategoryRequest struct {
	Name     *string `json:"name"`
	Active   *bool   `json:"active"`
	ParentID *int    `json:"parent_id"`
}
