package models

import "time"

type Location struct {
	ID        int        `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	Code      string     `json:"code" db:"code"`
	Address   *string    `json:"address,omitempty" db:"address"`
	City      string     `json:"city" db:"city"`
	Country   string     `json:"country" db:"country"`
	Active    bool       `json:"active" db:"active"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
	CreatedBy *int       `json:"created_by,omitempty" db:"created_by"`
	UpdatedBy *int       `json:"updated_by,omitempty" db:"updated_by"`
}

type CreateLocationRequest struct {
	Name    string  `json:"name" binding:"required"`
	Code    string  `json:"code" binding:"required"`
	Address *string `json:"address"`
	City    string  `json:"city" binding:"required"`
	Country string  `json:"country" binding:"required"`
	Active  *bool   `json:"active"`
}

type UpdateLocationRequest struct {
	Name    *string `json:"name"`
	Code    *string `json:"code"`
	Address *string `json:"address"`
	City    *string `json:"city"`
	Country *string `json:"country"`
	Active  *bool   `json:"active"`
}
