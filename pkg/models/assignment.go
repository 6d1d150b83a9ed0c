package models

import "time"

type AssignmentStatus string

const (
	AssignmentActive   AssignmentStatus = "active"
	AssignmentReturned AssignmentStatus = "returned"
)

type AssetAssignment struct {
	ID                 int              `json:"id" db:"id"`
	AssetID            int              `json:"asset_id" db:"asset_id"`
	UserID             int              `json:"user_id" db:"user_id"`
	AssignedDate       time.Time        `json:"assigned_date" db:"assigned_date"`
	ExpectedReturnDate *time.Time       `json:"expected_return_date,omitempty" db:"expected_return_date"`
	ReturnDate         *time.Time       `json:"return_date,omitempty" db:"return_date"`
	Status             AssignmentStatus `json:"status" db:"status"`
	Notes              *string          `json:"notes,omitempty" db:"notes"`
	CreatedAt          time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at" db:"updated_at"`
	DeletedAt          *time.Time       `json:"deleted_at,omitempty" db:"deleted_at"`
	CreatedBy          *int             `json:"created_by,omitempty" db:"created_by"`
	UpdatedBy          *int             `json:"updated_by,omitempty" db:"updated_by"`
}

type AssignAssetRequest struct {
	AssetID            int     `json:"asset_id" binding:"required"`
	UserID             int     `json:"user_id" binding:"required"`
	AssignedDate       string  `json:"assigned_date" binding:"required"`
	ExpectedReturnDate *string `json:"expected_return_date"`
	Notes              *string `json:"notes"`
}

type ReturnAssetRequest struct {
	Notes *string `json:"notes"`
}
