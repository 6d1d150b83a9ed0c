package models

import "time"

type AssetMove struct {
	ID             int        `json:"id" db:"id"`
	AssetID        int        `json:"asset_id" db:"asset_id"`
	FromLocationID *int       `json:"from_location_id,omitempty" db:"from_location_id"`
	ToLocationID   *int       `json:"to_location_id,omitempty" db:"to_location_id"`
	MovedBy        *int       `json:"moved_by,omitempty" db:"moved_by"`
	MoveDate       time.Time  `json:"move_date" db:"move_date"`
	Notes          *string    `json:"notes,omitempty" db:"notes"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt      *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
	CreatedBy      *int       `json:"created_by,omitempty" db:"created_by"`
	UpdatedBy      *int       `json:"updated_by,omitempty" db:"updated_by"`
}

type CreateMoveRequest struct {
	AssetID        int     `json:"asset_id" binding:"required"`
	FromLocationID *int    `json:"from_location_id"`
	ToLocationID   *int    `json:"to_location_id"`
	MoveDate       *string `json:"move_date"`
	Notes          *string `json:"notes"`
}
