package models

import "time"

type LicenseType string

const (
	LicenseVolume       LicenseType = "volume"
	LicenseSingle       LicenseType = "single"
	LicenseSubscription LicenseType = "subscription"
	LicenseFree         LicenseType = "free"
)

func (t LicenseType) IsValid() bool {
	switch t {
	case LicenseVolume, LicenseSingle, LicenseSubscription, LicenseFree:
		return true
	default:
		return false
	}
}

type SoftwareLicense struct {
	ID             int         `json:"id" db:"id"`
	Name           string      `json:"name" db:"name"`
	Key            *string     `json:"key,omitempty" db:"key"`
	Type           LicenseType `json:"type" db:"type"`
	SeatsTotal     int         `json:"seats_total" db:"seats_total"`
	SeatsUsed      int         `json:"seats_used" db:"seats_used"`
	ExpirationDate *time.Time  `json:"expiration_date,omitempty" db:"expiration_date"`
	Cost           float64     `json:"cost" db:"cost"`
	Notes          *string     `json:"notes,omitempty" db:"notes"`
	SupplierID     *int        `json:"supplier_id,omitempty" db:"supplier_id"`
	CreatedAt      time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at" db:"updated_at"`
	DeletedAt      *time.Time  `json:"deleted_at,omitempty" db:"deleted_at"`
	CreatedBy      *int        `json:"created_by,omitempty" db:"created_by"`
	UpdatedBy      *int        `json:"updated_by,omitempty" db:"updated_by"`
}

type LicenseAssignment struct {
	ID           int        `json:"id" db:"id"`
	LicenseID    int        `json:"license_id" db:"license_id"`
	AssetID      *int       `json:"asset_id,omitempty" db:"asset_id"`
	UserID       *int       `json:"user_id,omitempty" db:"user_id"`
	AssignedDate time.Time  `json:"assigned_date" db:"assigned_date"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
	CreatedBy    *int       `json:"created_by,omitempty" db:"created_by"`
	UpdatedBy    *int       `json:"updated_by,omitempty" db:"updated_by"`
}

type CreateLicenseRequest struct {
	Name           string  `json:"name" binding:"required"`
	Key            *string `json:"key"`
	Type           string  `json:"type" binding:"required"`
	SeatsTotal     *int    `json:"seats_total"`
	ExpirationDate *string `json:"expiration_date"`
	Cost           *float64 `json:"cost"`
	Notes          *string `json:"notes"`
	SupplierID     *int    `json:"supplier_id"`
}

type UpdateLicenseRequest struct {
	Name           *string  `json:"name"`
	Key            *string  `json:"key"`
	Type           *string  `json:"type"`
	SeatsTotal     *int     `json:"seats_total"`
	ExpirationDate *string  `json:"expiration_date"`
	Cost           *float64 `json:"cost"`
	Notes          *string  `json:"notes"`
	SupplierID     *int     `json:"supplier_id"`
}

// AssignLicenseRequest targets exactly one of asset_id / user_id.
type AssignLicenseRequest struct {
	LicenseID int  `json:"license_id" binding:"required"`
	AssetID   *int `json:"asset_id"`
	UserID    *int `json:"user_id"`
}
