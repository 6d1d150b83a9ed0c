package models

import "time"

type AssetStatus string

const (
	AssetActive      AssetStatus = "active"
	AssetStored      AssetStatus = "stored"
	AssetDisposed    AssetStatus = "disposed"
	AssetStolen      AssetStatus = "stolen"
	AssetUnderRepair AssetStatus = "under_repair"
)

func (s AssetStatus) IsValid() bool {
	switch s {
	case AssetActive, AssetStored, AssetDisposed, AssetStolen, AssetUnderRepair:
		return true
	default:
		return false
	}
}

type AssetCondition string

const (
	ConditionNew    AssetCondition = "new"
	ConditionGood   AssetCondition = "good"
	ConditionFair   AssetCondition = "fair"
	ConditionPoor   AssetCondition = "poor"
	ConditionBroken AssetCondition = "broken"
)

func (c AssetCondition) IsValid() bool {
	switch c {
	case ConditionNew, ConditionGood, ConditionFair, ConditionPoor, ConditionBroken:
		return true
	default:
		return false
	}
}

type Asset struct {
	ID                  int            `json:"id" db:"id"`
	AssetTag            string         `json:"asset_tag" db:"asset_tag"`
	SerialNumber        *string        `json:"serial_number,omitempty" db:"serial_number"`
	Name                string         `json:"name" db:"name"`
	Brand               *string        `json:"brand,omitempty" db:"brand"`
	Model               *string        `json:"model,omitempty" db:"model"`
	AcquisitionDate     time.Time      `json:"acquisition_date" db:"acquisition_date"`
	AcquisitionValue    float64        `json:"acquisition_value" db:"acquisition_value"`
	UsefulLifeMonths    int            `json:"useful_life_months" db:"useful_life_months"`
	ResidualValue       float64        `json:"residual_value" db:"residual_value"`
	Status              AssetStatus    `json:"status" db:"status"`
	Condition           AssetCondition `json:"condition" db:"condition"`
	WarrantyExpiryDate  *time.Time     `json:"warranty_expiry_date,omitempty" db:"warranty_expiry_date"`
	InvoiceNumber       *string        `json:"invoice_number,omitempty" db:"invoice_number"`
	PurchaseOrderNumber *string        `json:"purchase_order_number,omitempty" db:"purchase_order_number"`
	Notes               *string        `json:"notes,omitempty" db:"notes"`
	CategoryID          int            `json:"category_id" db:"category_id"`
	LocationID          int            `json:"location_id" db:"location_id"`
	SupplierID          *int           `json:"supplier_id,omitempty" db:"supplier_id"`
	CreatedAt           time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at" db:"updated_at"`
	DeletedAt           *time.Time     `json:"deleted_at,omitempty" db:"deleted_at"`
	CreatedBy           *int           `json:"created_by,omitempty" db:"created_by"`
	UpdatedBy           *int           `json:"updated_by,omitempty" db:"updated_by"`
}

// CreateAssetRequest is the allow-list of fields a caller may set at creation.
// Envelope fields (deleted_at, created_by, ...) are never bindable.
type CreateAssetRequest struct {
	AssetTag            string   `json:"asset_tag" binding:"required"`
	SerialNumber        *string  `json:"serial_number"`
	Name                string   `json:"name" binding:"required"`
	Brand               *string  `json:"brand"`
	Model               *string  `json:"model"`
	AcquisitionDate     string   `json:"acquisition_date" binding:"required"`
	AcquisitionValue    float64  `json:"acquisition_value" binding:"required"`
	UsefulLifeMonths    *int     `json:"useful_life_months"`
	ResidualValue       *float64 `json:"residual_value"`
	Status              string   `json:"status"`
	Condition           string   `json:"condition"`
	WarrantyExpiryDate  *string  `json:"warranty_expiry_date"`
	InvoiceNumber       *string  `json:"invoice_number"`
	PurchaseOrderNumber *string  `json:"purchase_order_number"`
	Notes               *string  `json:"notes"`
	CategoryID          int      `json:"category_id" binding:"required"`
	LocationID          int      `json:"location_id" binding:"required"`
	SupplierID          *int     `json:"supplier_id"`
}

type UpdateAssetRequest struct {
	SerialNumber        *string  `json:"serial_number"`
	Name                *string  `json:"name"`
	Brand               *string  `json:"brand"`
	Model               *string  `json:"model"`
	AcquisitionValue    *float64 `json:"acquisition_value"`
	UsefulLifeMonths    *int     `json:"useful_life_months"`
	ResidualValue       *float64 `json:"residual_value"`
	Status              *string  `json:"status"`
	Condition           *string  `json:"condition"`
	WarrantyExpiryDate  *string  `json:"warranty_expiry_date"`
	InvoiceNumber       *string  `json:"invoice_number"`
	PurchaseOrderNumber *string  `json:"purchase_order_number"`
	Notes               *string  `json:"notes"`
	CategoryID          *int     `json:"category_id"`
	LocationID          *int     `json:"location_id"`
	SupplierID          *int     `json:"supplier_id"`
}
