package models

import "time"

type Consumable struct {
	ID              int        `json:"id" db:"id"`
	Name            string     `json:"name" db:"name"`
	QuantityInStock int        `json:"quantity_in_stock" db:"quantity_in_stock"`
	MinQuantity     int        `json:"min_quantity" db:"min_quantity"`
	CategoryID      *int       `json:"category_id,omitempty" db:"category_id"`
	LocationID      *int       `json:"location_id,omitempty" db:"location_id"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt       *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
	CreatedBy       *int       `json:"created_by,omitempty" db:"created_by"`
	UpdatedBy       *int       `json:"updated_by,omitempty" db:"updated_by"`
}

type CreateConsumableRequest struct {
	Name            string `json:"name" binding:"required"`
	QuantityInStock *int   `json:"quantity_in_stock"`
	MinQuantity     *int   `json:"min_quantity"`
	CategoryID      *int   `json:"category_id"`
	LocationID      *int   `json:"location_id"`
}

type UpdateConsumableRequest struct {
	Name        *string `json:"name"`
	MinQuantity *int    `json:"min_quantity"`
	CategoryID  *int    `json:"category_id"`
	LocationID  *int    `json:"location_id"`
}

const (
	StockAdd      = "add"
	StockSubtract = "subtract"
)

// AdjustStockRequest is a relative stock change, never an absolute set.
type AdjustStockRequest struct {
	Quantity  int    `json:"quantity" binding:"required"`
	Operation string `json:"operation" binding:"required"`
}
