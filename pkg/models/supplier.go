package models

import "time"

type Supplier struct {
	ID            int        `json:"id" db:"id"`
	Name          string     `json:"name" db:"name"`
	TaxID         *string    `json:"tax_id,omitempty" db:"tax_id"`
	Email         *string    `json:"email,omitempty" db:"email"`
	Phone         *string    `json:"phone,omitempty" db:"phone"`
	ContactPerson *string    `json:"contact_person,omitempty" db:"contact_person"`
	Address       *string    `json:"address,omitempty" db:"address"`
	Website       *string    `json:"website,omitempty" db:"website"`
	SupportPhone  *string    `json:"support_phone,omitempty" db:"support_phone"`
	SupportEmail  *string    `json:"support_email,omitempty" db:"support_email"`
	Active        bool       `json:"active" db:"active"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
	CreatedBy     *int       `json:"created_by,omitempty" db:"created_by"`
	UpdatedBy     *int       `json:"updated_by,omitempty" db:"updated_by"`
}

type CreateSupplierRequest struct {
	Name          string  `json:"name" binding:"required"`
	TaxID         *string `json:"tax_id"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	ContactPerson *string `json:"contact_person"`
	Address       *string `json:"address"`
	Website       *string `json:"website"`
	SupportPhone  *string `json:"support_phone"`
	SupportEmail  *string `json:"support_email"`
	Active        *bool   `json:"active"`
}

type UpdateSupplierRequest struct {
	Name          *string `json:"name"`
	TaxID         *string `json:"tax_id"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	ContactPerson *string `json:"contact_person"`
	Address       *string `json:"address"`
	Website       *string `json:"website"`
	SupportPhone  *string `json:"support_phone"`
	SupportEmail  *string `json:"support_email"`
	Active        *bool   `json:"active"`
}
