package models

import "time"

type MaintenanceType string

const (
	MaintenancePreventive MaintenanceType = "preventive"
	MaintenanceCorrective MaintenanceType = "corrective"
	MaintenanceUpgrade    MaintenanceType = "upgrade"
)

func (t MaintenanceType) IsValid() bool {
	switch t {
	case MaintenancePreventive, MaintenanceCorrective, MaintenanceUpgrade:
		return true
	default:
		return false
	}
}

type MaintenanceStatus string

const (
	MaintenanceScheduled  MaintenanceStatus = "scheduled"
	MaintenanceInProgress MaintenanceStatus = "in_progress"
	MaintenanceCompleted  MaintenanceStatus = "completed"
	MaintenanceCancelled  MaintenanceStatus = "cancelled"
)

func (s MaintenanceStatus) IsValid() bool {
	switch s {
	case MaintenanceScheduled, MaintenanceInProgress, MaintenanceCompleted, MaintenanceCancelled:
		return true
	default:
		return false
	}
}

type MaintenanceOrder struct {
	ID           int               `json:"id" db:"id"`
	AssetID      int               `json:"asset_id" db:"asset_id"`
	Type         MaintenanceType   `json:"type" db:"type"`
	Status       MaintenanceStatus `json:"status" db:"status"`
	PlannedDate  time.Time         `json:"planned_date" db:"planned_date"`
	StartDate    *time.Time        `json:"start_date,omitempty" db:"start_date"`
	EndDate      *time.Time        `json:"end_date,omitempty" db:"end_date"`
	CostParts    float64           `json:"cost_parts" db:"cost_parts"`
	CostLabor    float64           `json:"cost_labor" db:"cost_labor"`
	TechnicianID *int              `json:"technician_id,omitempty" db:"technician_id"`
	Notes        *string           `json:"notes,omitempty" db:"notes"`
	CreatedAt    time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at" db:"updated_at"`
	DeletedAt    *time.Time        `json:"deleted_at,omitempty" db:"deleted_at"`
	CreatedBy    *int              `json:"created_by,omitempty" db:"created_by"`
	UpdatedBy    *int              `json:"updated_by,omitempty" db:"updated_by"`
}

type CreateMaintenanceRequest struct {
	AssetID      int      `json:"asset_id" binding:"required"`
	Type         string   `json:"type" binding:"required"`
	Status       *string  `json:"status"`
	PlannedDate  string   `json:"planned_date" binding:"required"`
	StartDate    *string  `json:"start_date"`
	EndDate      *string  `json:"end_date"`
	CostParts    *float64 `json:"cost_parts"`
	CostLabor    *float64 `json:"cost_labor"`
	TechnicianID *int     `json:"technician_id"`
	Notes        *string  `json:"notes"`
}

type UpdateMaintenanceRequest struct {
	Type         *string  `json:"type"`
	Status       *string  `json:"status"`
	PlannedDate  *string  `json:"planned_date"`
	StartDate    *string  `json:"start_date"`
	EndDate      *string  `json:"end_date"`
	CostParts    *float64 `json:"cost_parts"`
	CostLabor    *float64 `json:"cost_labor"`
	TechnicianID *int     `json:"technician_id"`
	Notes        *string  `json:"notes"`
}
