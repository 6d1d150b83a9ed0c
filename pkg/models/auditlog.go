package models

import (
	"encoding/json"
	"time"
)

const (
	AuditInsert = "INSERT"
	AuditUpdate = "UPDATE"
	AuditDelete = "DELETE"
)

// AuditLog is one append-only row in the mutation trail. Rows are never
// updated or deleted.
type AuditLog struct {
	ID           int64                  `json:"id" db:"id"`
	TableName    string                 `json:"table_name" db:"table_name"`
	RecordID     int                    `json:"record_id" db:"record_id"`
	Action       string                 `json:"action" db:"action"`
	OldValuesRaw []byte                 `json:"-" db:"old_values"`
	NewValuesRaw []byte                 `json:"-" db:"new_values"`
	OldValues    map[string]interface{} `json:"old_values" db:"-"`
	NewValues    map[string]interface{} `json:"new_values" db:"-"`
	ChangedBy    *int                   `json:"changed_by,omitempty" db:"changed_by"`
	ChangedAt    time.Time              `json:"changed_at" db:"changed_at"`
}

// LoadFromDB decodes the raw JSONB snapshots after a scan.
func (a *AuditLog) LoadFromDB() {
	if len(a.OldValuesRaw) > 0 {
		_ = json.Unmarshal(a.OldValuesRaw, &a.OldValues)
	}
	if len(a.NewValuesRaw) > 0 {
		_ = json.Unmarshal(a.NewValuesRaw, &a.NewValues)
	}
}

// AuditPage is one page of audit rows plus the total for UI pagination.
type AuditPage struct {
	Logs       []AuditLog `json:"logs"`
	Total      int        `json:"total"`
	Page       int        `json:"page"`
	TotalPages int        `json:"total_pages"`
}
