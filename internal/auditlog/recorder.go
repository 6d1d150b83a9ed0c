package auditlog

import (
	"encoding/json"

	"assetdesk/pkg/apperrors"
	"assetdesk/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

// Recorder produces the immutable mutation trail. It never fails on
// business-logic grounds; a storage failure aborts the caller's transaction.
type Recorder struct {
	repo *AuditLogRepository
}

func NewRecorder(repo *AuditLogRepository) *Recorder {
	return &Recorder{repo: repo}
}

// Record appends one audit row within tx. oldValues/newValues may be nil;
// row identity (table, record id) is always present.
func (r *Recorder) Record(tx *goqu.TxDatabase, tableName string, recordID int, action string, oldValues, newValues map[string]interface{}, actorID int) error {
	entry := models.AuditLog{
		TableName: tableName,
		RecordID:  recordID,
		Action:    action,
		ChangedBy: &actorID,
	}

	if oldValues != nil {
		raw, err := json.Marshal(oldValues)
		if err != nil {
			return apperrors.Storage("failed to marshal audit old values", err)
		}
		entry.OldValuesRaw = raw
	}
	if newValues != nil {
		raw, err := json.Marshal(newValues)
		if err != nil {
			return apperrors.Storage("failed to marshal audit new values", err)
		}
		entry.NewValuesRaw = raw
	}

	return r.repo.PersistLogTx(tx, entry)
}
