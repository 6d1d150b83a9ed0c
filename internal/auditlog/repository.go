package auditlog

import (
	"fmt"

	"assetdesk/internal/repository"
	"assetdesk/pkg/apperrors"
	"assetdesk/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type AuditLogRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *AuditLogRepository {
	return &AuditLogRepository{repository: r}
}

// PersistLogTx appends one audit row inside the caller's transaction, so an
// entity write and its trail commit or roll back together.
func (r *AuditLogRepository) PersistLogTx(tx *goqu.TxDatabase, entry models.AuditLog) error {
	record := goqu.Record{
		"table_name": entry.TableName,
		"record_id":  entry.RecordID,
		"action":     entry.Action,
		"changed_by": entry.ChangedBy,
	}
	if len(entry.OldValuesRaw) > 0 {
		record["old_values"] = entry.OldValuesRaw
	}
	if len(entry.NewValuesRaw) > 0 {
		record["new_values"] = entry.NewValuesRaw
	}

	query := tx.Insert("audit_logs").Rows(record)

	if _, err := query.Executor().Exec(); err != nil {
		return apperrors.Storage("failed to insert audit log", err)
	}

	return nil
}

// ListByTable returns one changed_at-descending page plus the total count.
func (r *AuditLogRepository) ListByTable(tableName string, page, pageSize int) (*models.AuditPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}

	base := r.repository.GoquDBWrapper.From("audit_logs")
	if tableName != "" {
		base = base.Where(goqu.Ex{"table_name": tableName})
	}

	var total int
	if _, err := base.Select(goqu.COUNT("*")).Executor().ScanVal(&total); err != nil {
		return nil, fmt.Errorf("failed to count audit logs: %w", err)
	}

	query := base.
		Select("id", "table_name", "record_id", "action", "old_values", "new_values", "changed_by", "changed_at").
		Order(goqu.I("changed_at").Desc()).
		Limit(uint(pageSize)).
		Offset(uint((page - 1) * pageSize))

	var logs []models.AuditLog
	if err := query.Executor().ScanStructs(&logs); err != nil {
		return nil, fmt.Errorf("failed to select audit logs: %w", err)
	}

	for i := range logs {
		logs[i].LoadFromDB()
	}

	totalPages := (total + pageSize - 1) / pageSize
	return &models.AuditPage{
		Logs:       logs,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

// ListByRecord returns the full history of one logical record, newest first.
func (r *AuditLogRepository) ListByRecord(tableName string, recordID int) ([]models.AuditLog, error) {
	query := r.repository.GoquDBWrapper.
		From("audit_logs").
		Select("id", "table_name", "record_id", "action", "old_values", "new_values", "changed_by", "changed_at").
		Where(goqu.Ex{
			"table_name": tableName,
			"record_id":  recordID,
		}).
		Order(goqu.I("changed_at").Desc())

	var logs []models.AuditLog
	if err := query.Executor().ScanStructs(&logs); err != nil {
		return nil, fmt.Errorf("failed to select audit logs for record: %w", err)
	}

	for i := range logs {
		logs[i].LoadFromDB()
	}

	return logs, nil
}
