package entitystore

import (
	"encoding/json"
	"time"

	"assetdesk/internal/auditlog"
	"assetdesk/internal/repository"
	"assetdesk/pkg/apperrors"
	"assetdesk/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/lib/pq"
)

// Store gives one entity table envelope semantics: actor attribution,
// timestamp refresh, tombstoning, and an audit row per mutation. The entity
// write and its audit entry always share a transaction.
type Store struct {
	r        *repository.Repository
	recorder *auditlog.Recorder
	table    string
}

func New(r *repository.Repository, recorder *auditlog.Recorder, table string) *Store {
	return &Store{r: r, recorder: recorder, table: table}
}

func (s *Store) Table() string {
	return s.table
}

// Create inserts a row and its INSERT audit entry in one transaction.
func (s *Store) Create(fields goqu.Record, actor models.Actor) (int, error) {
	var id int
	err := repository.WithTransaction(s.r.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		var err error
		id, err = s.CreateTx(tx, fields, actor)
		return err
	})
	return id, err
}

func (s *Store) CreateTx(tx *goqu.TxDatabase, fields goqu.Record, actor models.Actor) (int, error) {
	record := goqu.Record{}
	for key, value := range fields {
		record[key] = value
	}
	record["created_by"] = actor.ID
	record["updated_by"] = actor.ID

	var id int
	query := tx.Insert(s.table).Rows(record).Returning("id")

	if _, err := query.Executor().ScanVal(&id); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return 0, apperrors.WrapDBError(s.table+": "+pqErr.Detail, string(pqErr.Code))
		}
		return 0, apperrors.Storage("failed to insert into "+s.table, err)
	}

	newValues := recordToMap(record)
	newValues["id"] = id

	if err := s.recorder.Record(tx, s.table, id, models.AuditInsert, nil, newValues, actor.ID); err != nil {
		return 0, err
	}

	return id, nil
}

// Update merges fields into an active row; absent or tombstoned rows fail
// with NotFound. The audit entry carries the old values of exactly the
// fields that changed.
func (s *Store) Update(id int, changes goqu.Record, actor models.Actor) error {
	return repository.WithTransaction(s.r.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		return s.UpdateTx(tx, id, changes, actor)
	})
}

func (s *Store) UpdateTx(tx *goqu.TxDatabase, id int, changes goqu.Record, actor models.Actor) error {
	old, err := s.SnapshotTx(tx, id)
	if err != nil {
		return err
	}

	record := goqu.Record{}
	for key, value := range changes {
		record[key] = value
	}
	record["updated_by"] = actor.ID
	record["updated_at"] = time.Now().UTC()

	result, err := tx.Update(s.table).
		Set(record).
		Where(goqu.Ex{"id": id, "deleted_at": nil}).
		Executor().
		Exec()
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return apperrors.WrapDBError(s.table+": "+pqErr.Detail, string(pqErr.Code))
		}
		return apperrors.Storage("failed to update "+s.table, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Storage("failed to read rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NotFound("%s record %d not found", s.table, id)
	}

	oldSubset := map[string]interface{}{"id": id}
	for key := range changes {
		oldSubset[key] = old[key]
	}
	newValues := recordToMap(changes)
	newValues["id"] = id

	return s.recorder.Record(tx, s.table, id, models.AuditUpdate, oldSubset, newValues, actor.ID)
}

// SoftDelete tombstones a row. A second call on the same row fails with
// NotFound because tombstoned rows are invisible to the lookup.
func (s *Store) SoftDelete(id int, actor models.Actor) error {
	return repository.WithTransaction(s.r.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		return s.SoftDeleteTx(tx, id, actor)
	})
}

func (s *Store) SoftDeleteTx(tx *goqu.TxDatabase, id int, actor models.Actor) error {
	old, err := s.SnapshotTx(tx, id)
	if err != nil {
		return err
	}

	deletedAt := time.Now().UTC()
	result, err := tx.Update(s.table).
		Set(goqu.Record{
			"deleted_at": deletedAt,
			"updated_at": deletedAt,
			"updated_by": actor.ID,
		}).
		Where(goqu.Ex{"id": id, "deleted_at": nil}).
		Executor().
		Exec()
	if err != nil {
		return apperrors.Storage("failed to soft delete from "+s.table, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Storage("failed to read rows affected", err)
	}
	if rowsAffected == 0 {
		return apperrors.NotFound("%s record %d not found", s.table, id)
	}

	newValues := map[string]interface{}{
		"id":         id,
		"deleted_at": deletedAt,
	}

	return s.recorder.Record(tx, s.table, id, models.AuditDelete, old, newValues, actor.ID)
}

// SnapshotTx loads the current field values of an active row for audit
// old-value capture. Tombstoned rows are not visible here.
func (s *Store) SnapshotTx(tx *goqu.TxDatabase, id int) (map[string]interface{}, error) {
	var raw string
	found, err := tx.Select(goqu.L("row_to_json(t)")).
		From(goqu.T(s.table).As("t")).
		Where(goqu.Ex{"t.id": id, "t.deleted_at": nil}).
		Executor().
		ScanVal(&raw)
	if err != nil {
		return nil, apperrors.Storage("failed to snapshot "+s.table, err)
	}
	if !found {
		return nil, apperrors.NotFound("%s record %d not found", s.table, id)
	}

	snapshot := map[string]interface{}{}
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		return nil, apperrors.Storage("failed to decode row snapshot", err)
	}
	delete(snapshot, "password_hash")

	return snapshot, nil
}

// LockRowTx takes a row lock on an active row, serializing concurrent
// writers that race on the same entity (assignment exclusivity, seat
// counts). Returns NotFound when the row is absent or tombstoned.
func (s *Store) LockRowTx(tx *goqu.TxDatabase, id int) error {
	var lockedID int
	found, err := tx.Select("id").
		From(s.table).
		Where(goqu.Ex{"id": id, "deleted_at": nil}).
		ForUpdate(exp.Wait).
		Executor().
		ScanVal(&lockedID)
	if err != nil {
		return apperrors.Storage("failed to lock row in "+s.table, err)
	}
	if !found {
		return apperrors.NotFound("%s record %d not found", s.table, id)
	}
	return nil
}

// ExistsActiveTx reports whether an active row with the id exists.
func (s *Store) ExistsActiveTx(tx *goqu.TxDatabase, id int) (bool, error) {
	var count int
	_, err := tx.Select(goqu.COUNT("*")).
		From(s.table).
		Where(goqu.Ex{"id": id, "deleted_at": nil}).
		Executor().
		ScanVal(&count)
	if err != nil {
		return false, apperrors.Storage("failed to check row in "+s.table, err)
	}
	return count > 0, nil
}

func recordToMap(record goqu.Record) map[string]interface{} {
	values := map[string]interface{}{}
	for key, value := range record {
		if key == "password_hash" {
			continue
		}
		values[key] = value
	}
	return values
}
