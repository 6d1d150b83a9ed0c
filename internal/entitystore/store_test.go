package entitystore

import (
	"testing"

	"assetdesk/internal/auditlog"
	"assetdesk/internal/repository"
	"assetdesk/pkg/apperrors"
	"assetdesk/pkg/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/doug-martin/goqu/v9"
	"github.com/stretchr/testify/assert"
)

func newStore(t *testing.T, table string) (*Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open stub database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	r := repository.NewRepository(db)
	recorder := auditlog.NewRecorder(auditlog.NewRepository(r))

	return New(r, recorder, table), mock
}

func TestCreateWritesAuditRowInSameTransaction(t *testing.T) {
	store, mock := newStore(t, "locations")

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "locations" .+ RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectExec(`INSERT INTO "audit_logs" .+'INSERT'.+'locations'`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	id, err := store.Create(goqu.Record{"name": "Server room"}, models.Actor{ID: 1})

	assert.NoError(t, err)
	assert.Equal(t, 3, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateMissingRowWritesNothing(t *testing.T) {
	store, mock := newStore(t, "locations")

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT row_to_json\(t\) FROM "locations" AS "t"`).
		WillReturnRows(sqlmock.NewRows([]string{"row_to_json"}))
	mock.ExpectRollback()

	err := store.Update(12, goqu.Record{"name": "Annex"}, models.Actor{ID: 1})

	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSoftDeleteTombstonesOnce(t *testing.T) {
	store, mock := newStore(t, "locations")

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT row_to_json\(t\) FROM "locations" AS "t"`).
		WillReturnRows(sqlmock.NewRows([]string{"row_to_json"}).AddRow(`{"id":3,"name":"Server room"}`))
	mock.ExpectExec(`UPDATE "locations" SET "deleted_at"=`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "audit_logs" .+'DELETE'.+'locations'`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := store.SoftDelete(3, models.Actor{ID: 1})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
