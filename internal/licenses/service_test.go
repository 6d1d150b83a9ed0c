package licenses

import (
	"fmt"
	"testing"

	"assetdesk/internal/auditlog"
	"assetdesk/internal/entitystore"
	"assetdesk/internal/repository"
	"assetdesk/pkg/apperrors"
	"assetdesk/pkg/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func newSeatLedger(t *testing.T) (*LicenseService, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open stub database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	r := repository.NewRepository(db)
	recorder := auditlog.NewRecorder(auditlog.NewRepository(r))

	return NewService(
		r,
		NewRepository(r),
		entitystore.New(r, recorder, "software_licenses"),
		entitystore.New(r, recorder, "license_assignments"),
		entitystore.New(r, recorder, "assets"),
		entitystore.New(r, recorder, "users"),
	), mock
}

func licenseLockRows(seatsUsed, seatsTotal int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "type", "seats_total", "seats_used"}).
		AddRow(2, "Office Suite", "volume", seatsTotal, seatsUsed)
}

func TestAssignLicenseConsumesSeat(t *testing.T) {
	service, mock := newSeatLedger(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT "id", "name", "type", "seats_total", "seats_used" FROM "software_licenses"`).
		WillReturnRows(licenseLockRows(0, 5))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM "assets"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`INSERT INTO "license_assignments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectExec(`INSERT INTO "audit_logs"`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(`SELECT row_to_json\(t\) FROM "software_licenses" AS "t"`).
		WillReturnRows(sqlmock.NewRows([]string{"row_to_json"}).AddRow(`{"id":2,"seats_used":0}`))
	mock.ExpectExec(`UPDATE "software_licenses" SET "seats_used"=1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "audit_logs"`).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT .+ FROM "license_assignments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "license_id", "asset_id"}).
			AddRow(7, 2, 4))

	assignment, err := service.AssignLicense(models.AssignLicenseRequest{
		LicenseID: 2,
		AssetID:   intPtr(4),
	}, models.Actor{ID: 1})

	assert.NoError(t, err)
	assert.Equal(t, 7, assignment.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignLicenseAtCapacityWritesNothing(t *testing.T) {
	service, mock := newSeatLedger(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT "id", "name", "type", "seats_total", "seats_used" FROM "software_licenses"`).
		WillReturnRows(licenseLockRows(3, 3))
	mock.ExpectRollback()

	_, err := service.AssignLicense(models.AssignLicenseRequest{
		LicenseID: 2,
		AssetID:   intPtr(4),
	}, models.Actor{ID: 1})

	assert.Equal(t, apperrors.KindCapacity, apperrors.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemoveAssignmentReleasesSeat(t *testing.T) {
	tests := []struct {
		name          string
		seatsUsed     int
		wantSeatsUsed int
	}{
		{name: "seat released", seatsUsed: 2, wantSeatsUsed: 1},
		{name: "seats_used never drops below zero", seatsUsed: 0, wantSeatsUsed: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mock := newSeatLedger(t)

			mock.ExpectBegin()
			mock.ExpectQuery(`SELECT "id", "license_id", .+ FROM "license_assignments"`).
				WillReturnRows(sqlmock.NewRows([]string{"id", "license_id"}).AddRow(7, 2))
			mock.ExpectQuery(`SELECT "id", "name", "type", "seats_total", "seats_used" FROM "software_licenses"`).
				WillReturnRows(licenseLockRows(tt.seatsUsed, 5))
			mock.ExpectQuery(`SELECT row_to_json\(t\) FROM "license_assignments" AS "t"`).
				WillReturnRows(sqlmock.NewRows([]string{"row_to_json"}).AddRow(`{"id":7,"license_id":2}`))
			mock.ExpectExec(`UPDATE "license_assignments" SET "deleted_at"=`).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectExec(`INSERT INTO "audit_logs"`).
				WillReturnResult(sqlmock.NewResult(1, 1))
			mock.ExpectQuery(`SELECT row_to_json\(t\) FROM "software_licenses" AS "t"`).
				WillReturnRows(sqlmock.NewRows([]string{"row_to_json"}).
					AddRow(fmt.Sprintf(`{"id":2,"seats_used":%d}`, tt.seatsUsed)))
			mock.ExpectExec(fmt.Sprintf(`UPDATE "software_licenses" SET "seats_used"=%d`, tt.wantSeatsUsed)).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectExec(`INSERT INTO "audit_logs"`).
				WillReturnResult(sqlmock.NewResult(2, 1))
			mock.ExpectCommit()

			err := service.RemoveAssignment(7, models.Actor{ID: 1})

			assert.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
