package consumables

import (
	"testing"

	"assetdesk/internal/auditlog"
	"assetdesk/internal/entitystore"
	"assetdesk/internal/repository"
	"assetdesk/pkg/apperrors"
	"assetdesk/pkg/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func newStockService(t *testing.T) (*ConsumableService, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open stub database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	r := repository.NewRepository(db)
	recorder := auditlog.NewRecorder(auditlog.NewRepository(r))

	return NewService(r, NewRepository(r), entitystore.New(r, recorder, "consumables")), mock
}

func consumableLockRows(quantity int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "quantity_in_stock", "min_quantity"}).
		AddRow(5, "Toner cartridge", quantity, 1)
}

func TestAdjustStockAddsUnderRowLock(t *testing.T) {
	service, mock := newStockService(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT "id", "name", "quantity_in_stock", "min_quantity" FROM "consumables" .+ FOR UPDATE`).
		WillReturnRows(consumableLockRows(2))
	mock.ExpectQuery(`SELECT row_to_json\(t\) FROM "consumables" AS "t"`).
		WillReturnRows(sqlmock.NewRows([]string{"row_to_json"}).AddRow(`{"id":5,"quantity_in_stock":2}`))
	mock.ExpectExec(`UPDATE "consumables" SET "quantity_in_stock"=7`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO "audit_logs"`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(`SELECT .+ FROM "consumables"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "quantity_in_stock", "min_quantity"}).
			AddRow(5, "Toner cartridge", 7, 1))

	consumable, err := service.AdjustStock(5, models.AdjustStockRequest{
		Quantity:  5,
		Operation: models.StockAdd,
	}, models.Actor{ID: 1})

	assert.NoError(t, err)
	assert.Equal(t, 7, consumable.QuantityInStock)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdjustStockSubtractPastZeroWritesNothing(t *testing.T) {
	service, mock := newStockService(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT "id", "name", "quantity_in_stock", "min_quantity" FROM "consumables" .+ FOR UPDATE`).
		WillReturnRows(consumableLockRows(2))
	mock.ExpectRollback()

	_, err := service.AdjustStock(5, models.AdjustStockRequest{
		Quantity:  5,
		Operation: models.StockSubtract,
	}, models.Actor{ID: 1})

	assert.Equal(t, apperrors.KindCapacity, apperrors.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
