package consumables

import (
	"fmt"

	"assetdesk/internal/repository"
	"assetdesk/pkg/apperrors"
	"assetdesk/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

type ConsumablesRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *ConsumablesRepository {
	return &ConsumablesRepository{repository: r}
}

func (r *ConsumablesRepository) GetConsumable(id int, includeDeleted bool) (*models.Consumable, error) {
	condition := goqu.Ex{"id": id}
	if !includeDeleted {
		condition["deleted_at"] = nil
	}

	var consumable models.Consumable
	found, err := r.getConsumableQuery().Where(condition).Executor().ScanStruct(&consumable)
	if err != nil {
		return nil, fmt.Errorf("unable to select consumable from database: %w", err)
	}
	if !found {
		return nil, apperrors.NotFound("consumable %d not found", id)
	}

	return &consumable, nil
}

func (r *ConsumablesRepository) GetConsumables() ([]models.Consumable, error) {
	query := r.getConsumableQuery().
		Where(goqu.Ex{"deleted_at": nil}).
		Order(goqu.I("created_at").Desc())

	var consumables []models.Consumable
	if err := query.Executor().ScanStructs(&consumables); err != nil {
		return nil, fmt.Errorf("unable to select consumables from database: %w", err)
	}

	return consumables, nil
}

// GetConsumableForUpdateTx loads the stock level under a row lock so
// concurrent adjustments serialize instead of racing the non-negative check.
func (r *ConsumablesRepository) GetConsumableForUpdateTx(tx *goqu.TxDatabase, id int) (*models.Consumable, error) {
	var consumable models.Consumable
	found, err := tx.Select("id", "name", "quantity_in_stock", "min_quantity").
		From("consumables").
		Where(goqu.Ex{"id": id, "deleted_at": nil}).
		ForUpdate(exp.Wait).
		Executor().
		ScanStruct(&consumable)
	if err != nil {
		return nil, apperrors.Storage("failed to lock consumable", err)
	}
	if !found {
		return nil, apperrors.NotFound("consumable %d not found", id)
	}

	return &consumable, nil
}

func (r *ConsumablesRepository) getConsumableQuery() *goqu.SelectDataset {
	return r.repository.GoquDBWrapper.Select(
		"id", "name", "quantity_in_stock", "min_quantity", "category_id", "location_id",
		"created_at", "updated_at", "deleted_at", "created_by", "updated_by",
	).From("consumables")
}
