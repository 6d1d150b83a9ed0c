package maintenance

import (
	"fmt"

	"assetdesk/internal/repository"
	"assetdesk/pkg/apperrors"
	"assetdesk/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type MaintenanceRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *MaintenanceRepository {
	return &MaintenanceRepository{repository: r}
}

func (r *MaintenanceRepository) GetOrder(id int, includeDeleted bool) (*models.MaintenanceOrder, error) {
	condition := goqu.Ex{"id": id}
	if !includeDeleted {
		condition["deleted_at"] = nil
	}

	var order models.MaintenanceOrder
	found, err := r.getOrderQuery().Where(condition).Executor().ScanStruct(&order)
	if err != nil {
		return nil, fmt.Errorf("unable to select maintenance order from database: %w", err)
	}
	if !found {
		return nil, apperrors.NotFound("maintenance order %d not found", id)
	}

	return &order, nil
}

func (r *MaintenanceRepository) GetOrders() ([]models.MaintenanceOrder, error) {
	query := r.getOrderQuery().
		Where(goqu.Ex{"deleted_at": nil}).
		Order(goqu.I("planned_date").Desc())

	var orders []models.MaintenanceOrder
	if err := query.Executor().ScanStructs(&orders); err != nil {
		return nil, fmt.Errorf("unable to select maintenance orders from database: %w", err)
	}

	return orders, nil
}

func (r *MaintenanceRepository) getOrderQuery() *goqu.SelectDataset {
	return r.repository.GoquDBWrapper.Select(
		"id", "asset_id", "type", "status", "planned_date", "start_date", "end_date",
		"cost_parts", "cost_labor", "technician_id", "notes",
		"created_at", "updated_at", "deleted_at", "created_by", "updated_by",
	).From("maintenance_orders")
}
