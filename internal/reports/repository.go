package reports

import (
	"fmt"
	"time"

	"assetdesk/internal/repository"
	"assetdesk/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type ReportsRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *ReportsRepository {
	return &ReportsRepository{repository: r}
}

type StatusCount struct {
	Status string `json:"status" db:"status"`
	Count  int    `json:"count" db:"count"`
}

type DashboardSummary struct {
	AssetsByStatus    []StatusCount `json:"assets_by_status"`
	ActiveAssignments int           `json:"active_assignments"`
	OpenMaintenance   int           `json:"open_maintenance"`
	LicensesExpiring  int           `json:"licenses_expiring"`
	LowStockItems     int           `json:"low_stock_items"`
}

func (r *ReportsRepository) GetDashboardSummary(expiryWindow time.Duration) (*DashboardSummary, error) {
	summary := &DashboardSummary{}

	query := r.repository.GoquDBWrapper.
		Select("status", goqu.COUNT("*").As("count")).
		From("assets").
		Where(goqu.Ex{"deleted_at": nil}).
		GroupBy("status")
	if err := query.Executor().ScanStructs(&summary.AssetsByStatus); err != nil {
		return nil, fmt.Errorf("unable to count assets by status: %w", err)
	}

	var err error
	summary.ActiveAssignments, err = r.countWhere("asset_assignments", goqu.Ex{
		"deleted_at": nil,
		"status":     string(models.AssignmentActive),
	})
	if err != nil {
		return nil, err
	}

	summary.OpenMaintenance, err = r.countWhere("maintenance_orders", goqu.Ex{
		"deleted_at": nil,
		"status":     []string{string(models.MaintenanceScheduled), string(models.MaintenanceInProgress)},
	})
	if err != nil {
		return nil, err
	}

	cutoff := time.Now().Add(expiryWindow)
	summary.LicensesExpiring, err = r.countLicensesExpiring(cutoff)
	if err != nil {
		return nil, err
	}

	summary.LowStockItems, err = r.countLowStock()
	if err != nil {
		return nil, err
	}

	return summary, nil
}

// GetExpiringLicenses lists active licenses whose expiry falls before the
// cutoff, soonest first.
func (r *ReportsRepository) GetExpiringLicenses(cutoff time.Time) ([]models.SoftwareLicense, error) {
	query := r.repository.GoquDBWrapper.Select(
		"id", "name", "key", "type", "seats_total", "seats_used",
		"expiration_date", "cost", "notes", "supplier_id",
		"created_at", "updated_at", "deleted_at", "created_by", "updated_by",
	).From("software_licenses").
		Where(
			goqu.Ex{"deleted_at": nil},
			goqu.C("expiration_date").IsNotNull(),
			goqu.C("expiration_date").Lte(cutoff),
		).
		Order(goqu.I("expiration_date").Asc())

	var licenses []models.SoftwareLicense
	if err := query.Executor().ScanStructs(&licenses); err != nil {
		return nil, fmt.Errorf("unable to select expiring licenses: %w", err)
	}

	return licenses, nil
}

// GetLowStockConsumables lists consumables at or below their minimum level.
func (r *ReportsRepository) GetLowStockConsumables() ([]models.Consumable, error) {
	query := r.repository.GoquDBWrapper.Select(
		"id", "name", "quantity_in_stock", "min_quantity", "category_id", "location_id",
		"created_at", "updated_at", "deleted_at", "created_by", "updated_by",
	).From("consumables").
		Where(
			goqu.Ex{"deleted_at": nil},
			goqu.C("quantity_in_stock").Lte(goqu.C("min_quantity")),
		).
		Order(goqu.I("quantity_in_stock").Asc())

	var consumables []models.Consumable
	if err := query.Executor().ScanStructs(&consumables); err != nil {
		return nil, fmt.Errorf("unable to select low stock consumables: %w", err)
	}

	return consumables, nil
}

func (r *ReportsRepository) countWhere(table string, condition goqu.Ex) (int, error) {
	count, err := r.repository.GoquDBWrapper.From(table).Where(condition).Count()
	if err != nil {
		return 0, fmt.Errorf("unable to count rows in %s: %w", table, err)
	}
	return int(count), nil
}

func (r *ReportsRepository) countLicensesExpiring(cutoff time.Time) (int, error) {
	count, err := r.repository.GoquDBWrapper.From("software_licenses").
		Where(
			goqu.Ex{"deleted_at": nil},
			goqu.C("expiration_date").IsNotNull(),
			goqu.C("expiration_date").Lte(cutoff),
		).
		Count()
	if err != nil {
		return 0, fmt.Errorf("unable to count expiring licenses: %w", err)
	}
	return int(count), nil
}

func (r *ReportsRepository) countLowStock() (int, error) {
	count, err := r.repository.GoquDBWrapper.From("consumables").
		Where(
			goqu.Ex{"deleted_at": nil},
			goqu.C("quantity_in_stock").Lte(goqu.C("min_quantity")),
		).
		Count()
	if err != nil {
		return 0, fmt.Errorf("unable to count low stock consumables: %w", err)
	}
	return int(count), nil
}
