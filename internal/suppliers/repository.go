package suppliers

import (
	"fmt"

	"assetdesk/internal/repository"
	"assetdesk/pkg/apperrors"
	"assetdesk/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type SupplierRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *SupplierRepository {
	return &SupplierRepository{repository: r}
}

func (r *SupplierRepository) GetSupplier(id int, includeDeleted bool) (*models.Supplier, error) {
	condition := goqu.Ex{"id": id}
	if !includeDeleted {
		condition["deleted_at"] = nil
	}

	var supplier models.Supplier
	found, err := r.getSupplierQuery().Where(condition).Executor().ScanStruct(&supplier)
	if err != nil {
		return nil, fmt.Errorf("unable to select supplier from database: %w", err)
	}
	if !found {
		return nil, apperrors.NotFound("supplier %d not found", id)
	}

	return &supplier, nil
}

func (r *SupplierRepository) GetSuppliers() ([]models.Supplier, error) {
	query := r.getSupplierQuery().
		Where(goqu.Ex{"deleted_at": nil}).
		Order(goqu.I("name").Asc())

	var suppliers []models.Supplier
	if err := query.Executor().ScanStructs(&suppliers); err != nil {
		return nil, fmt.Errorf("unable to select suppliers from database: %w", err)
	}

	return suppliers, nil
}

func (r *SupplierRepository) getSupplierQuery() *goqu.SelectDataset {
	return r.repository.GoquDBWrapper.Select(
		"id", "name", "tax_id", "email", "phone", "contact_person", "address",
		"website", "support_phone", "support_email", "active",
		"created_at", "updated_at", "deleted_at", "created_by", "updated_by",
	).From("suppliers")
}
