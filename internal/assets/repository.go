package assets

import (
	"fmt"

	"assetdesk/internal/repository"
	"assetdesk/pkg/apperrors"
	"assetdesk/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type AssetsRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *AssetsRepository {
	return &AssetsRepository{repository: r}
}

func (r *AssetsRepository) GetAsset(id int, includeDeleted bool) (*models.Asset, error) {
	condition := goqu.Ex{"id": id}
	if !includeDeleted {
		condition["deleted_at"] = nil
	}

	var asset models.Asset
	found, err := r.getAssetQuery().Where(condition).Executor().ScanStruct(&asset)
	if err != nil {
		return nil, fmt.Errorf("unable to select asset from database: %w", err)
	}
	if !found {
		return nil, apperrors.NotFound("asset %d not found", id)
	}

	return &asset, nil
}

// GetAssetsBy lists active assets matching caller-supplied filters, newest
// first.
func (r *AssetsRepository) GetAssetsBy(conditions repository.QueryBuilder) ([]models.Asset, error) {
	aliases := map[string]string{
		"category_id": "category_id",
		"location_id": "location_id",
		"status":      "status",
	}

	query := r.getAssetQuery().
		Where(goqu.Ex{"deleted_at": nil})
	if conditions != nil {
		query = query.Where(conditions.BuildConditions(aliases))
	}
	query = query.Order(goqu.I("created_at").Desc())

	var assets []models.Asset
	if err := query.Executor().ScanStructs(&assets); err != nil {
		return nil, fmt.Errorf("unable to select assets from database: %w", err)
	}

	return assets, nil
}

func (r *AssetsRepository) getAssetQuery() *goqu.SelectDataset {
	return r.repository.GoquDBWrapper.Select(
		"id", "asset_tag", "serial_number", "name", "brand", "model",
		"acquisition_date", "acquisition_value", "useful_life_months", "residual_value",
		"status", "condition", "warranty_expiry_date", "invoice_number",
		"purchase_order_number", "notes", "category_id", "location_id", "supplier_id",
		"created_at", "updated_at", "deleted_at", "created_by", "updated_by",
	).From("assets")
}
