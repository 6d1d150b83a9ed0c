package assets

import (
	"assetdesk/internal/entitystore"
	"assetdesk/internal/rules"
	"assetdesk/pkg/apperrors"
	"assetdesk/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type AssetService struct {
	repo  *AssetsRepository
	store *entitystore.Store
}

func NewService(repo *AssetsRepository, store *entitystore.Store) *AssetService {
	return &AssetService{repo: repo, store: store}
}

func (s *AssetService) CreateAsset(req models.CreateAssetRequest, actor models.Actor) (*models.Asset, error) {
	status := models.AssetStatus(req.Status)
	if req.Status == "" {
		status = models.AssetActive
	}
	if !status.IsValid() {
		return nil, apperrors.Validation("invalid asset status: %s", req.Status)
	}

	condition := models.AssetCondition(req.Condition)
	if req.Condition == "" {
		condition = models.ConditionGood
	}
	if !condition.IsValid() {
		return nil, apperrors.Validation("invalid asset condition: %s", req.Condition)
	}

	acquisitionDate, err := rules.ParseDate("acquisition_date", req.AcquisitionDate)
	if err != nil {
		return nil, err
	}
	warrantyExpiry, err := rules.ParseOptionalDate("warranty_expiry_date", req.WarrantyExpiryDate)
	if err != nil {
		return nil, err
	}

	record := goqu.Record{
		"asset_tag":             req.AssetTag,
		"serial_number":         req.SerialNumber,
		"name":                  req.Name,
		"brand":                 req.Brand,
		"model":                 req.Model,
		"acquisition_date":      acquisitionDate,
		"acquisition_value":     req.AcquisitionValue,
		"status":                string(status),
		"condition":             string(condition),
		"warranty_expiry_date":  warrantyExpiry,
		"invoice_number":        req.InvoiceNumber,
		"purchase_order_number": req.PurchaseOrderNumber,
		"notes":                 req.Notes,
		"category_id":           req.CategoryID,
		"location_id":           req.LocationID,
		"supplier_id":           req.SupplierID,
	}
	if req.UsefulLifeMonths != nil {
		record["useful_life_months"] = *req.UsefulLifeMonths
	}
	if req.ResidualValue != nil {
		record["residual_value"] = *req.ResidualValue
	}

	id, err := s.store.Create(record, actor)
	if err != nil {
		return nil, err
	}

	return s.repo.GetAsset(id, false)
}

func (s *AssetService) UpdateAsset(id int, req models.UpdateAssetRequest, actor models.Actor) (*models.Asset, error) {
	changes := goqu.Record{}

	if req.Status != nil {
		if !models.AssetStatus(*req.Status).IsValid() {
			return nil, apperrors.Validation("invalid asset status: %s", *req.Status)
		}
		changes["status"] = *req.Status
	}
	if req.Condition != nil {
		if !models.AssetCondition(*req.Condition).IsValid() {
			return nil, apperrors.Validation("invalid asset condition: %s", *req.Condition)
		}
		changes["condition"] = *req.Condition
	}
	if req.WarrantyExpiryDate != nil {
		warrantyExpiry, err := rules.ParseOptionalDate("warranty_expiry_date", req.WarrantyExpiryDate)
		if err != nil {
			return nil, err
		}
		changes["warranty_expiry_date"] = warrantyExpiry
	}

	setIfPresentString(changes, "serial_number", req.SerialNumber)
	setIfPresentString(changes, "name", req.Name)
	setIfPresentString(changes, "brand", req.Brand)
	setIfPresentString(changes, "model", req.Model)
	setIfPresentString(changes, "invoice_number", req.InvoiceNumber)
	setIfPresentString(changes, "purchase_order_number", req.PurchaseOrderNumber)
	setIfPresentString(changes, "notes", req.Notes)
	if req.AcquisitionValue != nil {
		changes["acquisition_value"] = *req.AcquisitionValue
	}
	if req.UsefulLifeMonths != nil {
		changes["useful_life_months"] = *req.UsefulLifeMonths
	}
	if req.ResidualValue != nil {
		changes["residual_value"] = *req.ResidualValue
	}
	if req.CategoryID != nil {
		changes["category_id"] = *req.CategoryID
	}
	if req.LocationID != nil {
		changes["location_id"] = *req.LocationID
	}
	if req.SupplierID != nil {
		changes["supplier_id"] = *req.SupplierID
	}

	if len(changes) == 0 {
		return nil, apperrors.Validation("no updatable fields in request")
	}

	if err := s.store.Update(id, changes, actor); err != nil {
		return nil, err
	}

	return s.repo.GetAsset(id, false)
}

func (s *AssetService) SoftDeleteAsset(id int, actor models.Actor) error {
	return s.store.SoftDelete(id, actor)
}

func setIfPresentString(changes goqu.Record, column string, value *string) {
	if value != nil {
		changes[column] = *value
	}
}
