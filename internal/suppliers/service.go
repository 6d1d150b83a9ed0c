package suppliers

import (
	"assetdesk/internal/entitystore"
	"assetdesk/pkg/apperrors"
	"assetdesk/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type SupplierService struct {
	repo  *SupplierRepository
	store *entitystore.Store
}

func NewService(repo *SupplierRepository, store *entitystore.Store) *SupplierService {
	return &SupplierService{repo: repo, store: store}
}

func (s *SupplierService) CreateSupplier(req models.CreateSupplierRequest, actor models.Actor) (*models.Supplier, error) {
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	id, err := s.store.Create(goqu.Record{
		"name":           req.Name,
		"tax_id":         req.TaxID,
		"email":          req.Email,
		"phone":          req.Phone,
		"contact_person": req.ContactPerson,
		"address":        req.Address,
		"website":        req.Website,
		"support_phone":  req.SupportPhone,
		"support_email":  req.SupportEmail,
		"active":         active,
	}, actor)
	if err != nil {
		return nil, err
	}

	return s.repo.GetSupplier(id, false)
}

func (s *SupplierService) UpdateSupplier(id int, req models.UpdateSupplierRequest, actor models.Actor) (*models.Supplier, error) {
	changes := goqu.Record{}
	if req.Name != nil {
		changes["name"] = *req.Name
	}
	if req.TaxID != nil {
		changes["tax_id"] = *req.TaxID
	}
	if req.Email != nil {
		changes["email"] = *req.Email
	}
	if req.Phone != nil {
		changes["phone"] = *req.Phone
	}
	if req.ContactPerson != nil {
		changes["contact_person"] = *req.ContactPerson
	}
	if req.Address != nil {
		changes["address"] = *req.Address
	}
	if req.Website != nil {
		changes["website"] = *req.Website
	}
	if req.SupportPhone != nil {
		changes["support_phone"] = *req.SupportPhone
	}
	if req.SupportEmail != nil {
		changes["support_email"] = *req.SupportEmail
	}
	if req.Active != nil {
		changes["active"] = *req.Active
	}

	if len(changes) == 0 {
		return nil, apperrors.Validation("no updatable fields in request")
	}

	if err := s.store.Update(id, changes, actor); err != nil {
		return nil, err
	}

	return s.repo.GetSupplier(id, false)
}

func (s *SupplierService) SoftDeleteSupplier(id int, actor models.Actor) error {
	return s.store.SoftDelete(id, actor)
}
