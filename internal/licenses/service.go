package licenses

import (
	"time"

	"assetdesk/internal/entitystore"
	"assetdesk/internal/repository"
	"assetdesk/internal/rules"
	"assetdesk/pkg/apperrors"
	"assetdesk/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

// LicenseService owns the seat side of the ledger: an active assignment row
// is one consumed seat, and seats_used tracks the active rows.
type LicenseService struct {
	r               *repository.Repository
	repo            *LicensesRepository
	licenseStore    *entitystore.Store
	assignmentStore *entitystore.Store
	assetStore      *entitystore.Store
	userStore       *entitystore.Store
}

func NewService(r *repository.Repository, repo *LicensesRepository, licenseStore, assignmentStore, assetStore, userStore *entitystore.Store) *LicenseService {
	return &LicenseService{
		r:               r,
		repo:            repo,
		licenseStore:    licenseStore,
		assignmentStore: assignmentStore,
		assetStore:      assetStore,
		userStore:       userStore,
	}
}

func (s *LicenseService) CreateLicense(req models.CreateLicenseRequest, actor models.Actor) (*models.SoftwareLicense, error) {
	licenseType := models.LicenseType(req.Type)
	if !licenseType.IsValid() {
		return nil, apperrors.Validation("invalid license type: %s", req.Type)
	}

	seatsTotal := 1
	if req.SeatsTotal != nil {
		seatsTotal = *req.SeatsTotal
	}
	if seatsTotal < 1 {
		return nil, apperrors.Validation("seats_total must be at least 1")
	}

	expiration, err := rules.ParseOptionalDate("expiration_date", req.ExpirationDate)
	if err != nil {
		return nil, err
	}

	record := goqu.Record{
		"name":            req.Name,
		"key":             req.Key,
		"type":            string(licenseType),
		"seats_total":     seatsTotal,
		"seats_used":      0,
		"expiration_date": expiration,
		"notes":           req.Notes,
		"supplier_id":     req.SupplierID,
	}
	if req.Cost != nil {
		record["cost"] = *req.Cost
	}

	id, err := s.licenseStore.Create(record, actor)
	if err != nil {
		return nil, err
	}

	return s.repo.GetLicense(id, false)
}

func (s *LicenseService) UpdateLicense(id int, req models.UpdateLicenseRequest, actor models.Actor) (*models.SoftwareLicense, error) {
	changes := goqu.Record{}

	if req.Type != nil {
		if !models.LicenseType(*req.Type).IsValid() {
			return nil, apperrors.Validation("invalid license type: %s", *req.Type)
		}
		changes["type"] = *req.Type
	}
	if req.ExpirationDate != nil {
		expiration, err := rules.ParseOptionalDate("expiration_date", req.ExpirationDate)
		if err != nil {
			return nil, err
		}
		changes["expiration_date"] = expiration
	}
	if req.Name != nil {
		changes["name"] = *req.Name
	}
	if req.Key != nil {
		changes["key"] = *req.Key
	}
	if req.Cost != nil {
		changes["cost"] = *req.Cost
	}
	if req.Notes != nil {
		changes["notes"] = *req.Notes
	}
	if req.SupplierID != nil {
		changes["supplier_id"] = *req.SupplierID
	}

	if len(changes) == 0 && req.SeatsTotal == nil {
		return nil, apperrors.Validation("no updatable fields in request")
	}

	err := repository.WithTransaction(s.r.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		if req.SeatsTotal != nil {
			// Shrinking below the current allocation would break the seat
			// invariant for existing assignments.
			license, err := s.repo.GetLicenseForUpdateTx(tx, id)
			if err != nil {
				return err
			}
			if *req.SeatsTotal < license.SeatsUsed {
				return apperrors.Capacity("seats_total %d is below the %d seats in use", *req.SeatsTotal, license.SeatsUsed)
			}
			changes["seats_total"] = *req.SeatsTotal
		}

		return s.licenseStore.UpdateTx(tx, id, changes, actor)
	})
	if err != nil {
		return nil, err
	}

	return s.repo.GetLicense(id, false)
}

func (s *LicenseService) SoftDeleteLicense(id int, actor models.Actor) error {
	return s.licenseStore.SoftDelete(id, actor)
}

// AssignLicense consumes one seat: the assignment row and the seats_used
// increment commit together or not at all.
func (s *LicenseService) AssignLicense(req models.AssignLicenseRequest, actor models.Actor) (*models.LicenseAssignment, error) {
	if err := rules.CheckLicenseTarget(req.AssetID, req.UserID); err != nil {
		return nil, err
	}

	var assignmentID int
	err := repository.WithTransaction(s.r.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		license, err := s.repo.GetLicenseForUpdateTx(tx, req.LicenseID)
		if err != nil {
			return err
		}

		if err := rules.CheckSeatCapacity(license.SeatsUsed, license.SeatsTotal); err != nil {
			return err
		}

		if req.AssetID != nil {
			exists, err := s.assetStore.ExistsActiveTx(tx, *req.AssetID)
			if err != nil {
				return err
			}
			if !exists {
				return apperrors.NotFound("asset %d not found", *req.AssetID)
			}
		}
		if req.UserID != nil {
			exists, err := s.userStore.ExistsActiveTx(tx, *req.UserID)
			if err != nil {
				return err
			}
			if !exists {
				return apperrors.NotFound("user %d not found", *req.UserID)
			}
		}

		assignmentID, err = s.assignmentStore.CreateTx(tx, goqu.Record{
			"license_id":    req.LicenseID,
			"asset_id":      req.AssetID,
			"user_id":       req.UserID,
			"assigned_date": time.Now().UTC(),
		}, actor)
		if err != nil {
			return err
		}

		return s.licenseStore.UpdateTx(tx, req.LicenseID, goqu.Record{
			"seats_used": license.SeatsUsed + 1,
		}, actor)
	})
	if err != nil {
		return nil, err
	}

	return s.repo.GetAssignment(assignmentID, false)
}

// RemoveAssignment tombstones the assignment and releases its seat, keeping
// seats_used equal to the number of active assignment rows.
func (s *LicenseService) RemoveAssignment(id int, actor models.Actor) error {
	return repository.WithTransaction(s.r.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		assignment, err := s.repo.GetAssignmentTx(tx, id)
		if err != nil {
			return err
		}

		license, err := s.repo.GetLicenseForUpdateTx(tx, assignment.LicenseID)
		if err != nil {
			return err
		}

		if err := s.assignmentStore.SoftDeleteTx(tx, id, actor); err != nil {
			return err
		}

		seatsUsed := license.SeatsUsed - 1
		if seatsUsed < 0 {
			seatsUsed = 0
		}

		return s.licenseStore.UpdateTx(tx, assignment.LicenseID, goqu.Record{
			"seats_used": seatsUsed,
		}, actor)
	})
}
