package licenses

import (
	"fmt"

	"assetdesk/internal/repository"
	"assetdesk/pkg/apperrors"
	"assetdesk/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

type LicensesRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *LicensesRepository {
	return &LicensesRepository{repository: r}
}

func (r *LicensesRepository) GetLicense(id int, includeDeleted bool) (*models.SoftwareLicense, error) {
	condition := goqu.Ex{"id": id}
	if !includeDeleted {
		condition["deleted_at"] = nil
	}

	var license models.SoftwareLicense
	found, err := r.getLicenseQuery().Where(condition).Executor().ScanStruct(&license)
	if err != nil {
		return nil, fmt.Errorf("unable to select license from database: %w", err)
	}
	if !found {
		return nil, apperrors.NotFound("license %d not found", id)
	}

	return &license, nil
}

func (r *LicensesRepository) GetLicenses() ([]models.SoftwareLicense, error) {
	query := r.getLicenseQuery().
		Where(goqu.Ex{"deleted_at": nil}).
		Order(goqu.I("created_at").Desc())

	var licenses []models.SoftwareLicense
	if err := query.Executor().ScanStructs(&licenses); err != nil {
		return nil, fmt.Errorf("unable to select licenses from database: %w", err)
	}

	return licenses, nil
}

// GetLicenseForUpdateTx loads seat counters under a row lock so concurrent
// seat consumers serialize.
func (r *LicensesRepository) GetLicenseForUpdateTx(tx *goqu.TxDatabase, id int) (*models.SoftwareLicense, error) {
	var license models.SoftwareLicense
	found, err := tx.Select("id", "name", "type", "seats_total", "seats_used").
		From("software_licenses").
		Where(goqu.Ex{"id": id, "deleted_at": nil}).
		ForUpdate(exp.Wait).
		Executor().
		ScanStruct(&license)
	if err != nil {
		return nil, apperrors.Storage("failed to lock license", err)
	}
	if !found {
		return nil, apperrors.NotFound("license %d not found", id)
	}

	return &license, nil
}

func (r *LicensesRepository) GetAssignment(id int, includeDeleted bool) (*models.LicenseAssignment, error) {
	condition := goqu.Ex{"id": id}
	if !includeDeleted {
		condition["deleted_at"] = nil
	}

	var assignment models.LicenseAssignment
	found, err := r.getAssignmentQuery().Where(condition).Executor().ScanStruct(&assignment)
	if err != nil {
		return nil, fmt.Errorf("unable to select license assignment from database: %w", err)
	}
	if !found {
		return nil, apperrors.NotFound("license assignment %d not found", id)
	}

	return &assignment, nil
}

// GetAssignmentTx reads an active assignment through the caller's
// transaction, so seat-release decisions see the transaction's own snapshot.
func (r *LicensesRepository) GetAssignmentTx(tx *goqu.TxDatabase, id int) (*models.LicenseAssignment, error) {
	var assignment models.LicenseAssignment
	found, err := tx.Select(
		"id", "license_id", "asset_id", "user_id", "assigned_date",
		"created_at", "updated_at", "deleted_at", "created_by", "updated_by",
	).
		From("license_assignments").
		Where(goqu.Ex{"id": id, "deleted_at": nil}).
		Executor().
		ScanStruct(&assignment)
	if err != nil {
		return nil, apperrors.Storage("failed to select license assignment", err)
	}
	if !found {
		return nil, apperrors.NotFound("license assignment %d not found", id)
	}

	return &assignment, nil
}

func (r *LicensesRepository) GetAssignments() ([]models.LicenseAssignment, error) {
	query := r.getAssignmentQuery().
		Where(goqu.Ex{"deleted_at": nil}).
		Order(goqu.I("assigned_date").Desc())

	var assignments []models.LicenseAssignment
	if err := query.Executor().ScanStructs(&assignments); err != nil {
		return nil, fmt.Errorf("unable to select license assignments from database: %w", err)
	}

	return assignments, nil
}

func (r *LicensesRepository) getLicenseQuery() *goqu.SelectDataset {
	return r.repository.GoquDBWrapper.Select(
		"id", "name", "key", "type", "seats_total", "seats_used",
		"expiration_date", "cost", "notes", "supplier_id",
		"created_at", "updated_at", "deleted_at", "created_by", "updated_by",
	).From("software_licenses")
}

func (r *LicensesRepository) getAssignmentQuery() *goqu.SelectDataset {
	return r.repository.GoquDBWrapper.Select(
		"id", "license_id", "asset_id", "user_id", "assigned_date",
		"created_at", "updated_at", "deleted_at", "created_by", "updated_by",
	).From("license_assignments")
}
