package assignments

import (
	"fmt"

	"assetdesk/internal/repository"
	"assetdesk/pkg/apperrors"
	"assetdesk/pkg/models"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

type AssignmentsRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *AssignmentsRepository {
	return &AssignmentsRepository{repository: r}
}

func (r *AssignmentsRepository) GetAssignment(id int, includeDeleted bool) (*models.AssetAssignment, error) {
	condition := goqu.Ex{"id": id}
	if !includeDeleted {
		condition["deleted_at"] = nil
	}

	var assignment models.AssetAssignment
	found, err := r.getAssignmentQuery().Where(condition).Executor().ScanStruct(&assignment)
	if err != nil {
		return nil, fmt.Errorf("unable to select assignment from database: %w", err)
	}
	if !found {
		return nil, apperrors.NotFound("assignment %d not found", id)
	}

	return &assignment, nil
}

func (r *AssignmentsRepository) GetAssignments() ([]models.AssetAssignment, error) {
	query := r.getAssignmentQuery().
		Where(goqu.Ex{"deleted_at": nil}).
		Order(goqu.I("assigned_date").Desc())

	var assignments []models.AssetAssignment
	if err := query.Executor().ScanStructs(&assignments); err != nil {
		return nil, fmt.Errorf("unable to select assignments from database: %w", err)
	}

	return assignments, nil
}

// HasActiveAssignmentTx checks assignment exclusivity for an asset. Callers
// must hold the asset row lock; the partial unique index on
// (asset_id) WHERE status='active' AND deleted_at IS NULL backstops the
// check against racing writers.
func (r *AssignmentsRepository) HasActiveAssignmentTx(tx *goqu.TxDatabase, assetID int) (bool, error) {
	var count int
	_, err := tx.Select(goqu.COUNT("*")).
		From("asset_assignments").
		Where(goqu.Ex{
			"asset_id":   assetID,
			"status":     string(models.AssignmentActive),
			"deleted_at": nil,
		}).
		Executor().
		ScanVal(&count)
	if err != nil {
		return false, apperrors.Storage("failed to check active assignment", err)
	}

	return count > 0, nil
}

// GetAssignmentForUpdateTx loads an active assignment under a row lock so a
// concurrent return of the same assignment serializes.
func (r *AssignmentsRepository) GetAssignmentForUpdateTx(tx *goqu.TxDatabase, id int) (*models.AssetAssignment, error) {
	var assignment models.AssetAssignment
	found, err := tx.Select(
		"id", "asset_id", "user_id", "assigned_date", "expected_return_date",
		"return_date", "status", "notes",
		"created_at", "updated_at", "deleted_at", "created_by", "updated_by",
	).
		From("asset_assignments").
		Where(goqu.Ex{"id": id, "deleted_at": nil}).
		ForUpdate(exp.Wait).
		Executor().
		ScanStruct(&assignment)
	if err != nil {
		return nil, apperrors.Storage("failed to lock assignment", err)
	}
	if !found {
		return nil, apperrors.NotFound("assignment %d not found", id)
	}

	return &assignment, nil
}

func (r *AssignmentsRepository) getAssignmentQuery() *goqu.SelectDataset {
	return r.repository.GoquDBWrapper.Select(
		"id", "asset_id", "user_id", "assigned_date", "expected_return_date",
		"return_date", "status", "notes",
		"created_at", "updated_at", "deleted_at", "created_by", "updated_by",
	).From("asset_assignments")
}
