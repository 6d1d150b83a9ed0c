package assignments

import (
	"time"

	"assetdesk/internal/entitystore"
	"assetdesk/internal/repository"
	"assetdesk/internal/rules"
	"assetdesk/pkg/apperrors"
	"assetdesk/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

// AssignmentService coordinates the custody side of the ledger: who holds
// which asset, and the active -> returned lifecycle.
type AssignmentService struct {
	r               *repository.Repository
	repo            *AssignmentsRepository
	assignmentStore *entitystore.Store
	assetStore      *entitystore.Store
	userStore       *entitystore.Store
}

func NewService(r *repository.Repository, repo *AssignmentsRepository, assignmentStore, assetStore, userStore *entitystore.Store) *AssignmentService {
	return &AssignmentService{
		r:               r,
		repo:            repo,
		assignmentStore: assignmentStore,
		assetStore:      assetStore,
		userStore:       userStore,
	}
}

// AssignAsset creates an active assignment after verifying, under the asset
// row lock, that no other active assignment exists for the asset.
func (s *AssignmentService) AssignAsset(req models.AssignAssetRequest, actor models.Actor) (*models.AssetAssignment, error) {
	assignedDate, err := rules.ParseDate("assigned_date", req.AssignedDate)
	if err != nil {
		return nil, err
	}
	expectedReturn, err := rules.ParseOptionalDate("expected_return_date", req.ExpectedReturnDate)
	if err != nil {
		return nil, err
	}
	if err := rules.CheckAssignmentDates(assignedDate, expectedReturn); err != nil {
		return nil, err
	}

	var assignmentID int
	err = repository.WithTransaction(s.r.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		// The asset lock serializes concurrent assigners of the same asset,
		// closing the check-then-act window on the exclusivity rule.
		if err := s.assetStore.LockRowTx(tx, req.AssetID); err != nil {
			return err
		}

		userExists, err := s.userStore.ExistsActiveTx(tx, req.UserID)
		if err != nil {
			return err
		}
		if !userExists {
			return apperrors.NotFound("user %d not found", req.UserID)
		}

		taken, err := s.repo.HasActiveAssignmentTx(tx, req.AssetID)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.Conflict("asset %d is already assigned", req.AssetID)
		}

		assignmentID, err = s.assignmentStore.CreateTx(tx, goqu.Record{
			"asset_id":             req.AssetID,
			"user_id":              req.UserID,
			"assigned_date":        assignedDate,
			"expected_return_date": expectedReturn,
			"status":               string(models.AssignmentActive),
			"notes":                req.Notes,
		}, actor)
		return err
	})
	if err != nil {
		return nil, err
	}

	return s.repo.GetAssignment(assignmentID, false)
}

// ReturnAsset transitions an assignment to returned. The state is terminal;
// a second return fails with a state error and writes nothing.
func (s *AssignmentService) ReturnAsset(id int, req models.ReturnAssetRequest, actor models.Actor) (*models.AssetAssignment, error) {
	err := repository.WithTransaction(s.r.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		assignment, err := s.repo.GetAssignmentForUpdateTx(tx, id)
		if err != nil {
			return err
		}

		if assignment.Status == models.AssignmentReturned {
			return apperrors.State("assignment %d is already returned", id)
		}

		changes := goqu.Record{
			"status":      string(models.AssignmentReturned),
			"return_date": time.Now().UTC(),
		}
		if req.Notes != nil {
			changes["notes"] = *req.Notes
		}

		return s.assignmentStore.UpdateTx(tx, id, changes, actor)
	})
	if err != nil {
		return nil, err
	}

	return s.repo.GetAssignment(id, false)
}

func (s *AssignmentService) SoftDeleteAssignment(id int, actor models.Actor) error {
	return s.assignmentStore.SoftDelete(id, actor)
}
