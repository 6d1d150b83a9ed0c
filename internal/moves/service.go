package moves

import (
	"time"

	"assetdesk/internal/entitystore"
	"assetdesk/internal/repository"
	"assetdesk/internal/rules"
	"assetdesk/pkg/apperrors"
	"assetdesk/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type MoveService struct {
	r             *repository.Repository
	repo          *MovesRepository
	moveStore     *entitystore.Store
	assetStore    *entitystore.Store
	locationStore *entitystore.Store
}

func NewService(r *repository.Repository, repo *MovesRepository, moveStore, assetStore, locationStore *entitystore.Store) *MoveService {
	return &MoveService{
		r:             r,
		repo:          repo,
		moveStore:     moveStore,
		assetStore:    assetStore,
		locationStore: locationStore,
	}
}

// CreateMove records a location transition and, when a destination is given,
// relocates the asset in the same transaction. A move without a destination
// is a recorded event only; the asset stays where it is.
func (s *MoveService) CreateMove(req models.CreateMoveRequest, actor models.Actor) (*models.AssetMove, error) {
	moveDate := time.Now().UTC()
	if req.MoveDate != nil {
		parsed, err := rules.ParseDate("move_date", *req.MoveDate)
		if err != nil {
			return nil, err
		}
		moveDate = parsed
	}

	var moveID int
	err := repository.WithTransaction(s.r.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		if err := s.assetStore.LockRowTx(tx, req.AssetID); err != nil {
			return err
		}

		for _, locationID := range []*int{req.FromLocationID, req.ToLocationID} {
			if locationID == nil {
				continue
			}
			exists, err := s.locationStore.ExistsActiveTx(tx, *locationID)
			if err != nil {
				return err
			}
			if !exists {
				return apperrors.NotFound("location %d not found", *locationID)
			}
		}

		var err error
		moveID, err = s.moveStore.CreateTx(tx, goqu.Record{
			"asset_id":         req.AssetID,
			"from_location_id": req.FromLocationID,
			"to_location_id":   req.ToLocationID,
			"moved_by":         actor.ID,
			"move_date":        moveDate,
			"notes":            req.Notes,
		}, actor)
		if err != nil {
			return err
		}

		if req.ToLocationID != nil {
			return s.assetStore.UpdateTx(tx, req.AssetID, goqu.Record{
				"location_id": *req.ToLocationID,
			}, actor)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.repo.GetMove(moveID, false)
}

func (s *MoveService) SoftDeleteMove(id int, actor models.Actor) error {
	return s.moveStore.SoftDelete(id, actor)
}
