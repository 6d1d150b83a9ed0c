package moves

import (
	"fmt"

	"assetdesk/internal/repository"
	"assetdesk/pkg/apperrors"
	"assetdesk/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type MovesRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *MovesRepository {
	return &MovesRepository{repository: r}
}

func (r *MovesRepository) GetMove(id int, includeDeleted bool) (*models.AssetMove, error) {
	condition := goqu.Ex{"id": id}
	if !includeDeleted {
		condition["deleted_at"] = nil
	}

	var move models.AssetMove
	found, err := r.getMoveQuery().Where(condition).Executor().ScanStruct(&move)
	if err != nil {
		return nil, fmt.Errorf("unable to select asset move from database: %w", err)
	}
	if !found {
		return nil, apperrors.NotFound("asset move %d not found", id)
	}

	return &move, nil
}

func (r *MovesRepository) GetMoves() ([]models.AssetMove, error) {
	query := r.getMoveQuery().
		Where(goqu.Ex{"deleted_at": nil}).
		Order(goqu.I("move_date").Desc())

	var moves []models.AssetMove
	if err := query.Executor().ScanStructs(&moves); err != nil {
		return nil, fmt.Errorf("unable to select asset moves from database: %w", err)
	}

	return moves, nil
}

func (r *MovesRepository) getMoveQuery() *goqu.SelectDataset {
	return r.repository.GoquDBWrapper.Select(
		"id", "asset_id", "from_location_id", "to_location_id", "moved_by",
		"move_date", "notes",
		"created_at", "updated_at", "deleted_at", "created_by", "updated_by",
	).From("asset_moves")
}
