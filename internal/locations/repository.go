package locations

import (
	"fmt"

	"assetdesk/internal/repository"
	"assetdesk/pkg/apperrors"
	"assetdesk/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type LocationRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *LocationRepository {
	return &LocationRepository{repository: r}
}

func (r *LocationRepository) GetLocation(id int, includeDeleted bool) (*models.Location, error) {
	condition := goqu.Ex{"id": id}
	if !includeDeleted {
		condition["deleted_at"] = nil
	}

	var location models.Location
	found, err := r.getLocationQuery().Where(condition).Executor().ScanStruct(&location)
	if err != nil {
		return nil, fmt.Errorf("unable to select location from database: %w", err)
	}
	if !found {
		return nil, apperrors.NotFound("location %d not found", id)
	}

	return &location, nil
}

func (r *LocationRepository) GetLocations() ([]models.Location, error) {
	query := r.getLocationQuery().
		Where(goqu.Ex{"deleted_at": nil}).
		Order(goqu.I("name").Asc())

	var locations []models.Location
	if err := query.Executor().ScanStructs(&locations); err != nil {
		return nil, fmt.Errorf("unable to select locations from database: %w", err)
	}

	return locations, nil
}

func (r *LocationRepository) getLocationQuery() *goqu.SelectDataset {
	return r.repository.GoquDBWrapper.Select(
		"id", "name", "code", "address", "city", "country", "active",
		"created_at", "updated_at", "deleted_at", "created_by", "updated_by",
	).From("locations")
}
