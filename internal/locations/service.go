package locations

import (
	"assetdesk/internal/entitystore"
	"assetdesk/pkg/apperrors"
	"assetdesk/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type LocationService struct {
	repo  *LocationRepository
	store *entitystore.Store
}

func NewService(repo *LocationRepository, store *entitystore.Store) *LocationService {
	return &LocationService{repo: repo, store: store}
}

func (s *LocationService) CreateLocation(req models.CreateLocationRequest, actor models.Actor) (*models.Location, error) {
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	id, err := s.store.Create(goqu.Record{
		"name":    req.Name,
		"code":    req.Code,
		"address": req.Address,
		"city":    req.City,
		"country": req.Country,
		"active":  active,
	}, actor)
	if err != nil {
		return nil, err
	}

	return s.repo.GetLocation(id, false)
}

func (s *LocationService) UpdateLocation(id int, req models.UpdateLocationRequest, actor models.Actor) (*models.Location, error) {
	changes := goqu.Record{}
	if req.Name != nil {
		changes["name"] = *req.Name
	}
	if req.Code != nil {
		changes["code"] = *req.Code
	}
	if req.Address != nil {
		changes["address"] = *req.Address
	}
	if req.City != nil {
		changes["city"] = *req.City
	}
	if req.Country != nil {
		changes["country"] = *req.Country
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

	return s.repo.GetLocation(id, false)
}

func (s *LocationService) SoftDeleteLocation(id int, actor models.Actor) error {
	return s.store.SoftDelete(id, actor)
}
