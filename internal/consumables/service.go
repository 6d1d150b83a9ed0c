package consumables

import (
	"assetdesk/internal/entitystore"
	"assetdesk/internal/repository"
	"assetdesk/internal/rules"
	"assetdesk/pkg/apperrors"
	"assetdesk/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type ConsumableService struct {
	r     *repository.Repository
	repo  *ConsumablesRepository
	store *entitystore.Store
}

func NewService(r *repository.Repository, repo *ConsumablesRepository, store *entitystore.Store) *ConsumableService {
	return &ConsumableService{r: r, repo: repo, store: store}
}

func (s *ConsumableService) CreateConsumable(req models.CreateConsumableRequest, actor models.Actor) (*models.Consumable, error) {
	quantity := 0
	if req.QuantityInStock != nil {
		quantity = *req.QuantityInStock
	}
	if quantity < 0 {
		return nil, apperrors.Validation("quantity_in_stock must not be negative")
	}

	record := goqu.Record{
		"name":              req.Name,
		"quantity_in_stock": quantity,
		"category_id":       req.CategoryID,
		"location_id":       req.LocationID,
	}
	if req.MinQuantity != nil {
		record["min_quantity"] = *req.MinQuantity
	}

	id, err := s.store.Create(record, actor)
	if err != nil {
		return nil, err
	}

	return s.repo.GetConsumable(id, false)
}

func (s *ConsumableService) UpdateConsumable(id int, req models.UpdateConsumableRequest, actor models.Actor) (*models.Consumable, error) {
	changes := goqu.Record{}
	if req.Name != nil {
		changes["name"] = *req.Name
	}
	if req.MinQuantity != nil {
		changes["min_quantity"] = *req.MinQuantity
	}
	if req.CategoryID != nil {
		changes["category_id"] = *req.CategoryID
	}
	if req.LocationID != nil {
		changes["location_id"] = *req.LocationID
	}

	if len(changes) == 0 {
		return nil, apperrors.Validation("no updatable fields in request")
	}

	if err := s.store.Update(id, changes, actor); err != nil {
		return nil, err
	}

	return s.repo.GetConsumable(id, false)
}

func (s *ConsumableService) SoftDeleteConsumable(id int, actor models.Actor) error {
	return s.store.SoftDelete(id, actor)
}

// AdjustStock applies a relative add/subtract under the consumable row
// lock. A subtract past zero fails and leaves the stock untouched.
func (s *ConsumableService) AdjustStock(id int, req models.AdjustStockRequest, actor models.Actor) (*models.Consumable, error) {
	err := repository.WithTransaction(s.r.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		consumable, err := s.repo.GetConsumableForUpdateTx(tx, id)
		if err != nil {
			return err
		}

		next, err := rules.ApplyStockAdjustment(consumable.QuantityInStock, req.Quantity, req.Operation)
		if err != nil {
			return err
		}

		return s.store.UpdateTx(tx, id, goqu.Record{
			"quantity_in_stock": next,
		}, actor)
	})
	if err != nil {
		return nil, err
	}

	return s.repo.GetConsumable(id, false)
}
