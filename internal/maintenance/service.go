package maintenance

import (
	"time"

	"assetdesk/internal/entitystore"
	"assetdesk/internal/repository"
	"assetdesk/internal/rules"
	"assetdesk/pkg/apperrors"
	"assetdesk/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type MaintenanceService struct {
	r          *repository.Repository
	repo       *MaintenanceRepository
	store      *entitystore.Store
	assetStore *entitystore.Store
}

func NewService(r *repository.Repository, repo *MaintenanceRepository, store, assetStore *entitystore.Store) *MaintenanceService {
	return &MaintenanceService{r: r, repo: repo, store: store, assetStore: assetStore}
}

func (s *MaintenanceService) CreateOrder(req models.CreateMaintenanceRequest, actor models.Actor) (*models.MaintenanceOrder, error) {
	orderType := models.MaintenanceType(req.Type)
	if !orderType.IsValid() {
		return nil, apperrors.Validation("invalid maintenance type: %s", req.Type)
	}

	status := models.MaintenanceScheduled
	if req.Status != nil {
		status = models.MaintenanceStatus(*req.Status)
		if !status.IsValid() {
			return nil, apperrors.Validation("invalid maintenance status: %s", *req.Status)
		}
	}

	plannedDate, err := rules.ParseDate("planned_date", req.PlannedDate)
	if err != nil {
		return nil, err
	}
	startDate, err := rules.ParseOptionalDate("start_date", req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := rules.ParseOptionalDate("end_date", req.EndDate)
	if err != nil {
		return nil, err
	}

	if err := rules.CheckMaintenanceDates(startDate, endDate); err != nil {
		return nil, err
	}
	if err := rules.CheckMaintenancePlannedDate(plannedDate, status, time.Now()); err != nil {
		return nil, err
	}

	var orderID int
	err = repository.WithTransaction(s.r.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		exists, err := s.assetStore.ExistsActiveTx(tx, req.AssetID)
		if err != nil {
			return err
		}
		if !exists {
			return apperrors.NotFound("asset %d not found", req.AssetID)
		}

		record := goqu.Record{
			"asset_id":      req.AssetID,
			"type":          string(orderType),
			"status":        string(status),
			"planned_date":  plannedDate,
			"start_date":    startDate,
			"end_date":      endDate,
			"technician_id": req.TechnicianID,
			"notes":         req.Notes,
		}
		if req.CostParts != nil {
			record["cost_parts"] = *req.CostParts
		}
		if req.CostLabor != nil {
			record["cost_labor"] = *req.CostLabor
		}

		orderID, err = s.store.CreateTx(tx, record, actor)
		return err
	})
	if err != nil {
		return nil, err
	}

	return s.repo.GetOrder(orderID, false)
}

func (s *MaintenanceService) UpdateOrder(id int, req models.UpdateMaintenanceRequest, actor models.Actor) (*models.MaintenanceOrder, error) {
	current, err := s.repo.GetOrder(id, false)
	if err != nil {
		return nil, err
	}

	// Start from the stored row so temporal rules see the merged result,
	// not just the fields present in the request.
	status := current.Status
	plannedDate := current.PlannedDate
	startDate := current.StartDate
	endDate := current.EndDate

	changes := goqu.Record{}

	if req.Type != nil {
		if !models.MaintenanceType(*req.Type).IsValid() {
			return nil, apperrors.Validation("invalid maintenance type: %s", *req.Type)
		}
		changes["type"] = *req.Type
	}
	if req.Status != nil {
		status = models.MaintenanceStatus(*req.Status)
		if !status.IsValid() {
			return nil, apperrors.Validation("invalid maintenance status: %s", *req.Status)
		}
		changes["status"] = *req.Status
	}
	if req.PlannedDate != nil {
		plannedDate, err = rules.ParseDate("planned_date", *req.PlannedDate)
		if err != nil {
			return nil, err
		}
		changes["planned_date"] = plannedDate
	}
	if req.StartDate != nil {
		startDate, err = rules.ParseOptionalDate("start_date", req.StartDate)
		if err != nil {
			return nil, err
		}
		changes["start_date"] = startDate
	}
	if req.EndDate != nil {
		endDate, err = rules.ParseOptionalDate("end_date", req.EndDate)
		if err != nil {
			return nil, err
		}
		changes["end_date"] = endDate
	}
	if req.CostParts != nil {
		changes["cost_parts"] = *req.CostParts
	}
	if req.CostLabor != nil {
		changes["cost_labor"] = *req.CostLabor
	}
	if req.TechnicianID != nil {
		changes["technician_id"] = *req.TechnicianID
	}
	if req.Notes != nil {
		changes["notes"] = *req.Notes
	}

	if len(changes) == 0 {
		return nil, apperrors.Validation("no updatable fields in request")
	}

	if err := rules.CheckMaintenanceDates(startDate, endDate); err != nil {
		return nil, err
	}
	if req.PlannedDate != nil {
		if err := rules.CheckMaintenancePlannedDate(plannedDate, status, time.Now()); err != nil {
			return nil, err
		}
	}

	if err := s.store.Update(id, changes, actor); err != nil {
		return nil, err
	}

	return s.repo.GetOrder(id, false)
}

func (s *MaintenanceService) SoftDeleteOrder(id int, actor models.Actor) error {
	return s.store.SoftDelete(id, actor)
}
