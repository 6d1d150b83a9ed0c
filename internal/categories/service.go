package categories

import (
	"assetdesk/internal/entitystore"
	"assetdesk/internal/repository"
	"assetdesk/internal/rules"
	"assetdesk/pkg/apperrors"
	"assetdesk/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type CategoryService struct {
	r     *repository.Repository
	repo  *CategoryRepository
	store *entitystore.Store
}

func NewService(r *repository.Repository, repo *CategoryRepository, store *entitystore.Store) *CategoryService {
	return &CategoryService{r: r, repo: repo, store: store}
}

func (s *CategoryService) CreateCategory(req models.CreateCategoryRequest, actor models.Actor) (*models.Category, error) {
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	var categoryID int
	err := repository.WithTransaction(s.r.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		if req.ParentID != nil {
			exists, err := s.store.ExistsActiveTx(tx, *req.ParentID)
			if err != nil {
				return err
			}
			if !exists {
				return apperrors.Validation("parent category %d does not exist", *req.ParentID)
			}
		}

		var err error
		categoryID, err = s.store.CreateTx(tx, goqu.Record{
			"name":      req.Name,
			"active":    active,
			"parent_id": req.ParentID,
		}, actor)
		return err
	})
	if err != nil {
		return nil, err
	}

	return s.repo.GetCategory(categoryID, false)
}

// UpdateCategory applies field changes, walking the ancestor chain when the
// parent moves so the tree stays acyclic. A parent_id of 0 detaches the
// category to a root.
func (s *CategoryService) UpdateCategory(id int, req models.UpdateCategoryRequest, actor models.Actor) (*models.Category, error) {
	changes := goqu.Record{}
	if req.Name != nil {
		changes["name"] = *req.Name
	}
	if req.Active != nil {
		changes["active"] = *req.Active
	}

	err := repository.WithTransaction(s.r.GoquDBWrapper, func(tx *goqu.TxDatabase) error {
		if req.ParentID != nil {
			if *req.ParentID == 0 {
				changes["parent_id"] = nil
			} else {
				exists, err := s.store.ExistsActiveTx(tx, *req.ParentID)
				if err != nil {
					return err
				}
				if !exists {
					return apperrors.Validation("parent category %d does not exist", *req.ParentID)
				}

				err = rules.CheckCategoryCycle(id, *req.ParentID, func(cid int) (*int, error) {
					return s.repo.ParentOfTx(tx, cid)
				})
				if err != nil {
					return err
				}
				changes["parent_id"] = *req.ParentID
			}
		}

		if len(changes) == 0 {
			return apperrors.Validation("no updatable fields in request")
		}

		return s.store.UpdateTx(tx, id, changes, actor)
	})
	if err != nil {
		return nil, err
	}

	return s.repo.GetCategory(id, false)
}

func (s *CategoryService) SoftDeleteCategory(id int, actor models.Actor) error {
	return s.store.SoftDelete(id, actor)
}
