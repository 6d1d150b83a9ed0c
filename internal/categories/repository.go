package categories

import (
	"fmt"

	"assetdesk/internal/repository"
	"assetdesk/pkg/apperrors"
	"assetdesk/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type CategoryRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *CategoryRepository {
	return &CategoryRepository{repository: r}
}

func (r *CategoryRepository) GetCategory(id int, includeDeleted bool) (*models.Category, error) {
	condition := goqu.Ex{"id": id}
	if !includeDeleted {
		condition["deleted_at"] = nil
	}

	var category models.Category
	found, err := r.getCategoryQuery().Where(condition).Executor().ScanStruct(&category)
	if err != nil {
		return nil, fmt.Errorf("unable to select category from database: %w", err)
	}
	if !found {
		return nil, apperrors.NotFound("category %d not found", id)
	}

	return &category, nil
}

func (r *CategoryRepository) GetCategories() ([]models.Category, error) {
	query := r.getCategoryQuery().
		Where(goqu.Ex{"deleted_at": nil}).
		Order(goqu.I("name").Asc())

	var categories []models.Category
	if err := query.Executor().ScanStructs(&categories); err != nil {
		return nil, fmt.Errorf("unable to select categories from database: %w", err)
	}

	return categories, nil
}

// ParentOfTx resolves a category to its parent id inside the calling
// transaction, nil at a root.
func (r *CategoryRepository) ParentOfTx(tx *goqu.TxDatabase, id int) (*int, error) {
	var row struct {
		ParentID *int `db:"parent_id"`
	}
	found, err := tx.Select("parent_id").
		From("categories").
		Where(goqu.Ex{"id": id, "deleted_at": nil}).
		Executor().
		ScanStruct(&row)
	if err != nil {
		return nil, apperrors.Storage("failed to resolve category parent", err)
	}
	if !found {
		return nil, apperrors.NotFound("category %d not found", id)
	}

	return row.ParentID, nil
}

func (r *CategoryRepository) getCategoryQuery() *goqu.SelectDataset {
	return r.repository.GoquDBWrapper.Select(
		"id", "name", "active", "parent_id",
		"created_at", "updated_at", "deleted_at", "created_by", "updated_by",
	).From("categories")
}
