package users

import (
	"fmt"

	"assetdesk/internal/repository"
	"assetdesk/pkg/apperrors"
	"assetdesk/pkg/models"

	"github.com/doug-martin/goqu/v9"
)

type UserRepository struct {
	repository *repository.Repository
}

func NewRepository(r *repository.Repository) *UserRepository {
	return &UserRepository{repository: r}
}

func (r *UserRepository) GetUser(id int, includeDeleted bool) (*models.User, error) {
	condition := goqu.Ex{"id": id}
	if !includeDeleted {
		condition["deleted_at"] = nil
	}

	var user models.User
	found, err := r.getUserQuery().Where(condition).Executor().ScanStruct(&user)
	if err != nil {
		return nil, fmt.Errorf("unable to select user from database: %w", err)
	}
	if !found {
		return nil, apperrors.NotFound("user %d not found", id)
	}

	return &user, nil
}

func (r *UserRepository) GetUsers() ([]models.User, error) {
	query := r.getUserQuery().
		Where(goqu.Ex{"deleted_at": nil}).
		Order(goqu.I("username").Asc())

	var users []models.User
	if err := query.Executor().ScanStructs(&users); err != nil {
		return nil, fmt.Errorf("unable to select users from database: %w", err)
	}

	return users, nil
}

// Password hash stays out of the select list; login reads it separately.
func (r *UserRepository) getUserQuery() *goqu.SelectDataset {
	return r.repository.GoquDBWrapper.Select(
		"id", "username", "full_name", "email", "role", "department", "active",
		"created_at", "updated_at", "deleted_at", "created_by", "updated_by",
	).From("users")
}
